package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-user-management/internal/container"
	handlers "github.com/oksasatya/go-ddd-user-management/internal/interface/http"
	"github.com/oksasatya/go-ddd-user-management/internal/interface/middleware"
)

// UserModule wires the user HTTP handlers into routes:
// POST /api/users, GET /api/users, GET /api/users/search,
// GET|PATCH|DELETE /api/users/:id
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	var allow middleware.AllowFunc
	if cfg.RateLimitAllowPrivate {
		allow = middleware.AllowPrivateIP()
	}
	// writes get a tighter per-route budget on top of the per-IP one
	perIP := middleware.RateLimit(container.GetRedis(), cfg.RateLimitMax, cfg.RateLimitWindow, middleware.KeyByIP(), allow)
	writes := middleware.RateLimit(container.GetRedis(), max(cfg.RateLimitMax/5, 1), cfg.RateLimitWindow, middleware.KeyByIPAndPath(), allow)

	users := rg.Group("/users", perIP)
	{
		users.POST("", writes, m.Handler.CreateUser)
		users.GET("", m.Handler.ListUsers)
		users.GET("/search", m.Handler.SearchUsers)
		users.GET("/:id", m.Handler.GetUser)
		users.PATCH("/:id", writes, m.Handler.UpdateUser)
		users.DELETE("/:id", writes, m.Handler.DeleteUser)
	}
}
