package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/oksasatya/go-ddd-user-management/internal/application/user"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/gateway"
	"github.com/oksasatya/go-ddd-user-management/internal/infrastructure/search"
	"github.com/oksasatya/go-ddd-user-management/pkg/apperror"
	"github.com/oksasatya/go-ddd-user-management/pkg/either"
	"github.com/oksasatya/go-ddd-user-management/pkg/response"
	"github.com/oksasatya/go-ddd-user-management/pkg/validation"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	defaultSize  = 10
)

type (
	CreateUserUseCase interface {
		Execute(ctx context.Context, in userapp.CreateUserDto) userapp.UserResult
	}
	FindUserUseCase interface {
		Execute(ctx context.Context, in userapp.FindByIDInput) userapp.UserResult
	}
	ListUsersUseCase interface {
		Execute(ctx context.Context, in userapp.ListAllInput) userapp.PageResult
	}
	UpdateUserUseCase interface {
		Execute(ctx context.Context, in userapp.UpdateUserDto) userapp.UserResult
	}
	DeleteUserUseCase interface {
		Execute(ctx context.Context, in userapp.DeleteUserInput) userapp.DeleteResult
	}
	UserSearcher interface {
		Search(ctx context.Context, q string, size int) ([]search.UserDocument, error)
	}
)

// UserHandler exposes the user use cases over HTTP.
type UserHandler struct {
	UseCases UserUseCases
	Search   UserSearcher // optional
	Logger   *logrus.Logger
}

// UserUseCases groups the use cases the handler drives.
type UserUseCases struct {
	Create CreateUserUseCase
	Find   FindUserUseCase
	List   ListUsersUseCase
	Update UpdateUserUseCase
	Delete DeleteUserUseCase
}

func NewUserHandler(uc UserUseCases, searcher UserSearcher, logger *logrus.Logger) *UserHandler {
	return &UserHandler{UseCases: uc, Search: searcher, Logger: logger}
}

type userResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

func toUserResponse(u *entity.User) userResponse {
	return userResponse{
		ID:        u.ID().String(),
		Name:      u.Name(),
		Email:     u.Email().String(),
		CreatedAt: u.CreatedAt().UTC().Format(time.RFC3339),
	}
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type idParam struct {
	ID string `uri:"id" binding:"required"`
}

type listQuery struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,pagesize"`
}

type searchQuery struct {
	Q    string `form:"q" binding:"required,max=200"`
	Size int    `form:"size" binding:"omitempty,pagesize"`
}

// fail writes appErr as an error envelope and counts it under op.
func (h *UserHandler) fail(c *gin.Context, op string, appErr *apperror.Error) {
	recordOutcome(op, appErr)
	if appErr.Kind == apperror.KindInternalServer && h.Logger != nil {
		h.Logger.WithError(appErr).WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"op":         op,
		}).Error("request failed")
	}
	response.Error[any](c, appErr.HTTPStatus(), appErr.Message, gin.H{"kind": appErr.Kind})
}

func invalid(c *gin.Context, err error) {
	response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
}

// respondUser writes the user from res, or the failure it carries.
func (h *UserHandler) respondUser(c *gin.Context, op string, status int, message string, res userapp.UserResult) {
	if appErr, failed := res.LeftValue(); failed {
		h.fail(c, op, appErr)
		return
	}
	u, _ := res.RightValue()
	recordOutcome(op, nil)
	response.Success(c, status, toUserResponse(u), message, nil)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalid(c, err)
		return
	}
	res := h.UseCases.Create.Execute(c.Request.Context(), userapp.CreateUserDto{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	h.respondUser(c, "create", http.StatusCreated, "user created", res)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		invalid(c, err)
		return
	}
	res := h.UseCases.Find.Execute(c.Request.Context(), userapp.FindByIDInput{ID: p.ID})
	h.respondUser(c, "find", http.StatusOK, "user found", res)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		invalid(c, err)
		return
	}
	if q.Page == 0 {
		q.Page = defaultPage
	}
	if q.Limit == 0 {
		q.Limit = defaultLimit
	}

	res := h.UseCases.List.Execute(c.Request.Context(), userapp.ListAllInput{Page: q.Page, Limit: q.Limit})
	either.Fold(res,
		func(appErr *apperror.Error) any {
			h.fail(c, "list", appErr)
			return nil
		},
		func(page gateway.Paginated[*entity.User]) any {
			recordOutcome("list", nil)
			data := make([]userResponse, 0, len(page.Data))
			for _, u := range page.Data {
				data = append(data, toUserResponse(u))
			}
			totalPages := 0
			if page.Limit > 0 {
				totalPages = (page.Total + page.Limit - 1) / page.Limit
			}
			response.Success(c, http.StatusOK, data, "users listed", gin.H{
				"page":        page.Page,
				"limit":       page.Limit,
				"total":       page.Total,
				"total_pages": totalPages,
			})
			return nil
		},
	)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		invalid(c, err)
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalid(c, err)
		return
	}
	res := h.UseCases.Update.Execute(c.Request.Context(), userapp.UpdateUserDto{
		ID:       p.ID,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	h.respondUser(c, "update", http.StatusOK, "user updated", res)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		invalid(c, err)
		return
	}
	res := h.UseCases.Delete.Execute(c.Request.Context(), userapp.DeleteUserInput{ID: p.ID})
	if appErr, failed := res.LeftValue(); failed {
		h.fail(c, "delete", appErr)
		return
	}
	deleted, _ := res.RightValue()
	recordOutcome("delete", nil)
	response.Success(c, http.StatusOK, gin.H{"deleted": deleted}, "user deleted", nil)
}

// SearchUsers queries the search index; it does not go through the use cases.
func (h *UserHandler) SearchUsers(c *gin.Context) {
	if h.Search == nil {
		response.Error[any](c, http.StatusServiceUnavailable, "search is not configured", nil)
		return
	}
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		invalid(c, err)
		return
	}
	if q.Size == 0 {
		q.Size = defaultSize
	}
	docs, err := h.Search.Search(c.Request.Context(), q.Q, q.Size)
	if err != nil {
		h.fail(c, "search", apperror.InternalServer("Search failed", err))
		return
	}
	recordOutcome("search", nil)
	response.Success(c, http.StatusOK, docs, "search results", gin.H{"count": len(docs)})
}
