package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/gateway"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-user-management/pkg/helpers"
)

const keyPrefix = "user:id:"

// userSnapshot is the cached form of a user.
type userSnapshot struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

func snapshotOf(u *entity.User) userSnapshot {
	return userSnapshot{
		ID:           u.ID().String(),
		Name:         u.Name(),
		Email:        u.Email().String(),
		PasswordHash: u.Password(),
		CreatedAt:    u.CreatedAt(),
	}
}

func (s userSnapshot) restore() (*entity.User, error) {
	email, err := valueobject.NewEmail(s.Email)
	if err != nil {
		return nil, err
	}
	return entity.NewUser(entity.UserProps{
		ID:        entity.NewIdentity(s.ID),
		Name:      s.Name,
		Email:     email,
		Password:  s.PasswordHash,
		CreatedAt: s.CreatedAt,
	})
}

// UserGateway caches FindByID results in Redis in front of another
// gateway.UserGateway. Redis failures are logged and the call falls
// through to the wrapped gateway.
type UserGateway struct {
	gateway.UserGateway
	rdb    *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
}

func NewUserGateway(next gateway.UserGateway, rdb *redis.Client, ttl time.Duration, logger *logrus.Logger) *UserGateway {
	return &UserGateway{UserGateway: next, rdb: rdb, ttl: ttl, logger: logger}
}

func key(id string) string { return keyPrefix + id }

func (g *UserGateway) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var snap userSnapshot
	hit, err := helpers.RedisGetJSON(ctx, g.rdb, key(id), &snap)
	if err != nil {
		g.warn(err, "cache read failed", id)
	}
	if hit {
		if u, err := snap.restore(); err == nil {
			return u, nil
		}
		g.evict(ctx, id)
	}

	u, err := g.UserGateway.FindByID(ctx, id)
	if err != nil || u == nil {
		return u, err
	}
	if err := helpers.RedisSetJSON(ctx, g.rdb, key(id), snapshotOf(u), g.ttl); err != nil {
		g.warn(err, "cache write failed", id)
	}
	return u, nil
}

func (g *UserGateway) Save(ctx context.Context, u *entity.User) error {
	if err := g.UserGateway.Save(ctx, u); err != nil {
		return err
	}
	g.evict(ctx, u.ID().String())
	return nil
}

func (g *UserGateway) Delete(ctx context.Context, id string) error {
	if err := g.UserGateway.Delete(ctx, id); err != nil {
		return err
	}
	g.evict(ctx, id)
	return nil
}

func (g *UserGateway) evict(ctx context.Context, id string) {
	if err := helpers.RedisDel(ctx, g.rdb, key(id)); err != nil {
		g.warn(err, "cache evict failed", id)
	}
}

func (g *UserGateway) warn(err error, msg, id string) {
	if g.logger == nil {
		return
	}
	g.logger.WithError(err).WithField("user_id", id).Warn(msg)
}

var _ gateway.UserGateway = (*UserGateway)(nil)
