package gateway

import (
	"context"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
)

// ListParams selects a page of users. Page is 1-based.
type ListParams struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip for this page.
func (p ListParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Paginated is one page of a listing plus the total number of records.
type Paginated[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// UserGateway defines the persistence contract for users.
// Lookups signal absence with (nil, nil); any non-nil error is a fault.
type UserGateway interface {
	Create(ctx context.Context, u *entity.User) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	ListAll(ctx context.Context, params ListParams) (Paginated[*entity.User], error)
	Delete(ctx context.Context, id string) error
	Save(ctx context.Context, u *entity.User) error
}
