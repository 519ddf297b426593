package user

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/pkg/apperror"
)

func TestFindByID_Found(t *testing.T) {
	u := newTestUser(t, "u1", "Ann", "ann@x.com")
	users := &fakeUserGateway{
		findByIDFn: func(_ context.Context, id string) (*entity.User, error) {
			assert.Equal(t, "u1", id)
			return u, nil
		},
	}

	res := NewFindByID(users, nil).Execute(context.Background(), FindByIDInput{ID: "u1"})

	got, ok := res.RightValue()
	require.True(t, ok)
	assert.Same(t, u, got)
}

func TestFindByID_Missing(t *testing.T) {
	for _, id := range []string{"missing", "", "00000000-0000-0000-0000-000000000000"} {
		res := NewFindByID(&fakeUserGateway{}, nil).Execute(context.Background(), FindByIDInput{ID: id})

		appErr, ok := res.LeftValue()
		require.True(t, ok)
		assert.Equal(t, apperror.KindNotFound, appErr.Kind)
		assert.Equal(t, "User not found", appErr.Message)
		assert.Equal(t, 404, appErr.StatusCode)
	}
}

func TestFindByID_NotFoundFaultPassesThrough(t *testing.T) {
	notFound := apperror.NotFound("gone")
	users := &fakeUserGateway{
		findByIDFn: func(context.Context, string) (*entity.User, error) {
			return nil, fmt.Errorf("lookup: %w", notFound)
		},
	}

	res := NewFindByID(users, nil).Execute(context.Background(), FindByIDInput{ID: "u1"})

	appErr, ok := res.LeftValue()
	require.True(t, ok)
	assert.Same(t, notFound, appErr)
}

func TestFindByID_Fault(t *testing.T) {
	users := &fakeUserGateway{
		findByIDFn: func(context.Context, string) (*entity.User, error) { return nil, errBoom },
	}

	res := NewFindByID(users, nil).Execute(context.Background(), FindByIDInput{ID: "u1"})

	appErr, ok := res.LeftValue()
	require.True(t, ok)
	assert.Equal(t, apperror.KindInternalServer, appErr.Kind)
	assert.Equal(t, "Internal server error.", appErr.Message)
	assert.ErrorIs(t, appErr, errBoom)
}
