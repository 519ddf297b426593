package user

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/gateway"
	"github.com/oksasatya/go-ddd-user-management/pkg/apperror"
)

func TestListAll_Success(t *testing.T) {
	want := gateway.Paginated[*entity.User]{
		Data: []*entity.User{
			newTestUser(t, "id-1", "User One", "one@example.com"),
			newTestUser(t, "id-2", "User Two", "two@example.com"),
		},
		Total: 20,
		Page:  1,
		Limit: 10,
	}
	users := &fakeUserGateway{
		listAllFn: func(_ context.Context, p gateway.ListParams) (gateway.Paginated[*entity.User], error) {
			assert.Equal(t, gateway.ListParams{Page: 1, Limit: 10}, p)
			return want, nil
		},
	}

	res := NewListAll(users, nil).Execute(context.Background(), ListAllInput{Page: 1, Limit: 10})

	got, ok := res.RightValue()
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestListAll_Fault(t *testing.T) {
	logger, hook := test.NewNullLogger()
	users := &fakeUserGateway{
		listAllFn: func(context.Context, gateway.ListParams) (gateway.Paginated[*entity.User], error) {
			return gateway.Paginated[*entity.User]{}, errBoom
		},
	}

	res := NewListAll(users, logger).Execute(context.Background(), ListAllInput{Page: 1, Limit: 10})

	appErr, ok := res.LeftValue()
	require.True(t, ok)
	assert.Equal(t, apperror.KindInternalServer, appErr.Kind)
	assert.Equal(t, "Error listing users", appErr.Message)
	assert.ErrorIs(t, appErr, errBoom)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "list_users", hook.LastEntry().Data["op"])
}
