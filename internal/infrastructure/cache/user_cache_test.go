package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/gateway"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/valueobject"
)

type stubGateway struct {
	gateway.UserGateway
	user    *entity.User
	finds   int
	saves   int
	deletes int
}

func (s *stubGateway) FindByID(context.Context, string) (*entity.User, error) {
	s.finds++
	return s.user, nil
}

func (s *stubGateway) Save(context.Context, *entity.User) error {
	s.saves++
	return nil
}

func (s *stubGateway) Delete(context.Context, string) error {
	s.deletes++
	return nil
}

func testUser(t *testing.T) *entity.User {
	t.Helper()
	email, err := valueobject.NewEmail("ana@x.com")
	require.NoError(t, err)
	u, err := entity.NewUser(entity.UserProps{
		ID:        entity.NewIdentity("u1"),
		Name:      "Ana",
		Email:     email,
		Password:  "hash",
		CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return u
}

// unreachableRedis points at a closed port so every command fails fast.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestSnapshotRoundTrip(t *testing.T) {
	u := testUser(t)

	got, err := snapshotOf(u).restore()
	require.NoError(t, err)
	assert.Equal(t, u.ID(), got.ID())
	assert.Equal(t, u.Name(), got.Name())
	assert.True(t, u.Email().Equals(got.Email()))
	assert.Equal(t, u.Password(), got.Password())
	assert.True(t, u.CreatedAt().Equal(got.CreatedAt()))
}

func TestSnapshotRestore_Invalid(t *testing.T) {
	_, err := userSnapshot{ID: "u1", Name: "Ana", Email: "nope"}.restore()
	assert.Error(t, err)

	_, err = userSnapshot{ID: "u1", Name: " ", Email: "ana@x.com"}.restore()
	assert.Error(t, err)
}

func TestUserGateway_FallsThroughWhenRedisDown(t *testing.T) {
	logger, hook := test.NewNullLogger()
	rdb := unreachableRedis()
	defer func() { _ = rdb.Close() }()
	inner := &stubGateway{user: testUser(t)}
	g := NewUserGateway(inner, rdb, time.Minute, logger)
	ctx := context.Background()

	u, err := g.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID().String())
	assert.Equal(t, 1, inner.finds)

	require.NoError(t, g.Save(ctx, u))
	require.NoError(t, g.Delete(ctx, "u1"))
	assert.Equal(t, 1, inner.saves)
	assert.Equal(t, 1, inner.deletes)

	require.NotEmpty(t, hook.AllEntries())
	for _, e := range hook.AllEntries() {
		assert.Equal(t, logrus.WarnLevel, e.Level)
		assert.Equal(t, "u1", e.Data["user_id"])
	}
}

func TestUserGateway_MissIsNotCached(t *testing.T) {
	logger, _ := test.NewNullLogger()
	rdb := unreachableRedis()
	defer func() { _ = rdb.Close() }()
	inner := &stubGateway{}
	g := NewUserGateway(inner, rdb, time.Minute, logger)

	u, err := g.FindByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, u)
}
