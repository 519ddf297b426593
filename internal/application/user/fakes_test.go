package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/gateway"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/valueobject"
)

var errBoom = errors.New("boom")

// --- Fake gateways ---

type fakeUserGateway struct {
	createFn      func(ctx context.Context, u *entity.User) (*entity.User, error)
	findByEmailFn func(ctx context.Context, email string) (*entity.User, error)
	findByIDFn    func(ctx context.Context, id string) (*entity.User, error)
	listAllFn     func(ctx context.Context, p gateway.ListParams) (gateway.Paginated[*entity.User], error)
	deleteFn      func(ctx context.Context, id string) error
	saveFn        func(ctx context.Context, u *entity.User) error

	calls map[string]int
}

func (f *fakeUserGateway) record(op string) {
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[op]++
}

func (f *fakeUserGateway) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	f.record("Create")
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return u, nil
}

func (f *fakeUserGateway) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.record("FindByEmail")
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (f *fakeUserGateway) FindByID(ctx context.Context, id string) (*entity.User, error) {
	f.record("FindByID")
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeUserGateway) ListAll(ctx context.Context, p gateway.ListParams) (gateway.Paginated[*entity.User], error) {
	f.record("ListAll")
	if f.listAllFn != nil {
		return f.listAllFn(ctx, p)
	}
	return gateway.Paginated[*entity.User]{Page: p.Page, Limit: p.Limit}, nil
}

func (f *fakeUserGateway) Delete(ctx context.Context, id string) error {
	f.record("Delete")
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeUserGateway) Save(ctx context.Context, u *entity.User) error {
	f.record("Save")
	if f.saveFn != nil {
		return f.saveFn(ctx, u)
	}
	return nil
}

type fakeEncryptor struct {
	hashFn func(plaintext string) (string, error)
	hashed []string
}

func (f *fakeEncryptor) Hash(plaintext string) (string, error) {
	f.hashed = append(f.hashed, plaintext)
	if f.hashFn != nil {
		return f.hashFn(plaintext)
	}
	return "hashed:" + plaintext, nil
}

func (f *fakeEncryptor) Compare(plaintext, hash string) bool {
	return hash == "hashed:"+plaintext
}

// --- helpers ---

func newTestUser(t *testing.T, id, name, email string) *entity.User {
	t.Helper()
	e, err := valueobject.NewEmail(email)
	require.NoError(t, err)
	u, err := entity.NewUser(entity.UserProps{
		ID:       entity.NewIdentity(id),
		Name:     name,
		Email:    e,
		Password: "hashed-password",
	})
	require.NoError(t, err)
	return u
}

func ptr(s string) *string { return &s }
