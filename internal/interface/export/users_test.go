package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userapp "github.com/oksasatya/go-ddd-user-management/internal/application/user"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/gateway"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-user-management/pkg/apperror"
	"github.com/oksasatya/go-ddd-user-management/pkg/either"
)

// pagedList serves users from memory the way the ListAll use case does.
type pagedList struct {
	users  []*entity.User
	calls  []userapp.ListAllInput
	failOn int
}

func (p *pagedList) Execute(_ context.Context, in userapp.ListAllInput) userapp.PageResult {
	p.calls = append(p.calls, in)
	if p.failOn == in.Page {
		return either.Left[*apperror.Error, gateway.Paginated[*entity.User]](apperror.InternalServer("Error listing users", errors.New("db")))
	}
	start := (in.Page - 1) * in.Limit
	end := min(start+in.Limit, len(p.users))
	data := []*entity.User{}
	if start < len(p.users) {
		data = p.users[start:end]
	}
	return either.Right[*apperror.Error](gateway.Paginated[*entity.User]{Data: data, Total: len(p.users), Page: in.Page, Limit: in.Limit})
}

func makeUsers(t *testing.T, n int) []*entity.User {
	t.Helper()
	out := make([]*entity.User, 0, n)
	for i := 0; i < n; i++ {
		email, err := valueobject.NewEmail(fmt.Sprintf("u%d@x.com", i))
		require.NoError(t, err)
		u, err := entity.NewUser(entity.UserProps{Name: fmt.Sprintf("User %d", i), Email: email, Password: "secret-hash"})
		require.NoError(t, err)
		out = append(out, u)
	}
	return out
}

func TestWriteJSONLines_PagesUntilDone(t *testing.T) {
	list := &pagedList{users: makeUsers(t, 5)}
	var buf bytes.Buffer

	n, err := NewExporter(list, 2).WriteJSONLines(context.Background(), &buf)

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Len(t, list.calls, 3)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	var rec Record
	require.NoError(t, json.Unmarshal([]byte(lines[4]), &rec))
	assert.Equal(t, "u4@x.com", rec.Email)
	assert.NotContains(t, buf.String(), "secret-hash")
}

func TestWriteJSONLines_ExactMultipleStopsOnTotal(t *testing.T) {
	list := &pagedList{users: makeUsers(t, 4)}

	n, err := NewExporter(list, 2).WriteJSONLines(context.Background(), &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Len(t, list.calls, 2)
}

func TestWriteJSONLines_Empty(t *testing.T) {
	var buf bytes.Buffer
	n, err := NewExporter(&pagedList{}, 0).WriteJSONLines(context.Background(), &buf)

	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, buf.String())
}

func TestWriteJSONLines_Failure(t *testing.T) {
	list := &pagedList{users: makeUsers(t, 5), failOn: 2}

	n, err := NewExporter(list, 2).WriteJSONLines(context.Background(), &bytes.Buffer{})

	require.Error(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, apperror.IsKind(err, apperror.KindInternalServer))
}

func TestObjectName(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, "exports/users/users-20240601T123000Z.jsonl", ObjectName("exports/users", at))
}
