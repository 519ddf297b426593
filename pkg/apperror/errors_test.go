package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadRequest(t *testing.T) {
	err := BadRequest("Name is required.")

	assert.Equal(t, KindBadRequest, err.Kind)
	assert.Equal(t, "Name is required.", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.True(t, err.IsBadRequest())
	assert.Nil(t, err.Cause)
	assert.Equal(t, "BadRequestError: Name is required.", err.Error())
}

func TestDefaultMessages(t *testing.T) {
	assert.Equal(t, "Bad Request", BadRequest("").Message)
	assert.Equal(t, "Not Found", NotFound("").Message)
	assert.Equal(t, "Internal server error.", InternalServer("", nil).Message)
}

func TestInvalidEmail(t *testing.T) {
	err := InvalidEmail()

	assert.Equal(t, KindInvalidEmail, err.Kind)
	assert.Equal(t, "Invalid email format", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())
	assert.True(t, err.IsBadRequest())
}

func TestNotFound(t *testing.T) {
	err := NotFound("User not found")

	assert.Equal(t, http.StatusNotFound, err.HTTPStatus())
	assert.False(t, err.IsBadRequest())
}

func TestInternalServerKeepsCause(t *testing.T) {
	cause := fmt.Errorf("database connection failed")
	err := InternalServer("Failed to update user", cause)

	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "database connection failed")
	assert.NotContains(t, InternalServer("x", nil).Error(), "<nil>")
}

func TestIsMatchesByKind(t *testing.T) {
	err := fmt.Errorf("lookup: %w", NotFound("User not found"))

	assert.True(t, errors.Is(err, NotFound("")))
	assert.False(t, errors.Is(err, BadRequest("")))
	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(errors.New("plain"), KindNotFound))
}

func TestAs(t *testing.T) {
	assert.Nil(t, As(nil))

	classified := BadRequest("nope")
	assert.Same(t, classified, As(fmt.Errorf("wrapped: %w", classified)))

	plain := errors.New("socket closed")
	got := As(plain)
	require.NotNil(t, got)
	assert.Equal(t, KindInternalServer, got.Kind)
	assert.ErrorIs(t, got, plain)
}

func TestZeroStatusFallsBackTo500(t *testing.T) {
	err := &Error{Kind: KindBadRequest, Message: "x"}
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus())
}
