package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" validate:"required,max=5"`
	Email string `json:"email" validate:"omitempty,email"`
	Page  int    `form:"page" validate:"omitempty,min=1"`
	Size  int    `form:"size" validate:"omitempty,pagesize"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	Configure(v)
	return v
}

func TestToDetails_ValidationErrors(t *testing.T) {
	err := newValidator().Struct(sample{Email: "nope", Page: -1, Size: 500})
	require.Error(t, err)

	got := ToDetails(err)
	assert.Equal(t, map[string]string{
		"name":  "is required",
		"email": "must be a valid email",
		"page":  "must be at least 1",
		"size":  "is out of range",
	}, got)
}

func TestToDetails_StringLength(t *testing.T) {
	err := newValidator().Struct(sample{Name: "toolongname"})
	assert.Equal(t, "must be at most 5 characters", ToDetails(err)["name"])
}

func TestToDetails_JSON(t *testing.T) {
	var s sample
	err := json.Unmarshal([]byte(`{"name":`), &s)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))

	err = json.Unmarshal([]byte(`{"name":1}`), &s)
	assert.Equal(t, map[string]string{"name": "must be a string"}, ToDetails(err))
}

func TestToDetails_Body(t *testing.T) {
	var s sample
	err := json.NewDecoder(strings.NewReader("")).Decode(&s)
	assert.Equal(t, map[string]string{"payload": "body is required"}, ToDetails(err))

	err = json.NewDecoder(strings.NewReader(`{"name":`)).Decode(&s)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
}

func TestToDetails_Nil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}
