package handlers

import (
	"expvar"

	"github.com/oksasatya/go-ddd-user-management/pkg/apperror"
)

// userOperations counts use case outcomes as "<op>.ok" or "<op>.<kind>".
// Published on /debug/vars.
var userOperations = expvar.NewMap("user_operations")

func recordOutcome(op string, appErr *apperror.Error) {
	if appErr == nil {
		userOperations.Add(op+".ok", 1)
		return
	}
	userOperations.Add(op+"."+string(appErr.Kind), 1)
}
