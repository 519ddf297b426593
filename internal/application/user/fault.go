package user

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-management/pkg/helpers"
)

// logFault records an unexpected gateway fault before it is folded into an
// InternalServerError. logger may be nil.
func logFault(logger *logrus.Logger, op string, err error, fields logrus.Fields) {
	if logger == nil {
		return
	}
	if fields == nil {
		fields = logrus.Fields{}
	}
	fields["op"] = op
	helpers.LogError(logger, "user operation failed", err, fields)
}
