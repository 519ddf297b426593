package helpers

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	dev := NewLogger("app", "development")
	assert.Equal(t, logrus.DebugLevel, dev.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, dev.Formatter)

	prod := NewLogger("app", "production")
	assert.Equal(t, logrus.InfoLevel, prod.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, prod.Formatter)
}

func TestLogError(t *testing.T) {
	logger, hook := test.NewNullLogger()
	cause := errors.New("boom")

	LogError(logger, "failed", cause, logrus.Fields{"op": "x"})

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, cause, entry.Data[logrus.ErrorKey])
	assert.Equal(t, "x", entry.Data["op"])
}

func TestLogInfo_NilFields(t *testing.T) {
	logger, hook := test.NewNullLogger()

	LogInfo(logger, "hello", nil)
	assert.Equal(t, "hello", hook.LastEntry().Message)
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://storage.googleapis.com/b/exports/users.jsonl", PublicURL("b", "exports/users.jsonl"))
}
