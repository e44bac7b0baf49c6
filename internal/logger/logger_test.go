package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Setenv("GIN_MODE", "release")

	var buf bytes.Buffer
	l := New(&buf, "")
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	assert.IsType(t, new(logrus.JSONFormatter), l.Formatter)

	l = New(&buf, "warn")
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())

	l = New(&buf, "loud")
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	assert.Contains(t, buf.String(), "unknown log level")
}
