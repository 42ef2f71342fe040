package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer

	quiet := New(&buf, false)
	assert.Equal(t, logrus.WarnLevel, quiet.GetLevel())
	quiet.Debug("hidden")
	assert.Empty(t, buf.String())

	verbose := New(&buf, true)
	assert.Equal(t, logrus.DebugLevel, verbose.GetLevel())
	verbose.WithField("cmd", "paccache").Debug("exec")
	assert.Contains(t, buf.String(), "exec")
	assert.Contains(t, buf.String(), "cmd=paccache")
}

func TestParseDebug(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"garbage", false},
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"on", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDebug(tt.value))
		})
	}
}

func TestDebugFromEnv(t *testing.T) {
	t.Setenv(DebugEnv, "1")
	assert.True(t, DebugFromEnv())

	t.Setenv(DebugEnv, "")
	assert.False(t, DebugFromEnv())
}

func TestDiscard(t *testing.T) {
	log := Discard()
	assert.NotPanics(t, func() { log.Error("dropped") })
	assert.False(t, log.IsLevelEnabled(logrus.ErrorLevel))
}
