package logging

import (
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// DebugEnv is the environment variable that enables debug tracing.
const DebugEnv = "SYSTEM_CLEANUP_DEBUG"

// New returns a text-formatted logger writing to w at warn level, or at
// debug level when debug is true.
func New(w io.Writer, debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableQuote:     true,
	})
	log.SetLevel(logrus.WarnLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// DebugFromEnv reports whether DebugEnv holds a true value: anything
// strconv.ParseBool accepts as true, plus "yes" and "on".
func DebugFromEnv() bool {
	return parseDebug(os.Getenv(DebugEnv))
}

func parseDebug(v string) bool {
	if v == "yes" || v == "on" {
		return true
	}
	enabled, err := strconv.ParseBool(v)
	return err == nil && enabled
}

// Discard returns a logger that drops everything. Used as the fallback
// when a caller does not supply one.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)
	return log
}
