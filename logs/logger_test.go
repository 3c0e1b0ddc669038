package logs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/dscope"

	"github.com/seako/understanding-computation/modes"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
		if !strings.Contains(buf.String(), "hello=world!") {
			t.Fatalf("got %q", buf.String())
		}
	})
}

func TestLoggerDevelopmentDebug(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Debug("reduce", "term", "1 + 2")
		if !strings.Contains(buf.String(), "term=\"1 + 2\"") {
			t.Fatalf("debug records should reach the terminal in development, got %q", buf.String())
		}
	})
}
