package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestFromContext(t *testing.T) {
	t.Run("empty context discards", func(t *testing.T) {
		logger := FromContext(context.Background())
		if logger == nil {
			t.Fatal("FromContext returned nil")
		}
		if logger.Enabled(context.Background(), slog.LevelError) {
			t.Error("fallback logger should not be enabled")
		}
	})

	t.Run("round trip", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &Config{Level: "debug", Writer: &buf}
		logger, err := cfg.Configure()
		if err != nil {
			t.Fatal(err)
		}

		ctx := WithLogger(context.Background(), logger)
		FromContext(ctx).Debug("hello", Tag("1.0.0"))

		if !strings.Contains(buf.String(), "tag=1.0.0") {
			t.Errorf("log output = %q, want tag attribute", buf.String())
		}
	})
}
