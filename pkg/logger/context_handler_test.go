package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ruleset/pkg/logger"
)

type invoice struct{}

func TestContextHandler(t *testing.T) {
	t.Parallel()

	t.Run("model extractor", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(logger.ModelExtractor(), nil))

		ctx := logger.ContextWithModel(context.Background(), reflect.TypeFor[invoice]())
		log.WarnContext(ctx, "column lookup failed")
		assert.Equal(t, "logger_test.invoice", decode(t, buf)["model"])
	})

	t.Run("explicit attributes win", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(logger.ModelExtractor()))

		ctx := logger.ContextWithModel(context.Background(), reflect.TypeFor[invoice]())
		log.InfoContext(ctx, "derived", slog.String("model", "explicit"))
		assert.Equal(t, 1, strings.Count(buf.String(), `"model"`))
		assert.Equal(t, "explicit", decode(t, buf)["model"])
	})

	t.Run("survives With and WithGroup", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(logger.ModelExtractor())).
			With(logger.Component("validation"))

		ctx := logger.ContextWithModel(context.Background(), reflect.TypeFor[invoice]())
		log.InfoContext(ctx, "derived")
		entry := decode(t, buf)
		assert.Equal(t, "validation", entry["component"])
		assert.Equal(t, "logger_test.invoice", entry["model"])

		buf.Reset()
		log.WithGroup("engine").InfoContext(ctx, "grouped")
		group, ok := decode(t, buf)["engine"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "logger_test.invoice", group["model"])
	})

	t.Run("no model in context", func(t *testing.T) {
		t.Parallel()

		_, ok := logger.ModelFromContext(context.Background())
		assert.False(t, ok)

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(logger.ModelExtractor()))
		log.InfoContext(context.Background(), "hello")
		assert.NotContains(t, decode(t, buf), "model")
	})
}
