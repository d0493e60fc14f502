package ctxlog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/internal/ctxlog"
)

func TestFromContext_ReturnsEmbeddedLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := ctxlog.WithLogger(context.Background(), logger)
	ctxlog.FromContext(ctx).Info("hello", "k", 1)

	require.Same(t, logger, ctxlog.FromContext(ctx))
	require.Contains(t, buf.String(), "msg=hello k=1")
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	require.Same(t, slog.Default(), ctxlog.FromContext(context.Background()))
}

func TestFromContext_NilContext(t *testing.T) {
	var nilCtx context.Context
	require.Same(t, slog.Default(), ctxlog.FromContext(nilCtx))

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := ctxlog.WithLogger(nilCtx, logger)
	require.Same(t, logger, ctxlog.FromContext(ctx))
}

func TestFromContext_NilLoggerFallsBack(t *testing.T) {
	ctx := ctxlog.WithLogger(context.Background(), nil)
	require.Same(t, slog.Default(), ctxlog.FromContext(ctx))
}
