package logctx_test

import (
	"testing"

	"github.com/nguyentranbao-ct/product-dashboard/pkg/logger"
	"github.com/nguyentranbao-ct/product-dashboard/pkg/logger/logctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestID(t *testing.T) {
	ctx := t.Context()
	assert.Empty(t, logctx.RequestID(ctx))

	ctx = logctx.WithRequestID(ctx, "req-1")
	assert.Equal(t, "req-1", logctx.RequestID(ctx))
}

func TestInfowAttachesRequestID(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger.Replace(zap.New(core))
	t.Cleanup(func() { logger.Replace(nil) })

	ctx := logctx.WithRequestID(t.Context(), "req-42")
	logctx.Infow(ctx, "products listed", "total_items", 3)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "products listed", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-42", fields["request_id"])
	assert.EqualValues(t, 3, fields["total_items"])
}
