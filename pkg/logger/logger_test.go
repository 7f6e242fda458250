package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextFieldsPropagate(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "test", Level: zerolog.InfoLevel, Output: &buf})

	ctx := logg.WithRequestID(context.Background(), "req-123")
	ctx = logg.WithOrderNumber(ctx, "GFT-AB12CD34")
	logg.Info(ctx, "order.created")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "GFT-AB12CD34", entry["order_number"])
	assert.Equal(t, "test", entry["service"])
	assert.Equal(t, "order.created", entry["message"])
}

func TestParseLevelFallsBackToInfo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("chatty"))
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
}
