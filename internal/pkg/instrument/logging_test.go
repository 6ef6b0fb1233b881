package instrument

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	buf.Reset()

	return m
}

func TestHandler_MasksFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(newHandler(buf, "ayola", nil, []string{"password", " userPassword "}))

	logger.Info("register",
		"password", "Secret123!",
		"userpassword", "Secret123!",
		"email", "user@example.com",
		"body", map[string]any{"password": "x", "name": "n"},
	)

	line := decodeLine(t, buf)
	assert.Equal(t, "***", line["password"])
	assert.Equal(t, "***", line["userpassword"])
	assert.Equal(t, "user@example.com", line["email"])
	assert.Equal(t, map[string]any{"password": "***", "name": "n"}, line["body"])
	assert.Equal(t, "ayola", line["service"])
	assert.Equal(t, "INFO", line["severity"])
}

func TestHandler_CorrelationID(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(newHandler(buf, "ayola", nil, nil)).With("module", "session")

	ctx := SetCorrelationID(context.Background(), "cid-1")
	logger.InfoContext(ctx, "otp submitted")

	line := decodeLine(t, buf)
	assert.Equal(t, "cid-1", line["_cID"])
	assert.Equal(t, "session", line["module"])
	assert.Equal(t, "ayola", line["service"])
}

func TestGetCorrelationID(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
	//nolint:staticcheck // nil context is part of the contract
	assert.Empty(t, GetCorrelationID(nil))
	assert.Equal(t, "abc", GetCorrelationID(SetCorrelationID(context.Background(), "abc")))
}

func TestNew_Disabled(t *testing.T) {
	ins, err := New(context.Background(), &Config{Enabled: false, ServiceName: "ayola"})
	require.NoError(t, err)

	assert.NotNil(t, ins.Tracer("t"))
	assert.NotNil(t, ins.Meter("m"))
	assert.NoError(t, ins.Shutdown(context.Background()))
}
