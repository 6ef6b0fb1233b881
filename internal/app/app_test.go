package app

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
app:
  tz: UTC
  server:
    http:
      address: "127.0.0.1:0"
kvstore:
  driver: memory
otp:
  driver: static
  static:
    code: "111111"
modules:
  account:
    enabled: true
  session:
    enabled: true
`

func startTestApp(t *testing.T) (string, *App) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))
	t.Setenv("CONFIG_PATH", path)

	a := New()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	errChan := a.Serve(l)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		a.Stop(ctx)
		<-errChan
	})

	return "http://" + l.Addr().String(), a
}

func doJSON(t *testing.T, method, url, body string) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}

	return resp.StatusCode, out
}

func TestApp_Wiring(t *testing.T) {
	base, a := startTestApp(t)

	require.NotNil(t, a.accountUC)
	require.NotNil(t, a.sessionUC)

	code, body := doJSON(t, http.MethodGet, base+"/health", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])

	code, _ = doJSON(t, http.MethodPost, base+"/api/v1/account/register",
		`{"name":"Ayu","email":"ayu@mail.com","password":"Secret!a"}`)
	assert.Equal(t, http.StatusCreated, code)

	code, body = doJSON(t, http.MethodPost, base+"/api/v1/account/login",
		`{"email":"ayu@mail.com","password":"Secret!a"}`)
	require.Equal(t, http.StatusOK, code)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ayu", data["name"])

	code, body = doJSON(t, http.MethodPost, base+"/api/v1/account/login",
		`{"email":"ayu@mail.com","password":"secret!A"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid Credentials", body["message"])

	code, body = doJSON(t, http.MethodPost, base+"/api/v1/sessions", "")
	require.Equal(t, http.StatusCreated, code)
	data, ok = body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "SplashScreen", data["screen"])
}
