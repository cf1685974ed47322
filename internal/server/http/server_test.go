package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/apikeeper/internal/logging"
	"github.com/dmitrijs2005/apikeeper/internal/server/config"
	"github.com/dmitrijs2005/apikeeper/internal/server/keygen"
	"github.com/dmitrijs2005/apikeeper/internal/server/metrics"
	"github.com/dmitrijs2005/apikeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/apikeeper/internal/server/services"
	"github.com/dmitrijs2005/apikeeper/internal/testutil"
)

type testEnv struct {
	db     *sql.DB
	router http.Handler
}

func newTestEnv(t *testing.T, staticDir string) *testEnv {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "http-test-secret"

	gen, err := keygen.NewGenerator(cfg.KeyPrefix, cfg.KeyRandomBytes)
	require.NoError(t, err)
	m := repomanager.NewSQLiteRepositoryManager()
	met := metrics.New()

	srv := NewServer("127.0.0.1:0", logging.Nop{}, Deps{
		Registration: services.NewRegistrationService(db, m, gen, cfg, services.WithMetrics(met)),
		Validation:   services.NewValidationService(db, m, services.WithMetrics(met)),
		Admin:        services.NewAdminService(db, m, cfg, services.WithMetrics(met)),
		Metrics:      met.Handler(),
		StaticDir:    staticDir,
	})
	return &testEnv{db: db, router: srv.Router()}
}

func (e *testEnv) do(t *testing.T, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestRootAndHealth(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", decodeBody(t, rec)["status"])

	rec = env.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestRequestIDHeader(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodGet, "/", "", map[string]string{requestIDHeader: "req-42"})
	assert.Equal(t, "req-42", rec.Header().Get(requestIDHeader))

	rec = env.do(t, http.MethodGet, "/", "", nil)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestRegisterThenValidate(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodPost, "/user/register",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	apiKey, _ := body["apiKey"].(string)
	assert.True(t, strings.HasPrefix(apiKey, keygen.DefaultPrefix))
	assert.NotEmpty(t, body["expires"])

	rec = env.do(t, http.MethodPost, "/validate-apikey", `{"apiKeyToValidate":"`+apiKey+`"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body = decodeBody(t, rec)
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, "API key is valid", body["message"])
	assert.NotEmpty(t, body["expires"])
	assert.NotContains(t, body, "reason")

	rec = env.do(t, http.MethodPost, "/user/register",
		`{"firstName":"Ada","lastName":"Byron","email":"ada@example.com"}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "duplicate_user", decodeBody(t, rec)["error"])
	assert.Equal(t, 1, testutil.CountRows(t, env.db, "api_keys"))

	rec = env.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "apikeeper_registrations_total")
}

func TestRegisterUser_BadRequest(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, "")

	for name, body := range map[string]string{
		"malformed":     `{"firstName":`,
		"missing email": `{"firstName":"Ada","lastName":"Lovelace"}`,
		"bad email":     `{"firstName":"Ada","lastName":"Lovelace","email":"nope"}`,
	} {
		rec := env.do(t, http.MethodPost, "/user/register", body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
		assert.Equal(t, "bad_request", decodeBody(t, rec)["error"], name)
	}
	assert.Equal(t, 0, testutil.CountRows(t, env.db, "users"))
}

func TestValidateKey_Rejections(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, "")

	now := time.Now().UTC()
	insert := func(value string, expires time.Time, status interface{}) {
		_, err := env.db.Exec(`INSERT INTO api_keys (key_value, start_date, out_of_date, status) VALUES (?, ?, ?, ?)`,
			value, now.Add(-time.Hour), expires, status)
		require.NoError(t, err)
	}
	insert("APIKEY_S3CR3T_inactive", now.Add(time.Hour), "Inactive")
	insert("APIKEY_S3CR3T_expired", now.Add(-time.Minute), "Active")
	insert("APIKEY_S3CR3T_legacy", now.Add(time.Hour), nil)

	tests := []struct {
		key        string
		wantCode   int
		wantReason string
		wantStatus interface{}
		hasStatus  bool
	}{
		{"APIKEY_S3CR3T_unknown", http.StatusUnauthorized, "KeyNotFound", nil, false},
		{"APIKEY_S3CR3T_inactive", http.StatusForbidden, "KeyInactive", "Inactive", true},
		{"APIKEY_S3CR3T_expired", http.StatusForbidden, "KeyExpired", nil, false},
		{"APIKEY_S3CR3T_legacy", http.StatusForbidden, "KeyInactive", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/validate-apikey", `{"apiKeyToValidate":"`+tt.key+`"}`, nil)
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

			body := decodeBody(t, rec)
			assert.Equal(t, false, body["valid"])
			assert.Equal(t, tt.wantReason, body["reason"])
			assert.NotContains(t, body, "expires")

			status, ok := body["status"]
			assert.Equal(t, tt.hasStatus, ok)
			assert.Equal(t, tt.wantStatus, status)
		})
	}

	rec := env.do(t, http.MethodPost, "/validate-apikey", `{"apiKeyToValidate":"  "}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminFlow(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, "")

	creds := `{"email":"root@example.com","password":"correct horse"}`

	rec := env.do(t, http.MethodPost, "/admin/register", creds, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "root@example.com", decodeBody(t, rec)["email"])

	rec = env.do(t, http.MethodPost, "/admin/register", creds, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "duplicate_admin", decodeBody(t, rec)["error"])

	rec = env.do(t, http.MethodPost, "/admin/register", `{"email":"x@example.com","password":"short"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/admin/login", `{"email":"root@example.com","password":"wrong password"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", decodeBody(t, rec)["error"])

	rec = env.do(t, http.MethodPost, "/admin/login", creds, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	token, _ := decodeBody(t, rec)["token"].(string)
	require.NotEmpty(t, token)

	rec = env.do(t, http.MethodGet, "/admin/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", decodeBody(t, rec)["error"])

	rec = env.do(t, http.MethodGet, "/admin/users", "", map[string]string{"Authorization": "Bearer not-a-token"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid_token", decodeBody(t, rec)["error"])

	rec = env.do(t, http.MethodPost, "/user/register",
		`{"firstName":"Grace","lastName":"Hopper","email":"grace@example.com"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/admin/users", "", map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "grace@example.com", rows[0]["email"])
	assert.Equal(t, "Active", rows[0]["status"])
}

func TestStaticFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(\"apikeeper\")"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "health"), []byte("shadowed"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "css"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "site.css"), []byte("body{}"), 0o600))
	env := newTestEnv(t, dir)

	rec := env.do(t, http.MethodGet, "/app.js", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "apikeeper")

	rec = env.do(t, http.MethodGet, "/css/site.css", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())

	rec = env.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/missing.js", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = newTestEnv(t, "").do(t, http.MethodGet, "/app.js", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodOptions, "/validate-apikey", "", map[string]string{
		"Origin":                        "https://dashboard.example.com",
		"Access-Control-Request-Method": http.MethodPost,
	})
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	t.Parallel()
	srv := NewServer("127.0.0.1:0", logging.Nop{}, Deps{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_BadAddress(t *testing.T) {
	t.Parallel()
	srv := NewServer("not-an-address", logging.Nop{}, Deps{})
	assert.Error(t, srv.Run(context.Background()))
}
