// internal/handlers/http/login_handler_test.go

package http_test

import (
	"bytes"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	hh "dca-oilgas/internal/handlers/http"
	"dca-oilgas/internal/middleware"
)

// Tanpa ADMIN_* di env, login harus ditolak 403.
func TestLoginNotConfigured(t *testing.T) {
	t.Setenv("ADMIN_USER", "")
	t.Setenv("ADMIN_PASS_HASH", "")

	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "x"})
	req := httptest.NewRequest(nethttp.MethodPost, "/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	hh.LoginHandler(rec, req)

	if rec.Code != nethttp.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

// Login valid -> token JWT yang diterima middleware AdminJWTAuth.
func TestLoginIssuesUsableToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	t.Setenv("ADMIN_USER", "admin")
	t.Setenv("ADMIN_PASS_HASH", string(hash))
	t.Setenv("ADMIN_JWT_SECRET", "test-secret")

	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "rahasia"})
	req := httptest.NewRequest(nethttp.MethodPost, "/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	hh.LoginHandler(rec, req)

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("no token in response: %v, body=%s", err, rec.Body.String())
	}

	// Token harus lolos middleware admin.
	protected := middleware.AdminJWTAuth(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusOK)
	}))
	preq := httptest.NewRequest(nethttp.MethodGet, "/admin/config", nil)
	preq.Header.Set("Authorization", "Bearer "+resp.Token)
	prec := httptest.NewRecorder()
	protected.ServeHTTP(prec, preq)

	if prec.Code != nethttp.StatusOK {
		t.Fatalf("token rejected by middleware: %d", prec.Code)
	}
}

// Password salah -> 401.
func TestLoginWrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.MinCost)
	t.Setenv("ADMIN_USER", "admin")
	t.Setenv("ADMIN_PASS_HASH", string(hash))
	t.Setenv("ADMIN_JWT_SECRET", "test-secret")

	body, _ := json.Marshal(map[string]string{"username": "admin", "password": "salah"})
	req := httptest.NewRequest(nethttp.MethodPost, "/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	hh.LoginHandler(rec, req)

	if rec.Code != nethttp.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
