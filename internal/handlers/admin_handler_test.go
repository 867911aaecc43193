package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/salonic/salon-scheduler/internal/config"
	"github.com/salonic/salon-scheduler/internal/middleware"
)

func newAdminRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAdminHandler(cfg, nil, nil, nil, nil)

	r := gin.New()
	r.POST("/api/admin/login", h.Login)

	secured := r.Group("/api/admin")
	secured.Use(middleware.AdminAuth(cfg))
	secured.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

func postLogin(r *gin.Engine, password string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"password":"`+password+`"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAdminLogin(t *testing.T) {
	cfg := &config.Config{AdminPassword: "titok", JWTSecret: "test-secret"}
	r := newAdminRouter(cfg)

	t.Run("wrong password", func(t *testing.T) {
		w := postLogin(r, "nem-titok")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("correct password issues a token", func(t *testing.T) {
		w := postLogin(r, "titok")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
		}

		var body struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Token == "" {
			t.Fatalf("no token in response: %s", w.Body.String())
		}

		// The token must open the secured group.
		w2 := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer "+body.Token)
		r.ServeHTTP(w2, req)
		if w2.Code != http.StatusOK {
			t.Errorf("secured route status = %d, want 200", w2.Code)
		}
	})
}

func TestAdminLogin_Disabled(t *testing.T) {
	cfg := &config.Config{AdminPassword: "", JWTSecret: "test-secret"}
	r := newAdminRouter(cfg)

	w := postLogin(r, "anything")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 when no admin password is configured", w.Code)
	}
}

func TestAdminAuth_RejectsBadTokens(t *testing.T) {
	cfg := &config.Config{AdminPassword: "titok", JWTSecret: "test-secret"}
	r := newAdminRouter(cfg)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
			if c.header != "" {
				req.Header.Set("Authorization", c.header)
			}
			r.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}
