package jwtmw

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret"

// TestMain はテスト実行前にGinをテストモードに設定します。
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// protectedRouter builds a router with one protected endpoint that echoes the
// identity attached by the middleware.
func protectedRouter(secret string) *gin.Engine {
	r := gin.New()
	r.Use(AuthRequired(secret))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetUint(ContextUserID),
			"email":  c.GetString(ContextEmail),
		})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

// TestAuthRequired_MissingToken はAuthorizationヘッダーがない場合や
// プレフィックスが不正な場合に401「Missing token」が返されることを検証します。
func TestAuthRequired_MissingToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"no Bearer prefix", "some-token"},
		{"lowercase bearer", "bearer some-token"},
	}

	router := protectedRouter(testSecret)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.header)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
			if !strings.Contains(w.Body.String(), "FAILED : Missing token") {
				t.Errorf("expected missing-token envelope, got %s", w.Body.String())
			}
		})
	}
}

// TestAuthRequired_InvalidToken は署名改ざん・不正な形式のトークンで
// 401「Invalid or expired token」が返されることを検証します。
func TestAuthRequired_InvalidToken(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(testSecret, time.Hour)
	valid, err := gen.GenerateToken(1, "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	otherGen := NewGenerator("other-secret", time.Hour)
	wrongKey, err := otherGen.GenerateToken(1, "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage token", "not.a.jwt"},
		{"tampered signature", valid + "xx"},
		{"signed with wrong key", wrongKey},
		{"empty token", ""},
	}

	router := protectedRouter(testSecret)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, "Bearer "+tt.token)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
			if !strings.Contains(w.Body.String(), "FAILED : Invalid or expired token") {
				t.Errorf("expected invalid-token envelope, got %s", w.Body.String())
			}
		})
	}
}

// TestAuthRequired_ExpiredToken は期限切れトークンで401が返されることを検証します。
func TestAuthRequired_ExpiredToken(t *testing.T) {
	t.Parallel()

	// Negative expiration produces an already-expired token
	gen := NewGenerator(testSecret, -time.Minute)
	expired, err := gen.GenerateToken(1, "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	router := protectedRouter(testSecret)
	w := doRequest(router, "Bearer "+expired)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
	if !strings.Contains(w.Body.String(), "FAILED : Invalid or expired token") {
		t.Errorf("expected invalid-token envelope, got %s", w.Body.String())
	}
}

// TestAuthRequired_ValidToken は有効なトークンでハンドラーが実行され、
// コンテキストにユーザーIDとメールアドレスが設定されることを検証します。
func TestAuthRequired_ValidToken(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(testSecret, time.Hour)
	token, err := gen.GenerateToken(42, "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	router := protectedRouter(testSecret)
	w := doRequest(router, "Bearer "+token)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var body struct {
		UserID uint   `json:"userID"`
		Email  string `json:"email"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if body.UserID != 42 {
		t.Errorf("expected userID 42, got %d", body.UserID)
	}
	if body.Email != "user@example.com" {
		t.Errorf("expected email user@example.com, got %q", body.Email)
	}
}
