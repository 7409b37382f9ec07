package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/upgradehq/upgrade-backend/internal/config"
	"github.com/upgradehq/upgrade-backend/internal/utils"
)

func testRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/private", AuthMiddleware(cfg), func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	router.GET("/public", OptionalAuthMiddleware(cfg), func(c *gin.Context) {
		if viewer := ViewerID(c); viewer != nil {
			c.JSON(http.StatusOK, gin.H{"viewer": *viewer})
			return
		}
		c.JSON(http.StatusOK, gin.H{"viewer": nil})
	})
	return router
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	router := testRouter(&config.Config{JWTSecret: "secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	router := testRouter(&config.Config{JWTSecret: "secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	router := testRouter(cfg)

	token, err := utils.GenerateToken(7, "ada@example.com", "user", cfg.JWTSecret)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestOptionalAuthAllowsAnonymous(t *testing.T) {
	router := testRouter(&config.Config{JWTSecret: "secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("anonymous request should pass, got %d", w.Code)
	}
}

func TestOptionalAuthResolvesViewer(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	router := testRouter(cfg)

	token, err := utils.GenerateToken(7, "ada@example.com", "user", cfg.JWTSecret)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != `{"viewer":7}` {
		t.Errorf("expected resolved viewer, got %s", body)
	}
}
