package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"hotel-booking/models"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	u := models.User{ID: 7, Username: "asha", IsAdmin: true}

	tok, expires, err := issuer.GenerateToken(u)
	if err != nil {
		t.Fatal(err)
	}
	if time.Until(expires) < 59*time.Minute {
		t.Errorf("expires too early: %v", expires)
	}

	claims, err := issuer.ParseToken(tok)
	if err != nil {
		t.Fatal(err)
	}
	if got := claims.Actor(); got != (models.Actor{ID: 7, Username: "asha", IsAdmin: true}) {
		t.Errorf("actor = %+v", got)
	}
}

func TestParseTokenRejects(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	u := models.User{ID: 7, Username: "asha"}

	t.Run("wrong secret", func(t *testing.T) {
		tok, _, _ := NewTokenIssuer("other", time.Hour).GenerateToken(u)
		if _, err := issuer.ParseToken(tok); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("expired", func(t *testing.T) {
		old := NewTokenIssuer("secret", time.Hour)
		old.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		tok, _, _ := old.GenerateToken(u)
		if _, err := issuer.ParseToken(tok); !errors.Is(err, jwt.ErrTokenExpired) {
			t.Fatalf("expected ErrTokenExpired, got %v", err)
		}
	})

	t.Run("anonymous subject", func(t *testing.T) {
		tok, _, _ := issuer.GenerateToken(models.User{Username: "ghost"})
		if _, err := issuer.ParseToken(tok); err == nil {
			t.Fatal("expected error for user id 0")
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := issuer.ParseToken("not.a.token"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func newAuthRouter(issuer *TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthRequired(issuer), func(c *gin.Context) {
		c.JSON(http.StatusOK, CurrentActor(c))
	})
	r.GET("/admin", AuthRequired(issuer), AdminRequired(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	r := newAuthRouter(issuer)
	userTok, _, _ := issuer.GenerateToken(models.User{ID: 1, Username: "guest"})
	adminTok, _, _ := issuer.GenerateToken(models.User{ID: 2, Username: "admin", IsAdmin: true})

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"no header", "/me", "", http.StatusUnauthorized},
		{"not bearer", "/me", "Token " + userTok, http.StatusUnauthorized},
		{"bad token", "/me", "Bearer nope", http.StatusUnauthorized},
		{"user", "/me", "Bearer " + userTok, http.StatusOK},
		{"user on admin route", "/admin", "Bearer " + userTok, http.StatusForbidden},
		{"admin", "/admin", "Bearer " + adminTok, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (%s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}
