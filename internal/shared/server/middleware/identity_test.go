package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func identityFixture() (*gin.Engine, *struct {
	userID string
	guest  bool
}) {
	gin.SetMode(gin.TestMode)
	seen := &struct {
		userID string
		guest  bool
	}{}

	r := gin.New()
	r.Use(Identity())
	r.GET("/whoami", func(c *gin.Context) {
		seen.userID = UserIDFromContext(c)
		seen.guest = IsGuest(c)
		c.Status(http.StatusOK)
	})
	return r, seen
}

func TestIdentityFromHeader(t *testing.T) {
	r, seen := identityFixture()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-User-Id", "user-42")
	r.ServeHTTP(httptest.NewRecorder(), req)

	if seen.userID != "user-42" || seen.guest {
		t.Fatalf("seen = %+v", seen)
	}
}

func TestIdentityDefaultsToGuest(t *testing.T) {
	r, seen := identityFixture()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	if seen.userID != GuestID || !seen.guest {
		t.Fatalf("seen = %+v", seen)
	}
}

func TestIdentityBlankHeaderIsGuest(t *testing.T) {
	r, seen := identityFixture()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-User-Id", "   ")
	r.ServeHTTP(httptest.NewRecorder(), req)

	if seen.userID != GuestID || !seen.guest {
		t.Fatalf("seen = %+v", seen)
	}
}
