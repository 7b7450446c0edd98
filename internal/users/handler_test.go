package users

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(NewService(NewMemoryRepo())).RegisterRoutes(r)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignupEndpoint(t *testing.T) {
	r := newTestRouter()

	w := postJSON(r, "/auth/signup", `{"name":"Ada","email":"ada@example.com","password":"s3cret"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		User PublicUser `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.User.Email != "ada@example.com" {
		t.Fatalf("user = %+v", body.User)
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Fatal("response leaks password material")
	}
}

func TestSignupDuplicateEmailIs400(t *testing.T) {
	r := newTestRouter()
	postJSON(r, "/auth/signup", `{"name":"Ada","email":"ada@example.com","password":"pw"}`)

	w := postJSON(r, "/auth/signup", `{"name":"Eve","email":"ada@example.com","password":"pw"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestLoginEndpoint(t *testing.T) {
	r := newTestRouter()
	postJSON(r, "/auth/signup", `{"name":"Ada","email":"ada@example.com","password":"s3cret"}`)

	w := postJSON(r, "/auth/login", `{"email":"ada@example.com","password":"s3cret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	w = postJSON(r, "/auth/login", `{"email":"ada@example.com","password":"nope"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad password status = %d", w.Code)
	}
}
