package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func newAuthRouter(ac *AuthController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/register", ac.Register)
	r.POST("/api/login", ac.Login)
	return r
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "email", "name", "password_hash", "created_at", "updated_at",
	})
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("taken@example.com").
		WillReturnRows(userRows().
			AddRow("u1", "taken@example.com", "Existing", "hash", time.Now(), time.Now()))

	r := newAuthRouter(NewAuthController(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/register",
		`{"email":"taken@example.com","password":"secret123","name":"Someone"}`))

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRegisterSuccess(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("new@example.com").
		WillReturnRows(userRows())
	mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	r := newAuthRouter(NewAuthController(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/register",
		`{"email":"new@example.com","password":"secret123","name":"New User"}`))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "secret123") || strings.Contains(w.Body.String(), "password_hash") {
		t.Fatalf("response must not leak credentials: %s", w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db, mock := newTestDB(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("demo@example.com").
		WillReturnRows(userRows().
			AddRow("u1", "demo@example.com", "Demo", string(hash), time.Now(), time.Now()))

	r := newAuthRouter(NewAuthController(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/login",
		`{"email":"demo@example.com","password":"wrong-password"}`))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("nobody@example.com").
		WillReturnRows(userRows())

	r := newAuthRouter(NewAuthController(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/login",
		`{"email":"nobody@example.com","password":"whatever1"}`))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLoginIssuesToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db, mock := newTestDB(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("demo@example.com").
		WillReturnRows(userRows().
			AddRow("u1", "demo@example.com", "Demo", string(hash), time.Now(), time.Now()))

	r := newAuthRouter(NewAuthController(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/login",
		`{"email":"demo@example.com","password":"right-password"}`))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(resp.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("expected a valid token, got %v", err)
	}
	if claims["user_id"] != "u1" {
		t.Fatalf("unexpected token claims: %v", claims)
	}
}
