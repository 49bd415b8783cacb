package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"mamacare-api/internal/domain"
	"mamacare-api/internal/repository"
	"mamacare-api/internal/service"
)

type mockAccountRepo struct {
	byEmail map[string]domain.Account
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{byEmail: make(map[string]domain.Account)}
}

func (m *mockAccountRepo) Create(_ context.Context, account domain.Account) error {
	if _, ok := m.byEmail[account.Email]; ok {
		return repository.ErrEmailTaken
	}
	for _, existing := range m.byEmail {
		if existing.Username == account.Username {
			return repository.ErrUsernameTaken
		}
	}
	m.byEmail[account.Email] = account
	return nil
}

func (m *mockAccountRepo) GetByEmail(_ context.Context, email string) (domain.Account, error) {
	account, ok := m.byEmail[email]
	if !ok {
		return domain.Account{}, pgx.ErrNoRows
	}
	return account, nil
}

func setupAccountRouter(repo repository.AccountRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	accountSvc := service.NewAccountService(logger, repo)
	tokenSvc := service.NewTokenService("secret", time.Hour)
	h := NewAccountHandler(logger, accountSvc, tokenSvc)
	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/protected", BearerAuth(logger, tokenSvc), h.Protected)
	return r
}

func performRequest(r http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRegister_ThenDuplicateCaseFolded(t *testing.T) {
	repo := newMockAccountRepo()
	r := setupAccountRouter(repo)

	rec := performRequest(r, http.MethodPost, "/register", map[string]string{
		"username": "ana",
		"email":    "Ana@X.com",
		"password": "secret1",
	}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = performRequest(r, http.MethodPost, "/register", map[string]string{
		"username": "ana2",
		"email":    "ana@x.com",
		"password": "secret1",
	}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for duplicate email, got %d", rec.Code)
	}
	if len(repo.byEmail) != 1 {
		t.Fatalf("expected exactly one stored account, got %d", len(repo.byEmail))
	}
}

func TestRegister_InvalidBody(t *testing.T) {
	r := setupAccountRouter(newMockAccountRepo())

	rec := performRequest(r, http.MethodPost, "/register", map[string]string{
		"username": "ana",
		"email":    "not-an-email",
		"password": "secret1",
	}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestLogin_TokenAcceptedByProtectedRoute(t *testing.T) {
	repo := newMockAccountRepo()
	r := setupAccountRouter(repo)

	rec := performRequest(r, http.MethodPost, "/register", map[string]string{
		"username": "ana",
		"email":    "ana@x.com",
		"password": "secret1",
	}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", rec.Code)
	}

	rec = performRequest(r, http.MethodPost, "/login", map[string]string{
		"email":    "ana@x.com",
		"password": "secret1",
	}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var loginResp struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if loginResp.Token == "" || loginResp.Username != "ana" {
		t.Fatalf("unexpected login response: %+v", loginResp)
	}

	rec = performRequest(r, http.MethodGet, "/protected", nil, map[string]string{
		"Authorization": "Bearer " + loginResp.Token,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("protected: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var protectedResp struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &protectedResp); err != nil {
		t.Fatalf("decode protected response: %v", err)
	}
	if protectedResp.User.Email != "ana@x.com" {
		t.Fatalf("expected token to decode to the same identity, got %+v", protectedResp)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockAccountRepo()
	r := setupAccountRouter(repo)

	performRequest(r, http.MethodPost, "/register", map[string]string{
		"username": "ana",
		"email":    "ana@x.com",
		"password": "secret1",
	}, nil)

	rec := performRequest(r, http.MethodPost, "/login", map[string]string{
		"email":    "ana@x.com",
		"password": "wrong",
	}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := resp["token"]; ok {
		t.Fatalf("expected no token on wrong password, got %v", resp)
	}
}

func TestLogin_EmailNotFound(t *testing.T) {
	r := setupAccountRouter(newMockAccountRepo())

	rec := performRequest(r, http.MethodPost, "/login", map[string]string{
		"email":    "missing@x.com",
		"password": "secret1",
	}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
