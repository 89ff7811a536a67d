package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/commercekit/ecommerce-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn      func(ctx context.Context, username, email, password string) (*domain.User, error)
	registerAdminFn func(ctx context.Context, username, email, password string) (*domain.User, error)
	loginFn         func(ctx context.Context, username, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, username, email, password)
}

func (s *stubAuthService) RegisterAdmin(ctx context.Context, username, email, password string) (*domain.User, error) {
	return s.registerAdminFn(ctx, username, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

type stubUserService struct {
	promoteFn func(ctx context.Context, username string) (bool, error)
	demoteFn  func(ctx context.Context, username string) (bool, error)
	getFn     func(ctx context.Context, username string) (*domain.User, error)
}

func (s *stubUserService) Promote(ctx context.Context, username string) (bool, error) {
	return s.promoteFn(ctx, username)
}

func (s *stubUserService) Demote(ctx context.Context, username string) (bool, error) {
	return s.demoteFn(ctx, username)
}

func (s *stubUserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.getFn(ctx, username)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			if username != "alice" || email != "alice@example.com" {
				t.Fatalf("unexpected args: %s %s", username, email)
			}
			return &domain.User{Username: username, Email: email, Roles: []domain.Role{domain.RoleUser}}, nil
		},
	}
	handler := NewAuthHandler(stub, &stubUserService{})

	body := strings.NewReader(`{"username":"alice","email":"alice@example.com","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["username"] != "alice" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	roles, _ := user["roles"].([]any)
	if len(roles) != 1 || roles[0] != "USER" {
		t.Fatalf("expected roles [USER], got %v", roles)
	}
}

func TestAuthHandler_RegisterAdmin_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerAdminFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			return &domain.User{Username: username, Email: email, Roles: []domain.Role{domain.RoleAdmin}}, nil
		},
	}
	handler := NewAuthHandler(stub, &stubUserService{})

	body := strings.NewReader(`{"username":"root","email":"root@example.com","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register/admin", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.RegisterAdmin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_DuplicateUsername(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			return nil, domain.ErrUsernameTaken
		},
	}
	handler := NewAuthHandler(stub, &stubUserService{})

	body := strings.NewReader(`{"username":"bob","email":"bob@example.com","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "username") {
		t.Fatalf("expected error to name the username, got %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, email, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, &stubUserService{})

	// Missing email and password.
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"username":"bob"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.User, error) {
			return "token-123", &domain.User{Username: username, Roles: []domain.Role{domain.RoleUser}}, nil
		},
	}
	handler := NewAuthHandler(stub, &stubUserService{})

	body := strings.NewReader(`{"username":"alice","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token-123" {
		t.Fatalf("expected token in response, got %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, &stubUserService{})

	body := strings.NewReader(`{"username":"alice","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Login(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Promote_Success(t *testing.T) {
	e := newTestEcho()
	users := &stubUserService{
		promoteFn: func(ctx context.Context, username string) (bool, error) {
			if username != "bob" {
				t.Fatalf("unexpected username %q", username)
			}
			return true, nil
		},
	}
	handler := NewAuthHandler(&stubAuthService{}, users)

	req := httptest.NewRequest(http.MethodPost, "/auth/promote/bob", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("username")
	c.SetParamValues("bob")

	if err := handler.Promote(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "promoted to admin") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Promote_UserNotFound(t *testing.T) {
	e := newTestEcho()
	users := &stubUserService{
		promoteFn: func(ctx context.Context, username string) (bool, error) {
			return false, nil
		},
	}
	handler := NewAuthHandler(&stubAuthService{}, users)

	req := httptest.NewRequest(http.MethodPost, "/auth/promote/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("username")
	c.SetParamValues("ghost")

	_ = handler.Promote(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAuthHandler_Demote_Success(t *testing.T) {
	e := newTestEcho()
	users := &stubUserService{
		demoteFn: func(ctx context.Context, username string) (bool, error) {
			return true, nil
		},
	}
	handler := NewAuthHandler(&stubAuthService{}, users)

	req := httptest.NewRequest(http.MethodPost, "/auth/demote/bob", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("username")
	c.SetParamValues("bob")

	if err := handler.Demote(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "demoted to regular user") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_GetUser_NotFound(t *testing.T) {
	e := newTestEcho()
	users := &stubUserService{
		getFn: func(ctx context.Context, username string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewAuthHandler(&stubAuthService{}, users)

	req := httptest.NewRequest(http.MethodGet, "/auth/users/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("username")
	c.SetParamValues("ghost")

	_ = handler.GetUser(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
