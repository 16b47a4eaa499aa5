package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fintrackhq/fintrack/internal/application"
	"github.com/fintrackhq/fintrack/internal/domain/entity"
	"github.com/fintrackhq/fintrack/internal/domain/repository"
	handlers "github.com/fintrackhq/fintrack/internal/interface/http"
	"github.com/fintrackhq/fintrack/internal/router"
	"github.com/fintrackhq/fintrack/internal/router/modules"
	"github.com/fintrackhq/fintrack/pkg/helpers"
	"github.com/fintrackhq/fintrack/pkg/validation"
)

var initValidation sync.Once

type fakeUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.User{}, byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.byID[u.ID] = &cp
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *entity.User) error {
	stored, ok := f.byID[u.ID]
	if !ok {
		return repository.ErrNotFound
	}
	*stored = *u
	return nil
}

type fakeTransactionRepo struct {
	byID  map[string]*entity.Transaction
	order []string
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{byID: map[string]*entity.Transaction{}}
}

func (f *fakeTransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	cp := *t
	f.byID[t.ID] = &cp
	f.order = append(f.order, t.ID)
	return nil
}

func (f *fakeTransactionRepo) ListByUser(ctx context.Context, userID string) ([]entity.Transaction, error) {
	out := make([]entity.Transaction, 0)
	for _, id := range f.order {
		if t := f.byID[id]; t != nil && t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTransactionRepo) Update(ctx context.Context, t *entity.Transaction) error {
	stored, ok := f.byID[t.ID]
	if !ok {
		return repository.ErrNotFound
	}
	*stored = *t
	return nil
}

func (f *fakeTransactionRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type testServer struct {
	Engine *gin.Engine
	Users  *fakeUserRepo
	Txs    *fakeTransactionRepo
	JWT    *helpers.JWTManager
}

// newTestServer wires the real modules over in-memory repositories,
// mirroring the production route registration.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	initValidation.Do(validation.Init)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	users := newFakeUserRepo()
	txs := newFakeTransactionRepo()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	cookies := helpers.NewCookie("localhost", false)

	userSvc := application.NewUserService(users, jwt, logger)
	txSvc := application.NewTransactionService(txs, nil, logger)

	engine := gin.New()
	reg := router.NewRegistry(engine)
	reg.API.GET("/health_check", handlers.HealthCheck)
	reg.Add(modules.NewAuthModule(handlers.NewAuthHandler(userSvc, logger, cookies), jwt))
	reg.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), jwt))
	reg.Add(modules.NewTransactionModule(handlers.NewTransactionHandler(txSvc, logger), jwt))
	reg.RegisterAll()

	return &testServer{Engine: engine, Users: users, Txs: txs, JWT: jwt}
}

func (s *testServer) do(t *testing.T, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	s.Engine.ServeHTTP(w, req)
	return w
}

// sessionFor issues a token for the given user id and wraps it in the
// session cookie.
func (s *testServer) sessionFor(t *testing.T, userID string) *http.Cookie {
	t.Helper()
	tok, _, err := s.JWT.Generate(userID)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	return &http.Cookie{Name: helpers.SessionCookieName, Value: tok}
}

// register creates a user through the API and returns its id plus the
// session cookie from the response.
func (s *testServer) register(t *testing.T, email string) (string, *http.Cookie) {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/auth/register", gin.H{
		"name":     "John Doe",
		"email":    email,
		"password": "password123",
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", w.Code, w.Body.String())
	}
	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == helpers.SessionCookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatalf("no session cookie on registration response")
	}
	u, err := s.Users.GetByEmail(context.Background(), email)
	if err != nil {
		t.Fatalf("registered user not stored: %v", err)
	}
	return u.ID, cookie
}
