package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"

	userhttp "github.com/mammidi-vikram/netflix/internal/user/delivery/http"
	"github.com/mammidi-vikram/netflix/internal/user/domain"
	"github.com/mammidi-vikram/netflix/internal/user/usecase/command"
	"github.com/mammidi-vikram/netflix/internal/user/usecase/query"
	"github.com/mammidi-vikram/netflix/pkg/auth"
)

// memoryUserRepository backs the handler tests without a database.
type memoryUserRepository struct {
	users  map[uint]*domain.User
	nextID uint
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[uint]*domain.User), nextID: 1}
}

func (r *memoryUserRepository) Create(user *domain.User) error {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return domain.ErrDuplicate
		}
	}
	user.ID = r.nextID
	r.nextID++
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memoryUserRepository) FindByID(id uint) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memoryUserRepository) FindByUsername(username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryUserRepository) FindByEmail(email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryUserRepository) ExistsOtherWithEmail(email string, excludeID uint) (bool, error) {
	for _, u := range r.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryUserRepository) Update(user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	for _, u := range r.users {
		if u.ID != user.ID && (u.Username == user.Username || u.Email == user.Email) {
			return domain.ErrDuplicate
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

// The handler registers prometheus collectors in its constructor, so the
// whole package shares a single instance.
var (
	userRepo   = newMemoryUserRepository()
	userTokens = auth.NewJWT("handler-test-secret", time.Hour)
	userRouter = func() *mux.Router {
		h := userhttp.NewUserHandler(
			command.NewRegisterUserHandler(userRepo, nil),
			command.NewLoginUserHandler(userRepo, userTokens),
			command.NewUpdateProfileHandler(userRepo),
			query.NewGetUserHandler(userRepo),
			userTokens,
		)
		router := mux.NewRouter()
		h.RegisterRoutes(router, nil)
		return router
	}()
)

func do(method, path, authz string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	userRouter.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, rec.Body.String())
	}
	return resp.Error.Code
}

func TestAuthAndProfileFlow(t *testing.T) {
	rec := do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "carol",
		"email":    "carol@example.com",
		"password": "secret1",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var registered domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &registered); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("secret1")) {
		t.Fatal("register response leaks the password")
	}

	rec = do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "carol@example.com",
		"password": "secret1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &login); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if login.Token == "" {
		t.Fatal("login returned no token")
	}
	authz := "Bearer " + login.Token

	rec = do(http.MethodGet, "/api/user/1", authz, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get profile: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = do(http.MethodPut, "/api/user/1", authz, map[string]string{
		"username": "carol-renamed",
		"email":    "carol@example.com",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var updated domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode update: %v", err)
	}
	if updated.Username != "carol-renamed" {
		t.Fatalf("update did not apply: %+v", updated)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	rec := do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "NOT_AUTHORIZED" {
		t.Fatalf("expected NOT_AUTHORIZED, got %q", code)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	payload := map[string]string{
		"username": "dave",
		"email":    "dave@example.com",
		"password": "secret1",
	}
	if rec := do(http.MethodPost, "/api/auth/register", "", payload); rec.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", rec.Code)
	}

	payload["username"] = "dave2"
	rec := do(http.MethodPost, "/api/auth/register", "", payload)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d (%s)", rec.Code, rec.Body.String())
	}
	if code := errorCode(t, rec); code != "CONFLICT" {
		t.Fatalf("expected CONFLICT, got %q", code)
	}
}

func TestProfileRoutes_RequireToken(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPut} {
		rec := do(method, "/api/user/1", "", map[string]string{"username": "x", "email": "x@example.com"})
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s without token: expected 401, got %d", method, rec.Code)
		}
		if code := errorCode(t, rec); code != "NOT_AUTHORIZED" {
			t.Fatalf("expected NOT_AUTHORIZED, got %q", code)
		}
	}
}
