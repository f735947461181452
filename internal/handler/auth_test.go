package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/handler"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/middleware"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/model"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/router"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/service"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Milestone{},
		&model.Module{},
		&model.Task{},
		&model.Product{},
		&model.Testimonial{},
	))

	authService := service.NewAuthService(db, testSecret, 168)
	userService := service.NewUserService(db)
	log := zap.NewNop()

	r := gin.New()
	router.Setup(r, router.Deps{
		DB:                 db,
		JWTSecret:          testSecret,
		CORSOrigin:         "http://localhost:5173",
		AuthHandler:        handler.NewAuthHandler(authService, false),
		UserHandler:        handler.NewUserHandler(userService),
		ProjectHandler:     handler.NewProjectHandler(service.NewProjectService(db, log), userService),
		MilestoneHandler:   handler.NewMilestoneHandler(service.NewMilestoneService(db, log)),
		ModuleHandler:      handler.NewModuleHandler(service.NewModuleService(db)),
		TaskHandler:        handler.NewTaskHandler(service.NewTaskService(db)),
		ProductHandler:     handler.NewProductHandler(service.NewProductService(db), userService),
		TestimonialHandler: handler.NewTestimonialHandler(service.NewTestimonialService(db)),
	})
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, decorate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if decorate != nil {
		decorate(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// register creates an account through the API and returns its token.
func register(t *testing.T, r *gin.Engine, name string, role model.Role) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"name":     name,
		"email":    fmt.Sprintf("%s@example.com", uuid.NewString()),
		"password": "secret123",
		"role":     string(role),
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := envelope(t, w)["data"].(map[string]interface{})
	return data["token"].(string)
}

func withBearer(token string) func(*http.Request) {
	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func TestRegisterSetsSessionCookie(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret123",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := envelope(t, w)
	assert.Equal(t, "success", body["status"])
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Equal(t, "user", user["role"])
	assert.NotContains(t, user, "passwordHash", "hash never leaves the server")

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, session.SameSite)
	assert.Greater(t, session.MaxAge, 0)
}

func TestRegisterValidation(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{"name": "NoEmail"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", envelope(t, w)["status"])
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	r, _ := newTestServer(t)

	payload := gin.H{"name": "A", "email": "dup@example.com", "password": "x1234567"}
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/register", payload, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Email already exists", envelope(t, w)["message"])
}

func TestLoginAndMe(t *testing.T) {
	r, _ := newTestServer(t)
	register(t, r, "Alice", model.RoleManager)

	// Hit login with the registered email; register uses a random address, so
	// create a second account with a fixed one.
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"name": "Bob", "email": "bob@example.com", "password": "secret123",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email": "BOB@example.com", "password": "secret123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token := envelope(t, w)["data"].(map[string]interface{})["token"].(string)

	// Token via Authorization header.
	w = doJSON(t, r, http.MethodGet, "/api/auth/me", nil, withBearer(token))
	require.Equal(t, http.StatusOK, w.Code)
	me := envelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "bob@example.com", me["email"])

	// Same token via the session cookie.
	w = doJSON(t, r, http.MethodGet, "/api/auth/me", nil, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginBadPassword(t *testing.T) {
	r, _ := newTestServer(t)
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"name": "A", "email": "a@example.com", "password": "right123",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email": "a@example.com", "password": "wrong123",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", envelope(t, w)["message"])
}

func TestMeRequiresAuth(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authorized. Please log in.", envelope(t, w)["message"])

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", nil, withBearer("garbage"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token. Please log in again.", envelope(t, w)["message"])
}

func TestLogoutClearsCookie(t *testing.T) {
	r, _ := newTestServer(t)
	token := register(t, r, "Alice", model.RoleUser)

	w := doJSON(t, r, http.MethodPost, "/api/auth/logout", nil, withBearer(token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Logged out successfully", envelope(t, w)["message"])

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.Equal(t, "loggedout", session.Value)
	assert.LessOrEqual(t, session.MaxAge, 10)
}

func TestRoleChangeIsAdminOnly(t *testing.T) {
	r, db := newTestServer(t)
	userToken := register(t, r, "Plain", model.RoleUser)
	adminToken := register(t, r, "Admin", model.RoleAdmin)

	var target model.User
	require.NoError(t, db.Where("name = ?", "Plain").First(&target).Error)
	path := fmt.Sprintf("/api/users/%d/role", target.ID)

	w := doJSON(t, r, http.MethodPatch, path, gin.H{"role": "manager"}, withBearer(userToken))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPatch, path, gin.H{"role": "manager"}, withBearer(adminToken))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.NoError(t, db.First(&target, target.ID).Error)
	assert.Equal(t, model.RoleManager, target.Role)
}
