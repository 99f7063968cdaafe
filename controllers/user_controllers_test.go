package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rentster/rentster-app/router"
	"github.com/rentster/rentster-app/store"
	"github.com/rentster/rentster-app/utils"
)

// setupTestApp opens an in-memory database, initializes the store and
// returns the full router.
func setupTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:ctrl_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := store.New(db).Initialize(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}

	return router.SetupRouter(db)
}

func doJSON(t *testing.T, r *gin.Engine, method, url, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeInto(w *httptest.ResponseRecorder, dest interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), dest)
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, _ := resp["data"].(map[string]interface{})
	return data
}

func registerAndLogin(t *testing.T, r *gin.Engine, username, email, role string, companyID *uint) string {
	t.Helper()

	register := map[string]interface{}{
		"username": username,
		"email":    email,
		"password": "password123",
		"role":     role,
	}
	if companyID != nil {
		register["company_id"] = *companyID
	}
	w := doJSON(t, r, "POST", "/register", "", register)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/login", "", map[string]string{
		"email":    email,
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	token, ok := data["token"].(string)
	assert.True(t, ok)
	assert.NotEmpty(t, token)
	return token
}

func TestRegisterAndLogin(t *testing.T) {
	r := setupTestApp(t)

	registerPayload := map[string]interface{}{
		"username": "testuser",
		"email":    "test@example.com",
		"password": "password123",
		"role":     "customer",
	}
	w := doJSON(t, r, "POST", "/register", "", registerPayload)
	assert.Equal(t, http.StatusCreated, w.Code)

	data := decodeData(t, w)
	assert.NotNil(t, data["user_id"])

	// Duplicate email must be rejected as a conflict.
	registerPayload["username"] = "otheruser"
	w = doJSON(t, r, "POST", "/register", "", registerPayload)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, "POST", "/login", "", map[string]string{
		"email":    "test@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	data = decodeData(t, w)
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "customer", data["user_role"])

	// Wrong password.
	w = doJSON(t, r, "POST", "/login", "", map[string]string{
		"email":    "test@example.com",
		"password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileRequiresAuth(t *testing.T) {
	r := setupTestApp(t)

	w := doJSON(t, r, "GET", "/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := registerAndLogin(t, r, "profileuser", "profile@example.com", "customer", nil)
	w = doJSON(t, r, "GET", "/profile", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, "profileuser", data["username"])
	assert.Equal(t, "customer", data["role"])
}

func TestAdminRoutesAreRoleGated(t *testing.T) {
	r := setupTestApp(t)

	customerToken := registerAndLogin(t, r, "cust", "cust@example.com", "customer", nil)
	w := doJSON(t, r, "GET", "/admin/users", customerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken := registerAndLogin(t, r, "boss", "boss@example.com", "admin", nil)
	w = doJSON(t, r, "GET", "/admin/users", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
