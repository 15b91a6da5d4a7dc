package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lms/config"
	"lms/database"
	"lms/models"
	authRoutes "lms/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, target string, body interface{}) (int, json.RawMessage) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env struct {
		Status bool            `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env.Data
}

func TestSignupIssuesTokenAndStoresHashedPassword(t *testing.T) {
	app, db := setupTestApp(t)

	code, data := postJSON(t, app, "/auth/register", map[string]string{
		"name":     "New Student",
		"email":    "new@example.com",
		"password": "secret-password",
	})
	require.Equal(t, http.StatusCreated, code)

	var payload struct {
		Token  string `json:"token"`
		Name   string `json:"name"`
		Role   string `json:"role"`
		Avatar string `json:"avatar"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.NotEmpty(t, payload.Token)
	assert.Equal(t, "New Student", payload.Name)
	assert.Equal(t, "/images/default-avatar.png", payload.Avatar)

	var user models.User
	require.NoError(t, db.Where("email = ?", "new@example.com").First(&user).Error)
	assert.NotEqual(t, "secret-password", user.Password)
}

func TestSignupDuplicateEmail(t *testing.T) {
	app, _ := setupTestApp(t)

	body := map[string]string{
		"name":     "Student",
		"email":    "dup@example.com",
		"password": "secret-password",
	}

	code, _ := postJSON(t, app, "/auth/register", body)
	require.Equal(t, http.StatusCreated, code)

	code, _ = postJSON(t, app, "/auth/register", body)
	assert.Equal(t, http.StatusConflict, code)
}

func TestSignupValidation(t *testing.T) {
	app, _ := setupTestApp(t)

	code, _ := postJSON(t, app, "/auth/register", map[string]string{
		"name":     "Student",
		"email":    "not-an-email",
		"password": "short",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestLogin(t *testing.T) {
	app, _ := setupTestApp(t)

	postJSON(t, app, "/auth/register", map[string]string{
		"name":     "Student",
		"email":    "login@example.com",
		"password": "secret-password",
	})

	code, data := postJSON(t, app, "/auth/login", map[string]string{
		"email":    "login@example.com",
		"password": "secret-password",
	})
	require.Equal(t, http.StatusOK, code)

	var payload struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.NotEmpty(t, payload.Token)

	code, _ = postJSON(t, app, "/auth/login", map[string]string{
		"email":    "login@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
}
