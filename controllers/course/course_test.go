package courseController_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseRoutes "lms/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const trialSyllabus = `[
	{
		"id": "c1",
		"title": "Chapter One",
		"units": [
			{"id": "c1-u1", "title": "Unit 1 (Trial)", "videoId": "v101", "exp": 100},
			{"id": "c1-u2", "title": "Unit 2", "videoId": "v102", "exp": 150}
		]
	},
	{
		"id": "c2",
		"title": "Chapter Two",
		"units": [
			{"id": "c2-u1", "title": "Unit 3", "videoId": "v201"}
		]
	}
]`

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB) (models.User, string) {
	t.Helper()

	user := models.User{Name: "Student", Email: fmt.Sprintf("%s@example.com", t.Name()), Password: "hashed"}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

type syllabusView []struct {
	ID    string `json:"id"`
	Units []struct {
		ID      string `json:"id"`
		VideoID string `json:"videoId"`
		Exp     int    `json:"exp"`
		Locked  bool   `json:"locked"`
	} `json:"units"`
}

func getSyllabus(t *testing.T, app *fiber.App, token string, courseID uint) syllabusView {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/courses/%d/syllabus", courseID), nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env struct {
		Data syllabusView `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env.Data
}

func TestSyllabusTrialGating(t *testing.T) {
	app, db := setupTestApp(t)
	_, token := createUser(t, db)

	course := models.Course{
		Title:        "Trial Course",
		HasTrial:     true,
		SyllabusJSON: datatypes.JSON([]byte(trialSyllabus)),
	}
	require.NoError(t, db.Create(&course).Error)

	view := getSyllabus(t, app, token, course.ID)
	require.Len(t, view, 2)

	// Only the first unit of the first chapter is open on trial
	assert.False(t, view[0].Units[0].Locked)
	assert.Equal(t, "v101", view[0].Units[0].VideoID)
	assert.True(t, view[0].Units[1].Locked)
	assert.Empty(t, view[0].Units[1].VideoID)
	assert.True(t, view[1].Units[0].Locked)

	// Units without a declared exp fall back to the default
	assert.Equal(t, 100, view[1].Units[0].Exp)
}

func TestSyllabusUnlocksAfterPurchase(t *testing.T) {
	app, db := setupTestApp(t)
	user, token := createUser(t, db)

	course := models.Course{
		Title:        "Paid Course",
		HasTrial:     false,
		SyllabusJSON: datatypes.JSON([]byte(trialSyllabus)),
	}
	require.NoError(t, db.Create(&course).Error)

	view := getSyllabus(t, app, token, course.ID)
	assert.True(t, view[0].Units[0].Locked, "no trial means everything is locked before purchase")

	order := models.Order{OrderNo: "o-1", UserID: user.ID, CourseID: course.ID, Status: models.OrderStatusPaid}
	require.NoError(t, db.Create(&order).Error)

	view = getSyllabus(t, app, token, course.ID)
	for _, chapter := range view {
		for _, unit := range chapter.Units {
			assert.False(t, unit.Locked)
		}
	}
}

func TestGetAllCoursesRecommendedFilter(t *testing.T) {
	app, db := setupTestApp(t)

	require.NoError(t, db.Create(&models.Course{Title: "A", Recommended: true}).Error)
	require.NoError(t, db.Create(&models.Course{Title: "B", Recommended: false}).Error)

	req := httptest.NewRequest(http.MethodGet, "/courses/?recommended=true", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env struct {
		Data []models.Course `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.Len(t, env.Data, 1)
	assert.Equal(t, "A", env.Data[0].Title)
}
