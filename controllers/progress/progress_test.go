package progressController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"architect/config"
	"architect/database"
	"architect/middleware"
	"architect/models"
	curriculumModels "architect/models/curriculum"
	progressRoutes "architect/routers/progressRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: 4,
		TokenTTL:  30,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	database.Migrate(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	progressRoutes.SetupProgressRoutes(app)
	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, email string) (models.User, string) {
	t.Helper()

	user := models.User{Email: email, PasswordHash: "irrelevant"}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Email)
	require.NoError(t, err)

	return user, token
}

// seedResources creates one curriculum with a single module holding the
// given number of resources, the first `completed` of them marked done
func seedResources(t *testing.T, db *gorm.DB, userID uint, total, completed int) []curriculumModels.Resource {
	t.Helper()

	cur := curriculumModels.Curriculum{UserID: userID, Title: "Plan"}
	require.NoError(t, db.Create(&cur).Error)

	module := curriculumModels.Module{CurriculumID: cur.ID, Title: "Module"}
	require.NoError(t, db.Create(&module).Error)

	resources := make([]curriculumModels.Resource, total)
	for i := 0; i < total; i++ {
		status := curriculumModels.StatusPending
		if i < completed {
			status = curriculumModels.StatusCompleted
		}
		resources[i] = curriculumModels.Resource{
			ModuleID:     module.ID,
			Title:        fmt.Sprintf("Resource %d", i),
			URL:          fmt.Sprintf("https://example.com/%d", i),
			ResourceType: curriculumModels.TypeArticle,
			Status:       status,
			OrderIndex:   i,
		}
		require.NoError(t, db.Create(&resources[i]).Error)
	}

	return resources
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))

	return resp.StatusCode, parsed
}

func TestSummaryEmptyUser(t *testing.T) {
	app, db := setupApp(t)
	_, token := seedUser(t, db, "new@example.com")

	status, body := doRequest(t, app, "GET", "/api/v1/progress/summary", token, nil)
	require.Equal(t, fiber.StatusOK, status)

	data := body["data"].(map[string]interface{})
	assert.EqualValues(t, 0, data["total_resources"])
	assert.EqualValues(t, 0, data["completion_percentage"])
}

func TestSummaryPercentageRounding(t *testing.T) {
	app, db := setupApp(t)
	user, token := seedUser(t, db, "learner@example.com")
	seedResources(t, db, user.ID, 8, 3)

	status, body := doRequest(t, app, "GET", "/api/v1/progress/summary", token, nil)
	require.Equal(t, fiber.StatusOK, status)

	data := body["data"].(map[string]interface{})
	assert.EqualValues(t, 8, data["total_resources"])
	assert.EqualValues(t, 3, data["completed_resources"])
	assert.EqualValues(t, 5, data["pending_resources"])
	assert.InDelta(t, 37.5, data["completion_percentage"].(float64), 0.0001)
}

func TestSummaryIncludesProfile(t *testing.T) {
	app, db := setupApp(t)
	user, token := seedUser(t, db, "learner@example.com")

	profile := models.UserProfile{UserID: user.ID, LearningStyle: "auditory", Pace: "fast"}
	require.NoError(t, db.Create(&profile).Error)

	_, body := doRequest(t, app, "GET", "/api/v1/progress/summary", token, nil)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "auditory", data["learning_style"])
	assert.Equal(t, "fast", data["pace"])
}

func TestUpdateStatusOwnership(t *testing.T) {
	app, db := setupApp(t)
	owner, ownerToken := seedUser(t, db, "owner@example.com")
	_, otherToken := seedUser(t, db, "other@example.com")

	resources := seedResources(t, db, owner.ID, 1, 0)

	// Someone else's resource answers like a missing one
	status, _ := doRequest(t, app, "POST", "/api/v1/progress/update", otherToken, fiber.Map{
		"resource_id": resources[0].ID,
		"status":      curriculumModels.StatusCompleted,
	})
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = doRequest(t, app, "POST", "/api/v1/progress/update", ownerToken, fiber.Map{
		"resource_id": resources[0].ID,
		"status":      curriculumModels.StatusCompleted,
	})
	assert.Equal(t, fiber.StatusOK, status)

	var updated curriculumModels.Resource
	require.NoError(t, db.First(&updated, resources[0].ID).Error)
	assert.Equal(t, curriculumModels.StatusCompleted, updated.Status)
}

func TestUpdateStatusBackwardsTransitionAllowed(t *testing.T) {
	app, db := setupApp(t)
	owner, token := seedUser(t, db, "owner@example.com")
	resources := seedResources(t, db, owner.ID, 1, 1)

	status, _ := doRequest(t, app, "POST", "/api/v1/progress/update", token, fiber.Map{
		"resource_id": resources[0].ID,
		"status":      curriculumModels.StatusPending,
	})
	assert.Equal(t, fiber.StatusOK, status)

	var updated curriculumModels.Resource
	require.NoError(t, db.First(&updated, resources[0].ID).Error)
	assert.Equal(t, curriculumModels.StatusPending, updated.Status)
}

func TestUpdateStatusRejectsUnknownEnum(t *testing.T) {
	app, db := setupApp(t)
	owner, token := seedUser(t, db, "owner@example.com")
	resources := seedResources(t, db, owner.ID, 1, 0)

	status, _ := doRequest(t, app, "POST", "/api/v1/progress/update", token, fiber.Map{
		"resource_id": resources[0].ID,
		"status":      "done",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	// The row never changed
	var unchanged curriculumModels.Resource
	require.NoError(t, db.First(&unchanged, resources[0].ID).Error)
	assert.Equal(t, curriculumModels.StatusPending, unchanged.Status)
}

func TestRecentProgress(t *testing.T) {
	app, db := setupApp(t)
	owner, token := seedUser(t, db, "owner@example.com")
	resources := seedResources(t, db, owner.ID, 4, 0)

	require.NoError(t, db.Model(&resources[1]).Update("status", curriculumModels.StatusInProgress).Error)
	require.NoError(t, db.Model(&resources[2]).Update("status", curriculumModels.StatusCompleted).Error)

	status, body := doRequest(t, app, "GET", "/api/v1/progress/recent?limit=5", token, nil)
	require.Equal(t, fiber.StatusOK, status)

	items := body["data"].([]interface{})
	require.Len(t, items, 2)
	for _, raw := range items {
		item := raw.(map[string]interface{})
		assert.Contains(t, []string{curriculumModels.StatusCompleted, curriculumModels.StatusInProgress}, item["status"])
		assert.Equal(t, "Module", item["module_title"])
	}
}
