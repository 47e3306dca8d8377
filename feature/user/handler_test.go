package user_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"auction-manager/core/reconcile"
	"auction-manager/feature/user"
	"auction-manager/feature/user/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T, dbName string) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", dbName)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.CompanyMembership{}))

	app := fiber.New()
	require.NoError(t, user.NewFeature(db, zap.NewNop()).Load(app))
	return app, db
}

func TestHandleCreateAndGet(t *testing.T) {
	app, _ := setupApp(t, "user_handler_create")

	payload, _ := json.Marshal(map[string]any{
		"username": "ada",
		"email":    "ada@example.com",
		"companies": []map[string]any{
			{"company_id": 1, "role": "admin", "is_primary": true},
		},
	})
	req := httptest.NewRequest("POST", "/users/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result reconcile.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Success)
	id := int(result.Data.(map[string]any)["id"].(float64))

	resp, err = app.Test(httptest.NewRequest("GET", fmt.Sprintf("/users/%d", id), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var detail user.Detail
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&detail))
	assert.Equal(t, "ada", detail.User.Username)
	require.Len(t, detail.Companies, 1)
	assert.True(t, detail.Companies[0].IsPrimary)
}

func TestHandleUpdatePrimarySwap(t *testing.T) {
	app, db := setupApp(t, "user_handler_swap")
	require.NoError(t, db.Create(&models.User{ID: 1, Username: "ada"}).Error)
	require.NoError(t, db.Create(&models.CompanyMembership{ID: 1, UserID: 1, CompanyID: 10, IsPrimary: true}).Error)
	require.NoError(t, db.Create(&models.CompanyMembership{ID: 2, UserID: 1, CompanyID: 20}).Error)

	payload, _ := json.Marshal(map[string]any{
		"username": "ada",
		"companies": []map[string]any{
			{"id": 1, "company_id": 10, "is_primary": false},
			{"id": 2, "company_id": 20, "is_primary": true},
		},
	})
	req := httptest.NewRequest("PUT", "/users/1", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.CompanyMembership{}).
		Where("user_id = 1 AND is_primary = ?", true).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestHandleGetNotFound(t *testing.T) {
	app, _ := setupApp(t, "user_handler_404")
	resp, err := app.Test(httptest.NewRequest("GET", "/users/99", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
