package auction_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"auction-manager/core/reconcile"
	"auction-manager/feature/auction"
	"auction-manager/feature/auction/models"

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
	require.NoError(t, db.AutoMigrate(&models.Auction{}, &models.Participant{}, &models.Item{}))

	app := fiber.New()
	feat := auction.NewFeature(db, zap.NewNop(), nil)
	require.NoError(t, feat.Load(app))
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, method, url string, body any) (*fiber.App, []byte, int) {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, url, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return app, out, resp.StatusCode
}

func TestHandleCreateAndGet(t *testing.T) {
	app, _ := setupApp(t, "handler_create")

	_, body, status := postJSON(t, app, "POST", "/auctions/", map[string]any{
		"name":        "Estate sale",
		"start_price": 100,
		"participants": []map[string]any{
			{"user_id": 1, "status": 1},
		},
		"items": []map[string]any{
			{"name": "Clock", "start_price": 40},
		},
	})
	assert.Equal(t, fiber.StatusOK, status)

	var result reconcile.Result
	require.NoError(t, json.Unmarshal(body, &result))
	assert.True(t, result.Success)
	id := result.Data.(map[string]any)["id"].(float64)
	assert.Positive(t, id)

	req := httptest.NewRequest("GET", fmt.Sprintf("/auctions/%d", int(id)), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var detail auction.Detail
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&detail))
	assert.Equal(t, "Estate sale", detail.Auction.Name)
	assert.Len(t, detail.Participants, 1)
	assert.Len(t, detail.Items, 1)
}

func TestHandleUpdateReconciles(t *testing.T) {
	app, db := setupApp(t, "handler_update")
	require.NoError(t, db.Create(&models.Auction{ID: 1, Name: "Before"}).Error)
	require.NoError(t, db.Create(&models.Participant{ID: 1, AuctionID: 1, UserID: 1}).Error)

	_, body, status := postJSON(t, app, "PUT", "/auctions/1", map[string]any{
		"name": "After",
		"participants": []map[string]any{
			{"id": 1, "user_id": 1, "status": 2},
			{"user_id": 5},
		},
		"items": []map[string]any{},
	})
	assert.Equal(t, fiber.StatusOK, status)

	var result reconcile.Result
	require.NoError(t, json.Unmarshal(body, &result))
	assert.True(t, result.Success)

	var count int64
	require.NoError(t, db.Model(&models.Participant{}).Where("auction_id = 1").Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestHandleGetNotFound(t *testing.T) {
	app, _ := setupApp(t, "handler_404")

	resp, err := app.Test(httptest.NewRequest("GET", "/auctions/999", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleCreateBadPayload(t *testing.T) {
	app, _ := setupApp(t, "handler_badbody")

	req := httptest.NewRequest("POST", "/auctions/", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleDelete(t *testing.T) {
	app, db := setupApp(t, "handler_delete")
	require.NoError(t, db.Create(&models.Auction{ID: 1, Name: "Going"}).Error)
	require.NoError(t, db.Create(&models.Item{AuctionID: 1, Name: "Vase"}).Error)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/auctions/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Auction{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestHandleSoftDelete(t *testing.T) {
	app, db := setupApp(t, "handler_softdelete")
	require.NoError(t, db.Create(&models.Auction{ID: 1, Name: "Hiding"}).Error)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/auctions/1?soft=true", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var a models.Auction
	require.NoError(t, db.First(&a, 1).Error)
	assert.Equal(t, 1, a.Deleted)
}
