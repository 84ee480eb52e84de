package handler

import (
	"net/http"
	"regexp"
	"testing"

	"github.com/laujialiang0101/aicha-app/internal/ops/entity"
	"github.com/laujialiang0101/aicha-app/internal/ops/repository"
	"github.com/laujialiang0101/aicha-app/internal/ops/service"
	"github.com/laujialiang0101/aicha-app/internal/testutil"
	"go.uber.org/zap"
)

func setupTransferTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	svc := service.NewTransferService(repos.Request, repos.Catalog, repos.Ref, db)
	h := NewTransferHandler(svc, zap.NewNop())

	router := testutil.SetupRouter()
	router.POST("/api/v1/transfer", h.Create)
	router.GET("/api/v1/transfer", h.List)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

// TestTransferCreate tests creating a transfer request between two locations
func TestTransferCreate(t *testing.T) {
	env := setupTransferTest(t)

	wh := testutil.SeedLocation(t, env.DB, "Subang仓库", entity.LocationTypeWarehouse)
	outlet := testutil.SeedLocation(t, env.DB, "SS15门店", entity.LocationTypeOutlet)
	m := testutil.SeedMaterial(t, env.DB, "珍珠", "topping", 12, 2)

	body := map[string]interface{}{
		"fromLocationId": wh.ID,
		"toLocationId":   outlet.ID,
		"requestedBy":    "Ali",
		"items": []map[string]interface{}{
			{"materialId": m.ID, "qty": 24},
		},
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/transfer", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	number, _ := resp["requestNumber"].(string)
	if !regexp.MustCompile(`^TR-\d{8}$`).MatchString(number) {
		t.Fatalf("expected TR-\\d{8} number, got %q", number)
	}

	var req entity.StockRequest
	if err := env.DB.Preload("Items").Where("request_number = ?", number).First(&req).Error; err != nil {
		t.Fatalf("expected transfer row: %v", err)
	}
	if req.Status != entity.RequestStatusPending {
		t.Fatalf("expected pending status, got %s", req.Status)
	}
	if len(req.Items) != 1 || req.Items[0].QuantityRequested != 24 {
		t.Fatalf("unexpected items: %+v", req.Items)
	}
}

// TestTransferSameLocation tests rejection when both ends are the same location
func TestTransferSameLocation(t *testing.T) {
	env := setupTransferTest(t)

	wh := testutil.SeedLocation(t, env.DB, "Subang仓库", entity.LocationTypeWarehouse)
	m := testutil.SeedMaterial(t, env.DB, "茶叶", "tea", 10, 4)

	body := map[string]interface{}{
		"fromLocationId": wh.ID,
		"toLocationId":   wh.ID,
		"requestedBy":    "Ali",
		"items": []map[string]interface{}{
			{"materialId": m.ID, "qty": 5},
		},
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/transfer", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	env.DB.Model(&entity.StockRequest{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no transfer rows, got %d", count)
	}
}

// TestTransferUnknownLocation tests rejection of a nonexistent destination
func TestTransferUnknownLocation(t *testing.T) {
	env := setupTransferTest(t)

	wh := testutil.SeedLocation(t, env.DB, "Subang仓库", entity.LocationTypeWarehouse)
	m := testutil.SeedMaterial(t, env.DB, "糖浆", "syrup", 6, 4)

	body := map[string]interface{}{
		"fromLocationId": wh.ID,
		"toLocationId":   99999,
		"requestedBy":    "Ali",
		"items": []map[string]interface{}{
			{"materialId": m.ID, "qty": 5},
		},
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/transfer", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	env.DB.Model(&entity.StockRequest{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no transfer rows, got %d", count)
	}
}

// TestTransferMissingDestination tests binding failure writes nothing
func TestTransferMissingDestination(t *testing.T) {
	env := setupTransferTest(t)

	wh := testutil.SeedLocation(t, env.DB, "Subang仓库", entity.LocationTypeWarehouse)
	m := testutil.SeedMaterial(t, env.DB, "椰果", "topping", 8, 3)

	body := map[string]interface{}{
		"fromLocationId": wh.ID,
		"requestedBy":    "Ali",
		"items": []map[string]interface{}{
			{"materialId": m.ID, "qty": 5},
		},
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/transfer", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["message"] != "Missing required fields" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}

	var count int64
	env.DB.Model(&entity.StockRequest{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no transfer rows, got %d", count)
	}
}

// TestTransferList tests the list view includes location names and item counts
func TestTransferList(t *testing.T) {
	env := setupTransferTest(t)

	wh := testutil.SeedLocation(t, env.DB, "Subang仓库", entity.LocationTypeWarehouse)
	outlet := testutil.SeedLocation(t, env.DB, "USJ门店", entity.LocationTypeOutlet)
	m1 := testutil.SeedMaterial(t, env.DB, "珍珠", "topping", 12, 2)
	m2 := testutil.SeedMaterial(t, env.DB, "奶精", "dairy", 12, 2)

	body := map[string]interface{}{
		"fromLocationId": wh.ID,
		"toLocationId":   outlet.ID,
		"requestedBy":    "Mei",
		"items": []map[string]interface{}{
			{"materialId": m1.ID, "qty": 10},
			{"materialId": m2.ID, "qty": 4},
		},
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/transfer", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/transfer", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	rows := testutil.ParseListResponse(w)
	if len(rows) != 1 {
		t.Fatalf("expected 1 transfer, got %d", len(rows))
	}
	row := rows[0].(map[string]interface{})
	if row["from_location"] != "Subang仓库" || row["to_location"] != "USJ门店" {
		t.Fatalf("unexpected locations: %v -> %v", row["from_location"], row["to_location"])
	}
	if row["item_count"].(float64) != 2 {
		t.Fatalf("expected item_count 2, got %v", row["item_count"])
	}
	if row["status"] != entity.RequestStatusPending {
		t.Fatalf("expected pending status, got %v", row["status"])
	}
}
