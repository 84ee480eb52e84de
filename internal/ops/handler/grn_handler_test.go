package handler

import (
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/laujialiang0101/aicha-app/internal/ops/entity"
	"github.com/laujialiang0101/aicha-app/internal/ops/repository"
	"github.com/laujialiang0101/aicha-app/internal/ops/service"
	"github.com/laujialiang0101/aicha-app/internal/testutil"
	"go.uber.org/zap"
)

func setupGRNTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	svc := service.NewGRNService(repos.Movement, repos.Ref, db)
	h := NewGRNHandler(svc, zap.NewNop())

	router := testutil.SetupRouter()
	router.POST("/api/v1/grn", h.Receive)
	router.GET("/api/v1/grn", h.Recent)
	router.GET("/api/v1/alerts/expiring", h.Expiring)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

// TestGRNReceive tests receiving goods with and without expiry tracking
func TestGRNReceive(t *testing.T) {
	env := setupGRNTest(t)

	wh := testutil.SeedLocation(t, env.DB, "Subang仓库", entity.LocationTypeWarehouse)
	perishable := testutil.SeedMaterial(t, env.DB, "鲜奶", "dairy", 12, 1)
	dry := testutil.SeedMaterial(t, env.DB, "纸杯", "packaging", 50, 20)

	body := map[string]interface{}{
		"locationId":  wh.ID,
		"referenceNo": "INV-2026-001",
		"createdBy":   "Ali",
		"items": []map[string]interface{}{
			{"materialId": perishable.ID, "qty": 48, "expiryDate": "2026-09-15"},
			{"materialId": dry.ID, "qty": 1000},
		},
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/grn", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["message"] != "2 items received" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}

	// 每行一条流水
	var movements []entity.StockMovement
	if err := env.DB.Find(&movements).Error; err != nil {
		t.Fatalf("failed to read movements: %v", err)
	}
	if len(movements) != 2 {
		t.Fatalf("expected 2 movements, got %d", len(movements))
	}
	for _, mv := range movements {
		if mv.MovementType != entity.MovementTypeGRN {
			t.Fatalf("expected grn movement, got %s", mv.MovementType)
		}
		if mv.ToLocationID == nil || *mv.ToLocationID != wh.ID {
			t.Fatalf("expected to_location %d, got %v", wh.ID, mv.ToLocationID)
		}
		if mv.ReferenceNo == nil || *mv.ReferenceNo != "INV-2026-001" {
			t.Fatalf("expected reference INV-2026-001, got %v", mv.ReferenceNo)
		}
	}

	// 只有带效期的行开批次
	var batches []entity.Batch
	if err := env.DB.Find(&batches).Error; err != nil {
		t.Fatalf("failed to read batches: %v", err)
	}
	if len(batches) != 1 {
		t.Fatalf("expected 1 batch, got %d", len(batches))
	}
	batch := batches[0]
	if batch.RawMaterialID != perishable.ID {
		t.Fatalf("expected batch for perishable material, got %d", batch.RawMaterialID)
	}
	if !regexp.MustCompile(`^B-\d{8}$`).MatchString(batch.BatchNumber) {
		t.Fatalf("expected B-\\d{8} batch number, got %q", batch.BatchNumber)
	}
	if batch.QuantityReceived != 48 || batch.QuantityRemaining != 48 {
		t.Fatalf("expected received=remaining=48, got %v/%v", batch.QuantityReceived, batch.QuantityRemaining)
	}
}

// TestGRNBatchNumbersUnique tests back-to-back receipts get distinct batch numbers
func TestGRNBatchNumbersUnique(t *testing.T) {
	env := setupGRNTest(t)

	wh := testutil.SeedLocation(t, env.DB, "Subang仓库", entity.LocationTypeWarehouse)
	m := testutil.SeedMaterial(t, env.DB, "鲜奶", "dairy", 12, 1)

	for i := 0; i < 2; i++ {
		body := map[string]interface{}{
			"locationId": wh.ID,
			"createdBy":  "Ali",
			"items": []map[string]interface{}{
				{"materialId": m.ID, "qty": 24, "expiryDate": "2026-09-20"},
			},
		}
		w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/grn", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	}

	var batches []entity.Batch
	if err := env.DB.Find(&batches).Error; err != nil {
		t.Fatalf("failed to read batches: %v", err)
	}
	if len(batches) != 2 {
		t.Fatalf("expected 2 batches, got %d", len(batches))
	}
	if batches[0].BatchNumber == batches[1].BatchNumber {
		t.Fatalf("expected distinct batch numbers, both %s", batches[0].BatchNumber)
	}
}

// TestGRNInvalidExpiry tests a bad expiry date rolls back the whole receipt
func TestGRNInvalidExpiry(t *testing.T) {
	env := setupGRNTest(t)

	wh := testutil.SeedLocation(t, env.DB, "Subang仓库", entity.LocationTypeWarehouse)
	m := testutil.SeedMaterial(t, env.DB, "鲜奶", "dairy", 12, 1)

	body := map[string]interface{}{
		"locationId": wh.ID,
		"createdBy":  "Ali",
		"items": []map[string]interface{}{
			{"materialId": m.ID, "qty": 24, "expiryDate": "15/09/2026"},
		},
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/grn", body)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	env.DB.Model(&entity.StockMovement{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected rollback to leave no movements, got %d", count)
	}
}

// TestGRNRecentAndExpiring tests the recent receipts list and expiring alert
func TestGRNRecentAndExpiring(t *testing.T) {
	env := setupGRNTest(t)

	wh := testutil.SeedLocation(t, env.DB, "Subang仓库", entity.LocationTypeWarehouse)
	m := testutil.SeedMaterial(t, env.DB, "鲜奶", "dairy", 12, 1)

	// 效期落在30天告警窗口内
	expiry := time.Now().AddDate(0, 0, 10).Format("2006-01-02")
	body := map[string]interface{}{
		"locationId": wh.ID,
		"createdBy":  "Ali",
		"items": []map[string]interface{}{
			{"materialId": m.ID, "qty": 24, "expiryDate": expiry},
		},
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/grn", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/grn", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(testutil.ParseListResponse(w)) != 1 {
		t.Fatalf("expected 1 recent GRN row")
	}

	w = testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/alerts/expiring", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	rows := testutil.ParseListResponse(w)
	if len(rows) != 1 {
		t.Fatalf("expected 1 expiring batch, got %d", len(rows))
	}
}
