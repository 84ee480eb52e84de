package handler

import (
	"fmt"
	"net/http"
	"regexp"
	"testing"

	"github.com/laujialiang0101/aicha-app/internal/ops/entity"
	"github.com/laujialiang0101/aicha-app/internal/ops/repository"
	"github.com/laujialiang0101/aicha-app/internal/ops/service"
	"github.com/laujialiang0101/aicha-app/internal/testutil"
	"go.uber.org/zap"
)

func setupProcurementTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	svc := service.NewProcurementService(repos.Purchase, repos.Ref, db)
	h := NewProcurementHandler(svc, zap.NewNop())

	router := testutil.SetupRouter()
	router.POST("/api/v1/po", h.Create)
	router.GET("/api/v1/po", h.List)
	router.GET("/api/v1/po/:id", h.Get)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

// TestPOCreate tests creating a purchase order with snapshot totals
func TestPOCreate(t *testing.T) {
	env := setupProcurementTest(t)

	m := testutil.SeedMaterial(t, env.DB, "纸杯", "packaging", 50, 20)

	body := map[string]interface{}{
		"createdBy": "Manager Tan",
		"notes":     "monthly restock",
		"items": []map[string]interface{}{
			{"materialId": m.ID, "quantity": 5, "unitPrice": 12.50},
		},
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/po", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["success"] != true {
		t.Fatalf("expected success, got %v", resp)
	}
	poNumber, _ := resp["poNumber"].(string)
	if !regexp.MustCompile(`^PO-\d{8}$`).MatchString(poNumber) {
		t.Fatalf("expected PO-\\d{8} number, got %q", poNumber)
	}

	var po entity.PurchaseOrder
	if err := env.DB.Preload("Items").Where("po_number = ?", poNumber).First(&po).Error; err != nil {
		t.Fatalf("expected PO row: %v", err)
	}
	if po.Status != entity.POStatusDraft {
		t.Fatalf("expected draft status, got %s", po.Status)
	}
	// 5 × 12.50 = 62.50
	if po.TotalAmount != 62.50 {
		t.Fatalf("expected total_amount 62.50, got %v", po.TotalAmount)
	}
	if len(po.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(po.Items))
	}
	if po.Items[0].TotalPrice != 62.50 {
		t.Fatalf("expected line total 62.50, got %v", po.Items[0].TotalPrice)
	}
}

// TestPONumbersUnique tests that back-to-back orders get distinct numbers
func TestPONumbersUnique(t *testing.T) {
	env := setupProcurementTest(t)

	m := testutil.SeedMaterial(t, env.DB, "果糖", "syrup", 6, 4)

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		body := map[string]interface{}{
			"createdBy": "Manager Tan",
			"items": []map[string]interface{}{
				{"materialId": m.ID, "quantity": 1, "unitPrice": 1.0},
			},
		}
		w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/po", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		number := testutil.ParseResponse(w)["poNumber"].(string)
		if seen[number] {
			t.Fatalf("duplicate PO number %s", number)
		}
		seen[number] = true
	}
}

// TestPOGetAndList tests fetching a single order and the recent list
func TestPOGetAndList(t *testing.T) {
	env := setupProcurementTest(t)

	m := testutil.SeedMaterial(t, env.DB, "奶精", "dairy", 12, 2)

	body := map[string]interface{}{
		"createdBy": "Manager Tan",
		"items": []map[string]interface{}{
			{"materialId": m.ID, "quantity": 3, "unitPrice": 8.0},
		},
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/po", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var po entity.PurchaseOrder
	if err := env.DB.First(&po).Error; err != nil {
		t.Fatalf("expected PO row: %v", err)
	}

	w = testutil.DoRequest(env.Router, http.MethodGet, fmt.Sprintf("/api/v1/po/%d", po.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	detail := testutil.ParseResponse(w)
	if detail["po_number"] != po.PONumber {
		t.Fatalf("expected po_number %s, got %v", po.PONumber, detail["po_number"])
	}

	w = testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/po/99999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown PO, got %d", w.Code)
	}

	w = testutil.DoRequest(env.Router, http.MethodGet, "/api/v1/po", nil)
	rows := testutil.ParseListResponse(w)
	if len(rows) != 1 {
		t.Fatalf("expected 1 PO in list, got %d", len(rows))
	}
	row := rows[0].(map[string]interface{})
	if row["item_count"].(float64) != 1 {
		t.Fatalf("expected item_count 1, got %v", row["item_count"])
	}
}

// TestPOMissingItems tests validation of an empty item list
func TestPOMissingItems(t *testing.T) {
	env := setupProcurementTest(t)

	body := map[string]interface{}{
		"createdBy": "Manager Tan",
		"items":     []map[string]interface{}{},
	}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/v1/po", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	env.DB.Model(&entity.PurchaseOrder{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no PO rows, got %d", count)
	}
}
