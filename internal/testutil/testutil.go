package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/laujialiang0101/aicha-app/internal/ops/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const TestSchema = "test_ops"

// TestEnv holds test environment resources
type TestEnv struct {
	DB     *gorm.DB
	Router *gin.Engine
	T      *testing.T
}

// projectRoot returns the project root directory by looking for go.mod
func projectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// loadEnv loads .env from the project root
func loadEnv() {
	root := projectRoot()
	if root != "" {
		godotenv.Load(filepath.Join(root, ".env"))
	}
}

// SetupTestDB creates a test database connection using a dedicated test schema.
// Each test gets an isolated schema that is cleaned up after the test.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	loadEnv()

	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "aicha")
	password := getEnv("DB_PASSWORD", "aicha123")
	dbname := getEnv("DB_NAME", "aicha_ops")

	baseDSN := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	// Create a unique test schema for isolation
	schemaName := fmt.Sprintf("%s_%d", TestSchema, time.Now().UnixNano()%1000000)

	// First: create schema using a temporary connection
	setupDB, err := gorm.Open(postgres.Open(baseDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to database for schema setup: %v", err)
	}
	setupDB.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schemaName))
	sqlSetup, _ := setupDB.DB()
	sqlSetup.Close()

	// Second: open connection with search_path in DSN so ALL pooled connections use test schema
	testDSN := fmt.Sprintf("%s search_path=%s", baseDSN, schemaName)
	db, err := gorm.Open(postgres.Open(testDSN), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := entity.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test tables: %v", err)
	}

	// Cleanup on test completion
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		// Reconnect to drop the schema
		cleanDB, cleanErr := gorm.Open(postgres.Open(baseDSN), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if cleanErr == nil {
			cleanDB.Exec(fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schemaName))
			sqlClean, _ := cleanDB.DB()
			if sqlClean != nil {
				sqlClean.Close()
			}
		}
	})

	return db
}

// SetupRouter creates a gin test router
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	return r
}

// DoRequest executes an HTTP request against the test router
func DoRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ParseResponse parses the JSON response body into a map
func ParseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

// ParseListResponse parses a JSON array response body
func ParseListResponse(w *httptest.ResponseRecorder) []interface{} {
	var result []interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

// SeedLocation creates a location in the test database
func SeedLocation(t *testing.T, db *gorm.DB, name, locType string) *entity.Location {
	t.Helper()
	loc := &entity.Location{
		Name:     name,
		Type:     locType,
		Region:   "Klang Valley",
		IsActive: true,
	}
	if err := db.Create(loc).Error; err != nil {
		t.Fatalf("Failed to seed location: %v", err)
	}
	return loc
}

// SeedMaterial creates a raw material with optional unit conversion factors
func SeedMaterial(t *testing.T, db *gorm.DB, name, category string, unitsPerPack, packsPerCarton int) *entity.RawMaterial {
	t.Helper()
	cost := 12.50
	material := &entity.RawMaterial{
		Name:     name,
		Category: category,
		Unit:     "pcs",
		CostMYR:  &cost,
		IsActive: true,
	}
	if err := db.Create(material).Error; err != nil {
		t.Fatalf("Failed to seed material: %v", err)
	}
	if unitsPerPack > 0 || packsPerCarton > 0 {
		conv := &entity.UnitConversion{
			RawMaterialID:  material.ID,
			CartonName:     "ctn",
			PackName:       "pack",
			UnitsPerPack:   unitsPerPack,
			PacksPerCarton: packsPerCarton,
			UnitsPerCarton: unitsPerPack * packsPerCarton,
		}
		if err := db.Create(conv).Error; err != nil {
			t.Fatalf("Failed to seed unit conversion: %v", err)
		}
		material.Conversion = conv
	}
	return material
}

// SeedChecklist creates a checklist with items
func SeedChecklist(t *testing.T, db *gorm.DB, name, checklistType string, itemTexts []string) *entity.Checklist {
	t.Helper()
	cl := &entity.Checklist{
		Name:          name,
		ChecklistType: checklistType,
		LocationType:  "outlet",
		IsActive:      true,
	}
	if err := db.Create(cl).Error; err != nil {
		t.Fatalf("Failed to seed checklist: %v", err)
	}
	for i, text := range itemTexts {
		item := &entity.ChecklistItem{
			ChecklistID: cl.ID,
			ItemText:    text,
			IsRequired:  true,
			SortOrder:   i + 1,
		}
		if err := db.Create(item).Error; err != nil {
			t.Fatalf("Failed to seed checklist item: %v", err)
		}
		cl.Items = append(cl.Items, *item)
	}
	return cl
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
