package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kybermartin/python-editor/internal/config"
	"github.com/kybermartin/python-editor/internal/database"
	"github.com/kybermartin/python-editor/internal/models"
	"github.com/kybermartin/python-editor/internal/routes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	// Using URL format to avoid parsing ambiguities
	baseDSN    = "postgres://postgres:@localhost:5432/postgres?sslmode=disable"
	testDBName = "python_editor_test"
)

func setupTestDB(t *testing.T) *gorm.DB {
	config.AppConfig = &config.Config{}

	// 1. Connect to the default 'postgres' database to create the test DB
	db, err := gorm.Open(postgres.Open(baseDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to postgres DB: %v", err)
	}

	// 2. Drop and Create Test DB
	// Terminate existing connections first to ensure DROP works
	db.Exec(fmt.Sprintf("SELECT pg_terminate_backend(pid) FROM pg_stat_activity WHERE datname = '%s'", testDBName))

	if err := db.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", testDBName)).Error; err != nil {
		t.Fatalf("Failed to drop test DB: %v", err)
	}

	if err := db.Exec(fmt.Sprintf("CREATE DATABASE %s", testDBName)).Error; err != nil {
		t.Fatalf("Failed to create test DB: %v", err)
	}

	// 3. Connect to the new Test DB
	testDSN := fmt.Sprintf("postgres://postgres:@localhost:5432/%s?sslmode=disable", testDBName)
	testDB, err := gorm.Open(postgres.Open(testDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test DB: %v", err)
	}

	// 4. Run Migrations
	if err := testDB.AutoMigrate(&models.User{}, &models.Script{}); err != nil {
		t.Fatalf("Failed to migrate test DB: %v", err)
	}

	// 5. Override the global handle the handlers use
	database.DB = testDB

	return testDB
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// Mimic main.go structure
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Python editor backend running."})
	})
	routes.RegisterExecutionRoutes(r)
	routes.RegisterScriptRoutes(r)

	return r
}

func performRequest(r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
