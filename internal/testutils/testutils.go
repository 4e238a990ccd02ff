package testutils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/navacharity/charity-go/config"
	"github.com/navacharity/charity-go/db"
	"github.com/navacharity/charity-go/middleware"
	"github.com/navacharity/charity-go/models"
	"github.com/navacharity/charity-go/routes"
	"github.com/navacharity/charity-go/types"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB points the global DB at a fresh in-memory sqlite database with
// the full schema migrated. The pool is pinned to one connection so the
// in-memory database survives across queries.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbConn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := dbConn.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := dbConn.AutoMigrate(
		&models.User{},
		&models.Benefactor{},
		&models.Charity{},
		&models.Task{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	db.InitWithGormDB(dbConn)
	return dbConn
}

func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.LoadConfig()
	middleware.Init()
	r := gin.New()
	routes.RegisterRoutes(r)
	return r
}

// TestContext builds a gin context carrying the claims of the given user,
// for calling services directly.
func TestContext(uid uint) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Set("claims", &types.Claims{UserID: uid})
	return c
}
