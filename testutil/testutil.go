// Package testutil wires an in-memory API instance for package tests: sqlite
// DB, migrated schema, and the same router setup as production.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Gowty08/Animecosplay/models"
	"github.com/Gowty08/Animecosplay/routes"
)

// NewTestAPI returns a router and DB backed by a fresh in-memory sqlite store.
func NewTestAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
	))

	r := gin.New()
	routes.SetupRoutes(r, db)
	return r, db
}

// DoJSON performs a request against the router; token may be empty.
func DoJSON(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// RegisterUser registers a fresh user through the API and returns its token.
func RegisterUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	body := `{"name":"Test User","email":"` + email + `","password":"secret123"}`
	w := DoJSON(t, r, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

// CreateProduct inserts a category (reused by name) and a product under it.
func CreateProduct(t *testing.T, db *gorm.DB, categoryName, name string, price float64, featured bool) models.Product {
	t.Helper()
	category := models.Category{Name: categoryName}
	require.NoError(t, db.Where(models.Category{Name: categoryName}).FirstOrCreate(&category).Error)

	product := models.Product{
		Name:       name,
		Price:      price,
		Featured:   featured,
		Sizes:      []string{"S", "M", "L"},
		InStock:    true,
		CategoryID: category.ID,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}
