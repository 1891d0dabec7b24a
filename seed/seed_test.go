package seed_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Gowty08/Animecosplay/models"
	"github.com/Gowty08/Animecosplay/seed"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Product{}))
	return db
}

func TestLoadCatalog(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, seed.Load(db, filepath.Join("testdata", "catalog.json")))

	var categories []models.Category
	require.NoError(t, db.Order("name").Find(&categories).Error)
	require.Len(t, categories, 2)
	assert.Equal(t, "Costumes", categories[0].Name)
	assert.Equal(t, "Wigs", categories[1].Name)

	var products []models.Product
	require.NoError(t, db.Find(&products).Error)
	require.Len(t, products, 3)

	var gear5 models.Product
	require.NoError(t, db.Where("name = ?", "Gear5 Costume").First(&gear5).Error)
	assert.Equal(t, categories[0].ID, gear5.CategoryID)
	assert.InDelta(t, 89.99, gear5.Price, 0.001)
	assert.Equal(t, []string{"S", "M", "L", "XL"}, gear5.Sizes)
	assert.True(t, gear5.Featured)
}

func TestLoadCatalogIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	path := filepath.Join("testdata", "catalog.json")

	require.NoError(t, seed.Load(db, path))
	require.NoError(t, seed.Load(db, path))

	var categoryCount, productCount int64
	require.NoError(t, db.Model(&models.Category{}).Count(&categoryCount).Error)
	require.NoError(t, db.Model(&models.Product{}).Count(&productCount).Error)
	assert.EqualValues(t, 2, categoryCount)
	assert.EqualValues(t, 3, productCount)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	db := newTestDB(t)
	assert.Error(t, seed.Load(db, filepath.Join("testdata", "missing.json")))
}
