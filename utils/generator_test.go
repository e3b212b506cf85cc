package utils

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/nahomt24/addis_estates/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Property{}))
	return db
}

func TestGenerateUniqueReferenceCodeShape(t *testing.T) {
	db := setupTestDB(t)

	code, err := GenerateUniqueReferenceCode(db)
	require.NoError(t, err)
	assert.Regexp(t, `^AE-[A-Z0-9]{8}$`, code)
}

func TestGenerateUniqueReferenceCodeIsUsable(t *testing.T) {
	db := setupTestDB(t)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		code, err := GenerateUniqueReferenceCode(db)
		require.NoError(t, err)
		assert.False(t, seen[code], "generated a duplicate code: %s", code)
		seen[code] = true

		property := models.Property{
			BrokerID:      1,
			ReferenceCode: code,
			Title:         "Listing",
			Price:         1,
			Currency:      "ETB",
			Type:          "HOUSE",
			Status:        models.PropertyActive,
		}
		require.NoError(t, db.Create(&property).Error)
	}
}
