package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/brito-dev/portfolio-backend/internal/models"
)

func TestValidateSSLMode(t *testing.T) {
	assert.Error(t, validateSSLMode("postgres://localhost/db?sslmode=disable"))
	assert.NoError(t, validateSSLMode("postgres://localhost/db?sslmode=require"))
	assert.NoError(t, validateSSLMode("postgres://localhost/db"))
}

func TestConnect_ProductionRejectsDisabledSSL(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	_, err := Connect("postgres://localhost/db?sslmode=disable")
	assert.Error(t, err)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, Migrate(db))

	for _, model := range []interface{}{
		&models.Message{},
		&models.MessageReply{},
		&models.Project{},
		&models.Experience{},
		&models.Skill{},
		&models.Education{},
		&models.AboutMe{},
		&models.HomeContent{},
		&models.ContactInfo{},
	} {
		assert.True(t, db.Migrator().HasTable(model))
	}
}
