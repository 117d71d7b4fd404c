// Package testdb opens a migrated in-memory sqlite database for tests.
package testdb

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	_ "github.com/shashiranjanraj/companyapi/database/migrations"
	"github.com/shashiranjanraj/companyapi/database/seeders"
	"github.com/shashiranjanraj/companyapi/pkg/database"
	"github.com/shashiranjanraj/companyapi/pkg/migration"
)

// Open returns a database private to t with every migration applied.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, migration.New(db, io.Discard).Run())
	return db
}

// Seeded is Open plus the fixture rows.
func Seeded(t *testing.T) *gorm.DB {
	t.Helper()
	db := Open(t)
	require.NoError(t, seeders.RunAll(db, io.Discard))
	return db
}

// Broken returns a handle whose connection pool is already closed, so every
// query fails with a storage fault.
func Broken(t *testing.T) *gorm.DB {
	t.Helper()
	db := Open(t)
	require.NoError(t, database.Close(db))
	return db
}
