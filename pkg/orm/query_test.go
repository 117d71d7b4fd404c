package orm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type widget struct {
	ID   uint `gorm:"primaryKey"`
	Name string
	Tag  string
}

func newDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&widget{}))
	return db
}

func TestCreateGetFirst(t *testing.T) {
	q := New(newDB(t)).WithContext(context.Background())

	require.NoError(t, q.Create(&widget{Name: "a", Tag: "x"}))
	require.NoError(t, q.Create(&widget{Name: "b", Tag: "x"}))

	var all []widget
	require.NoError(t, q.Where("tag = ?", "x").Get(&all))
	assert.Len(t, all, 2)

	var first widget
	require.NoError(t, q.Where("name = ?", "b").First(&first))
	assert.Equal(t, "b", first.Name)

	err := q.Where("name = ?", "zzz").First(&first)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestExists(t *testing.T) {
	q := New(newDB(t))
	require.NoError(t, q.Create(&widget{Name: "a"}))

	ok, err := q.Model(&widget{}).Where("name = ?", "a").Exists()
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = q.Model(&widget{}).Where("name = ?", "b").Exists()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpsertAndDelete(t *testing.T) {
	q := New(newDB(t))

	var w widget
	require.NoError(t, q.Where(widget{Name: "a"}).Upsert(&w, widget{Tag: "one"}))
	require.NoError(t, q.Where(widget{Name: "a"}).Upsert(&w, widget{Tag: "two"}))

	var rows []widget
	require.NoError(t, q.Get(&rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "two", rows[0].Tag)

	require.NoError(t, q.Delete(&rows[0]))
	rows = nil
	require.NoError(t, q.Get(&rows))
	assert.Empty(t, rows)
}

func TestTransactionRollsBack(t *testing.T) {
	q := New(newDB(t))

	err := q.Transaction(func(tx *Query) error {
		require.NoError(t, tx.Create(&widget{Name: "a"}))
		return errors.New("boom")
	})
	assert.EqualError(t, err, "boom")

	var rows []widget
	require.NoError(t, q.Get(&rows))
	assert.Empty(t, rows)
}
