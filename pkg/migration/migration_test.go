package migration

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type note struct {
	ID   uint
	Body string
}

type createNotes struct{}

func (createNotes) Up(db *gorm.DB) error   { return db.AutoMigrate(&note{}) }
func (createNotes) Down(db *gorm.DB) error { return db.Migrator().DropTable(&note{}) }

type tag struct {
	ID   uint
	Name string
}

type createTags struct{}

func (createTags) Up(db *gorm.DB) error   { return db.AutoMigrate(&tag{}) }
func (createTags) Down(db *gorm.DB) error { return db.Migrator().DropTable(&tag{}) }

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestRunRollbackStatus(t *testing.T) {
	db := openDB(t)
	var out bytes.Buffer

	first := NewWith(db, &out, []Entry{{Name: "0001_notes", Migration: createNotes{}}})
	require.NoError(t, first.Run())
	assert.True(t, db.Migrator().HasTable(&note{}))

	both := NewWith(db, &out, []Entry{
		{Name: "0002_tags", Migration: createTags{}},
		{Name: "0001_notes", Migration: createNotes{}},
	})
	pending, err := both.Pending()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "0002_tags", pending[0].Name)

	require.NoError(t, both.Run())
	rows, err := both.Status()
	require.NoError(t, err)
	assert.Equal(t, []StatusRow{
		{Name: "0001_notes", Ran: true, Batch: 1},
		{Name: "0002_tags", Ran: true, Batch: 2},
	}, rows)

	require.NoError(t, both.Rollback())
	assert.False(t, db.Migrator().HasTable(&tag{}))
	assert.True(t, db.Migrator().HasTable(&note{}))

	rows, err = both.Status()
	require.NoError(t, err)
	assert.False(t, rows[1].Ran)

	require.NoError(t, both.PrintStatus())
	assert.Contains(t, out.String(), "Pending")
}

func TestNothingToDo(t *testing.T) {
	db := openDB(t)
	var out bytes.Buffer
	r := NewWith(db, &out, nil)

	require.NoError(t, r.Run())
	require.NoError(t, r.Rollback())
	assert.Contains(t, out.String(), "Nothing to migrate.")
	assert.Contains(t, out.String(), "Nothing to roll back.")
}
