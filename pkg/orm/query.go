// Package orm is a thin chainable wrapper over *gorm.DB that times every
// terminal call into the db query histogram.
//
//	var users []models.User
//	err := orm.New(db).WithContext(ctx).Where("email = ?", email).Get(&users)
package orm

import (
	"context"
	"errors"
	"time"

	"github.com/shashiranjanraj/companyapi/pkg/metrics"
	"gorm.io/gorm"
)

type Query struct {
	db *gorm.DB
}

// New wraps an injected gorm handle.
func New(db *gorm.DB) *Query {
	return &Query{db: db}
}

// DB exposes the underlying handle for migrations and seeders.
func (q *Query) DB() *gorm.DB { return q.db }

func (q *Query) WithContext(ctx context.Context) *Query {
	return &Query{db: q.db.WithContext(ctx)}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Table(name string, args ...interface{}) *Query {
	return &Query{db: q.db.Table(name, args...)}
}

func (q *Query) Select(query interface{}, args ...interface{}) *Query {
	return &Query{db: q.db.Select(query, args...)}
}

func (q *Query) Joins(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Joins(query, args...)}
}

func (q *Query) Where(query interface{}, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Omit(columns ...string) *Query {
	return &Query{db: q.db.Omit(columns...)}
}

func (q *Query) Order(value interface{}) *Query {
	return &Query{db: q.db.Order(value)}
}

// Get loads every matching row into dest.
func (q *Query) Get(dest interface{}) error {
	return observe("select", func() error { return q.db.Find(dest).Error })
}

// First loads the first matching row ordered by primary key. A missing row
// is reported as gorm.ErrRecordNotFound.
func (q *Query) First(dest interface{}) error {
	return observe("select", func() error { return q.db.First(dest).Error })
}

// Scan runs a projection query into dest.
func (q *Query) Scan(dest interface{}) error {
	return observe("select", func() error { return q.db.Scan(dest).Error })
}

// Exists reports whether at least one row matches.
func (q *Query) Exists() (bool, error) {
	var n int64
	err := observe("select", func() error { return q.db.Limit(1).Count(&n).Error })
	return n > 0, err
}

func (q *Query) Create(v interface{}) error {
	return observe("insert", func() error { return q.db.Create(v).Error })
}

// Save overwrites every column of v, inserting when the key is unset.
func (q *Query) Save(v interface{}) error {
	return observe("update", func() error { return q.db.Save(v).Error })
}

// Upsert updates the first row matching the current conditions with assign,
// or creates dest from conditions + assign when no row matches.
func (q *Query) Upsert(dest interface{}, assign interface{}) error {
	return observe("update", func() error { return q.db.Assign(assign).FirstOrCreate(dest).Error })
}

func (q *Query) Delete(v interface{}, conds ...interface{}) error {
	return observe("delete", func() error { return q.db.Delete(v, conds...).Error })
}

// Transaction runs fn inside a database transaction; fn's error rolls back.
func (q *Query) Transaction(fn func(tx *Query) error) error {
	return q.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Query{db: tx})
	})
}

func observe(operation string, fn func() error) error {
	start := time.Now()
	err := fn()
	metrics.ObserveDBQuery(operation, start, err != nil && !errors.Is(err, gorm.ErrRecordNotFound))
	return err
}
