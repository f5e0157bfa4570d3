package repository

import (
	"errors"
	"time"

	"github.com/justsurfingit/job-board-api/internal/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNotFound is returned when a lookup by id matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when an update targets a stale version.
	ErrConflict = errors.New("optimistic lock conflict")
)

// Clock supplies write timestamps. Postgres keeps microseconds, so values
// are truncated to match what a reload returns.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// orderBy applies orders whose field has a column; a trailing id order keeps
// pages stable when the requested fields tie.
func orderBy(orders []pagination.Order, columns map[string]string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		hasID := false
		for _, o := range orders {
			col, ok := columns[o.Field]
			if !ok {
				continue
			}
			if col == "id" {
				hasID = true
			}
			db = db.Order(clause.OrderByColumn{
				Column: clause.Column{Table: clause.CurrentTable, Name: col},
				Desc:   o.Descending(),
			})
		}
		if !hasID {
			db = db.Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}})
		}
		return db
	}
}

func paginate(req pagination.Request) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset()).Limit(req.Size)
	}
}

func sortFields(columns map[string]string) []string {
	fields := make([]string, 0, len(columns))
	for f := range columns {
		fields = append(fields, f)
	}
	return fields
}
