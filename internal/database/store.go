package database

import (
	"context"

	"github.com/justsurfingit/job-board-api/internal/repository"
	"gorm.io/gorm"
)

// Repositories groups the repositories bound to one transaction.
type Repositories struct {
	Companies *repository.CompanyRepository
	Jobs      *repository.JobRepository
}

// Store hands out transaction-scoped repositories.
type Store struct {
	db    *gorm.DB
	clock repository.Clock
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db, clock: repository.SystemClock}
}

func (s *Store) repositories(tx *gorm.DB) *Repositories {
	return &Repositories{
		Companies: repository.NewCompanyRepository(tx, s.clock),
		Jobs:      repository.NewJobRepository(tx, s.clock),
	}
}

// Ping checks that the database answers.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Transact runs fn inside a transaction. The transaction is rolled back if
// fn returns an error or panics.
func Transact[T any](ctx context.Context, s *Store, fn func(r *Repositories) (T, error)) (T, error) {
	var out T
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		out, err = fn(s.repositories(tx))
		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Exec is Transact for work that returns nothing but an error.
func Exec(ctx context.Context, s *Store, fn func(r *Repositories) error) error {
	_, err := Transact(ctx, s, func(r *Repositories) (struct{}, error) {
		return struct{}{}, fn(r)
	})
	return err
}
