package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/justsurfingit/job-board-api/internal/database"
	"github.com/justsurfingit/job-board-api/internal/models"
	"github.com/justsurfingit/job-board-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransact_CommitsOnSuccess(t *testing.T) {
	db := testutil.NewDB(t)
	store := database.NewStore(db)
	ctx := context.Background()

	id, err := database.Transact(ctx, store, func(r *database.Repositories) (uint, error) {
		c := &models.Company{Name: "Acme", Location: "Berlin"}
		if err := r.Companies.Create(ctx, c); err != nil {
			return 0, err
		}
		return c.ID, nil
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Company{}).Where("id = ?", id).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestTransact_RollsBackOnError(t *testing.T) {
	db := testutil.NewDB(t)
	store := database.NewStore(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := database.Exec(ctx, store, func(r *database.Repositories) error {
		if err := r.Companies.Create(ctx, &models.Company{Name: "Acme", Location: "Berlin"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, db.Model(&models.Company{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestStore_Ping(t *testing.T) {
	store := testutil.NewStore(t)
	assert.NoError(t, store.Ping(context.Background()))
}
