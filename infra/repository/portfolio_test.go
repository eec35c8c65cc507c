package repository

import (
	"context"
	"testing"

	"github.com/amirasaad/invochain/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioRepository_ListByUser(t *testing.T) {
	db := newSQLiteDB(t)
	ctx := context.Background()
	u := seedUser(t, db, "holder")
	other := seedUser(t, db, "other")

	inv, err := NewInvestmentRepository(db).Create(ctx, u.ID, &dto.InvestmentCreate{CompanyName: "Co", Amount: 100})
	require.NoError(t, err)

	// Snapshots are written by an external process; simulate it.
	require.NoError(t, db.Create(&Portfolio{
		UserID:           u.ID,
		InvestmentID:     inv.ID,
		CurrentValue:     ptr(110.0),
		ProfitLoss:       ptr(10.0),
		ReturnPercentage: ptr(10.0),
	}).Error)
	dup := db.Create(&Portfolio{UserID: u.ID, InvestmentID: inv.ID})
	assert.Error(t, dup.Error, "one snapshot per (user, investment)")

	repo := NewPortfolioRepository(db)
	rows, err := repo.ListByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, inv.ID, rows[0].InvestmentID)
	assert.Equal(t, 110.0, *rows[0].CurrentValue)

	none, err := repo.ListByUser(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}
