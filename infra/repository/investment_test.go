package repository

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/invochain/pkg/domain/investment"
	"github.com/amirasaad/invochain/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvestmentRepository_CreateDefaults(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewInvestmentRepository(db)
	ctx := context.Background()
	u := seedUser(t, db, "investor")

	risk := investment.RiskMedium
	maturity := time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC)
	inv, err := repo.Create(ctx, u.ID, &dto.InvestmentCreate{
		CompanyName:    "Acme",
		Amount:         1500.5,
		ExpectedReturn: ptr(12.5),
		RiskLevel:      &risk,
		MaturityDate:   &maturity,
	})
	require.NoError(t, err)
	assert.Equal(t, investment.StatusActive, inv.Status)
	assert.False(t, inv.InvestmentDate.IsZero())

	got, err := repo.Get(ctx, inv.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1500.5, got.Amount)
	assert.Equal(t, 12.5, *got.ExpectedReturn)
	assert.Equal(t, investment.RiskMedium, *got.RiskLevel)
	assert.True(t, maturity.Equal(*got.MaturityDate))
	assert.Nil(t, got.BlockchainTxHash)
}

func TestInvestmentRepository_AmountMustBePositive(t *testing.T) {
	db := newSQLiteDB(t)
	u := seedUser(t, db, "investor")

	_, err := NewInvestmentRepository(db).Create(context.Background(), u.ID, &dto.InvestmentCreate{
		CompanyName: "Acme",
		Amount:      0,
	})
	assert.Error(t, err)
}

func TestInvestmentRepository_ListByUserNewestFirst(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewInvestmentRepository(db)
	ctx := context.Background()
	u := seedUser(t, db, "investor")
	other := seedUser(t, db, "other")

	var ids []uint
	for _, name := range []string{"A", "B", "C"} {
		inv, err := repo.Create(ctx, u.ID, &dto.InvestmentCreate{CompanyName: name, Amount: 1})
		require.NoError(t, err)
		ids = append(ids, inv.ID)
	}
	_, err := repo.Create(ctx, other.ID, &dto.InvestmentCreate{CompanyName: "X", Amount: 1})
	require.NoError(t, err)

	list, err := repo.ListByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, ids[2], list[0].ID)
	assert.Equal(t, ids[1], list[1].ID)
	assert.Equal(t, ids[0], list[2].ID)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].InvestmentDate.After(list[i-1].InvestmentDate))
	}
}

func TestInvestmentRepository_ListActiveRespectsLimitAndStatus(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewInvestmentRepository(db)
	ctx := context.Background()
	u := seedUser(t, db, "investor")

	for i := 0; i < 4; i++ {
		_, err := repo.Create(ctx, u.ID, &dto.InvestmentCreate{CompanyName: "Co", Amount: 1})
		require.NoError(t, err)
	}
	done, err := repo.Create(ctx, u.ID, &dto.InvestmentCreate{CompanyName: "Done", Amount: 1})
	require.NoError(t, err)
	_, err = repo.UpdateStatus(ctx, done.ID, investment.StatusCompleted)
	require.NoError(t, err)

	limited, err := repo.ListActive(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	all, err := repo.ListActive(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	for _, inv := range all {
		assert.Equal(t, investment.StatusActive, inv.Status)
	}
}

func TestInvestmentRepository_UpdateStatusIsPermissive(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewInvestmentRepository(db)
	ctx := context.Background()
	u := seedUser(t, db, "investor")
	inv, err := repo.Create(ctx, u.ID, &dto.InvestmentCreate{CompanyName: "Co", Amount: 1})
	require.NoError(t, err)

	for _, s := range []investment.Status{
		investment.StatusDefaulted,
		investment.StatusActive,
		investment.StatusCompleted,
		investment.StatusPending,
	} {
		got, err := repo.UpdateStatus(ctx, inv.ID, s)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, s, got.Status)
	}

	missing, err := repo.UpdateStatus(ctx, inv.ID+50, investment.StatusActive)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestInvestmentRepository_TotalForUser(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewInvestmentRepository(db)
	ctx := context.Background()
	u := seedUser(t, db, "investor")

	total, err := repo.TotalForUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(0), total)

	_, err = repo.Create(ctx, u.ID, &dto.InvestmentCreate{CompanyName: "A", Amount: 100})
	require.NoError(t, err)
	b, err := repo.Create(ctx, u.ID, &dto.InvestmentCreate{CompanyName: "B", Amount: 50.25})
	require.NoError(t, err)
	c, err := repo.Create(ctx, u.ID, &dto.InvestmentCreate{CompanyName: "C", Amount: 1000})
	require.NoError(t, err)
	d, err := repo.Create(ctx, u.ID, &dto.InvestmentCreate{CompanyName: "D", Amount: 7})
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, b.ID, investment.StatusCompleted)
	require.NoError(t, err)
	_, err = repo.UpdateStatus(ctx, c.ID, investment.StatusDefaulted)
	require.NoError(t, err)
	_, err = repo.UpdateStatus(ctx, d.ID, investment.StatusPending)
	require.NoError(t, err)

	total, err = repo.TotalForUser(ctx, u.ID)
	require.NoError(t, err)
	assert.InDelta(t, 150.25, total, 1e-9)
}
