package portfolio_test

import (
	"context"
	"testing"

	"github.com/amirasaad/invochain/internal/fixtures"
	"github.com/amirasaad/invochain/internal/fixtures/mocks"
	"github.com/amirasaad/invochain/pkg/dto"
	portfoliosvc "github.com/amirasaad/invochain/pkg/service/portfolio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListUserPortfolio(t *testing.T) {
	t.Parallel()
	repo := mocks.NewMockPortfolioRepository(t)
	uow := mocks.NewMockUnitOfWork(t)
	uow.On("PortfolioRepository").Return(repo, nil)
	uow.RunInline()
	value := 1100.0
	repo.On("ListByUser", mock.Anything, uint(1)).
		Return([]*dto.PortfolioRead{{ID: 1, UserID: 1, InvestmentID: 3, CurrentValue: &value}}, nil)

	svc := portfoliosvc.New(uow, fixtures.DiscardLogger())
	list, err := svc.ListUserPortfolio(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.InDelta(t, 1100, *list[0].CurrentValue, 0)
}

func TestListUserPortfolio_EmptySQLite(t *testing.T) {
	t.Parallel()
	uow, _ := fixtures.NewSQLiteUoW(t)
	svc := portfoliosvc.New(uow, fixtures.DiscardLogger())

	list, err := svc.ListUserPortfolio(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, list)
}
