package user

import (
	"context"

	"github.com/amirasaad/invochain/pkg/domain/user"
	"github.com/amirasaad/invochain/pkg/dto"
)

const demoPassword = "demo123"

var demoUsers = []dto.UserCreate{
	{
		Username: "demo_investor",
		Email:    "investor@demo.com",
		FullName: strPtr("Demo Investor"),
		Role:     user.RoleInvestor,
	},
	{
		Username: "demo_sme",
		Email:    "sme@demo.com",
		FullName: strPtr("Demo SME"),
		Role:     user.RoleSME,
	},
}

// SeedDemoUsers creates the demo accounts when no user exists yet and
// returns how many were created.
func (s *Service) SeedDemoUsers(ctx context.Context) (int, error) {
	count, err := s.CountUsers(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.logger.Debug("Skipping demo users; users table not empty", "count", count)
		return 0, nil
	}
	for _, demo := range demoUsers {
		demo.Password = demoPassword
		if _, err := s.CreateUser(ctx, demo); err != nil {
			return 0, err
		}
		s.logger.Info("Created demo user", "username", demo.Username, "role", demo.Role)
	}
	return len(demoUsers), nil
}

func strPtr(s string) *string { return &s }
