// Package testutils provides HTTP test suites that drive the full API
// against a real database.
package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/invochain/infra"
	infrarepo "github.com/amirasaad/invochain/infra/repository"
	"github.com/amirasaad/invochain/internal/fixtures"
	"github.com/amirasaad/invochain/pkg/app"
	"github.com/amirasaad/invochain/pkg/config"
	"github.com/amirasaad/invochain/pkg/utils"
	"github.com/amirasaad/invochain/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const TestPassword = "password123"

// NewTestConfig returns an application config suited to in-process tests.
func NewTestConfig() *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Scheme: "http", Host: "localhost", Port: 3000},
		Log:    &config.Log{Format: "text"},
		DB:     fixtures.SQLiteConfig(),
		Auth: &config.Auth{
			Jwt:        &config.Jwt{Secret: "test-secret", Expiry: time.Hour},
			BcryptCost: bcrypt.MinCost,
		},
		RateLimit: &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
		Cors:      &config.Cors{Origins: "http://localhost:5173"},
	}
}

// NewTestApp builds the full HTTP surface over db.
func NewTestApp(db *gorm.DB, cfg *config.App) *fiber.App {
	deps := &app.Deps{
		Uow:    infrarepo.NewUoW(db),
		DB:     db,
		Hasher: utils.NewHasher(cfg.Auth.BcryptCost, 0),
		Logger: fixtures.DiscardLogger(),
	}
	return webapi.SetupApp(app.New(deps, cfg))
}

// TestUser is an account created through the signup endpoint.
type TestUser struct {
	ID       uint
	Username string
	Email    string
	Token    string
}

// E2ETestSuite drives the API against a fresh in-memory SQLite database
// per test.
type E2ETestSuite struct {
	suite.Suite
	DB  *gorm.DB
	App *fiber.App
	Cfg *config.App
}

func (s *E2ETestSuite) SetupTest() {
	s.Cfg = NewTestConfig()
	s.DB = fixtures.NewSQLiteDB(s.T())
	s.App = NewTestApp(s.DB, s.Cfg)
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *E2ETestSuite) MakeRequest(method, path, body, token string) *http.Response {
	return makeRequest(s, s.App, method, path, body, token)
}

// DecodeBody reads a JSON object response and closes the body.
func (s *E2ETestSuite) DecodeBody(resp *http.Response) map[string]any {
	return decodeBody(s, resp)
}

// CreateTestUser signs up a unique user of the given role and returns
// its id and token.
func (s *E2ETestSuite) CreateTestUser(role string) *TestUser {
	return createTestUser(s, s.App, role)
}

// PostgresE2ETestSuite runs the same flows against PostgreSQL in a
// container. It is skipped in -short mode and without a Docker provider.
type PostgresE2ETestSuite struct {
	suite.Suite
	pgContainer *tcpostgres.PostgresContainer
	DB          *gorm.DB
	App         *fiber.App
	Cfg         *config.App
}

// startPostgresContainer starts a Postgres container using Testcontainers
func (s *PostgresE2ETestSuite) startPostgresContainer(ctx context.Context) (*tcpostgres.PostgresContainer, error) {
	return tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
}

// SetupSuite initializes the test suite with a real Postgres database
func (s *PostgresE2ETestSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("skipping PostgreSQL end-to-end tests in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(s.T())

	ctx := context.Background()
	pg, err := s.startPostgresContainer(ctx)
	s.Require().NoError(err)
	s.pgContainer = pg

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.Cfg = NewTestConfig()
	s.Cfg.DB = &config.DB{
		Driver:       config.DriverPostgres,
		Url:          dsn,
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		AutoMigrate:  true,
	}
	s.DB, err = infra.NewDBConnection(s.Cfg.DB, s.Cfg.Env)
	s.Require().NoError(err)
	s.Require().NoError(infra.Migrate(s.DB, s.Cfg.DB, fixtures.DiscardLogger()))
	s.App = NewTestApp(s.DB, s.Cfg)
}

// TearDownSuite cleans up the test suite resources
func (s *PostgresE2ETestSuite) TearDownSuite() {
	if s.DB != nil {
		_ = infra.Close(s.DB)
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(context.Background())
	}
}

func (s *PostgresE2ETestSuite) MakeRequest(method, path, body, token string) *http.Response {
	return makeRequest(s, s.App, method, path, body, token)
}

func (s *PostgresE2ETestSuite) DecodeBody(resp *http.Response) map[string]any {
	return decodeBody(s, resp)
}

func (s *PostgresE2ETestSuite) CreateTestUser(role string) *TestUser {
	return createTestUser(s, s.App, role)
}

// harness is what both suites expose to the shared helpers.
type harness interface {
	T() *testing.T
	Require() *require.Assertions
}

func makeRequest(h harness, app *fiber.App, method, path, body, token string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	h.Require().NoError(err)
	return resp
}

func decodeBody(h harness, resp *http.Response) map[string]any {
	defer resp.Body.Close() //nolint:errcheck
	raw, err := io.ReadAll(resp.Body)
	h.Require().NoError(err)
	var body map[string]any
	h.Require().NoError(json.Unmarshal(raw, &body), "body: %s", raw)
	return body
}

func createTestUser(h harness, app *fiber.App, role string) *TestUser {
	suffix := uuid.NewString()[:8]
	u := &TestUser{
		Username: "user_" + suffix,
		Email:    fmt.Sprintf("user_%s@example.com", suffix),
	}
	body := fmt.Sprintf(
		`{"username":%q,"email":%q,"password":%q,"user_type":%q}`,
		u.Username, u.Email, TestPassword, role,
	)
	resp := makeRequest(h, app, http.MethodPost, "/api/auth/signup", body, "")
	h.Require().Equal(http.StatusCreated, resp.StatusCode)

	out := decodeBody(h, resp)
	token, ok := out["token"].(string)
	h.Require().True(ok, "signup response carries a token")
	created, ok := out["user"].(map[string]any)
	h.Require().True(ok, "signup response carries the user")
	id, ok := created["id"].(float64)
	h.Require().True(ok, "user id is numeric")

	u.ID = uint(id)
	u.Token = token
	return u
}
