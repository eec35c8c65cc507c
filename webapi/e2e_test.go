package webapi_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/amirasaad/invochain/infra/repository"
	"github.com/amirasaad/invochain/webapi/testutils"
	"github.com/stretchr/testify/suite"
)

type APITestSuite struct {
	testutils.E2ETestSuite
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

func (s *APITestSuite) TestRootBanner() {
	resp := s.MakeRequest(http.MethodGet, "/", "", "")
	s.Equal(http.StatusOK, resp.StatusCode)
	body := s.DecodeBody(resp)
	s.Equal("InvoChain API Server", body["message"])
	s.Contains(body["endpoints"], "invoices")
}

func (s *APITestSuite) TestHealth() {
	resp := s.MakeRequest(http.MethodGet, "/health", "", "")
	s.Equal(http.StatusOK, resp.StatusCode)
	body := s.DecodeBody(resp)
	s.Equal("ok", body["status"])
	s.Equal("sqlite", body["database"])
	s.Equal("ok", body["database_ping"])
	s.Equal("test", body["environment"])
}

func (s *APITestSuite) TestUnknownRoute() {
	resp := s.MakeRequest(http.MethodGet, "/api/nope", "", "")
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("Route not found", s.DecodeBody(resp)["error"])
}

func (s *APITestSuite) TestRequestIDHeader() {
	resp := s.MakeRequest(http.MethodGet, "/", "", "")
	defer resp.Body.Close() //nolint:errcheck
	s.NotEmpty(resp.Header.Get("X-Request-ID"))
}

func (s *APITestSuite) TestSignup() {
	resp := s.MakeRequest(http.MethodPost, "/api/auth/signup",
		`{"username":"alice","email":"a@x.com","password":"p"}`, "")
	s.Equal(http.StatusCreated, resp.StatusCode)

	body := s.DecodeBody(resp)
	s.Equal("User created successfully", body["message"])
	s.NotEmpty(body["token"])
	u, ok := body["user"].(map[string]any)
	s.Require().True(ok)
	s.Equal("alice", u["username"])
	s.Equal("investor", u["user_type"])
	s.NotContains(u, "password")
	s.NotContains(u, "password_hash")
	s.Nil(u["last_login"])
}

func (s *APITestSuite) TestSignup_Conflicts() {
	first := `{"username":"alice","email":"a@x.com","password":"p"}`
	resp := s.MakeRequest(http.MethodPost, "/api/auth/signup", first, "")
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	resp = s.MakeRequest(http.MethodPost, "/api/auth/signup",
		`{"username":"alice","email":"other@x.com","password":"p"}`, "")
	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("Username already exists", s.DecodeBody(resp)["error"])

	resp = s.MakeRequest(http.MethodPost, "/api/auth/signup",
		`{"username":"alice2","email":"a@x.com","password":"p"}`, "")
	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("Email already exists", s.DecodeBody(resp)["error"])
}

func (s *APITestSuite) TestSignup_Validation() {
	resp := s.MakeRequest(http.MethodPost, "/api/auth/signup",
		`{"username":"al","email":"not-an-email","password":"secret","user_type":"admin"}`, "")
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	body := s.DecodeBody(resp)
	errs, ok := body["errors"].([]any)
	s.Require().True(ok)
	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.(map[string]any)["field"].(string)] = true
	}
	s.True(fields["username"])
	s.True(fields["email"])
	s.True(fields["user_type"])
	s.False(fields["password"])
}

func (s *APITestSuite) TestSignup_MalformedBody() {
	resp := s.MakeRequest(http.MethodPost, "/api/auth/signup", `{"username":`, "")
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("Invalid request body", s.DecodeBody(resp)["error"])
}

func (s *APITestSuite) TestSignup_MultibytePasswordTooLong() {
	// 30 runes but 90 bytes, past what bcrypt accepts.
	password := strings.Repeat("€", 30)
	resp := s.MakeRequest(http.MethodPost, "/api/auth/signup",
		fmt.Sprintf(`{"username":"alice","email":"a@x.com","password":%q}`, password), "")
	s.Require().Equal(http.StatusBadRequest, resp.StatusCode)

	errs, ok := s.DecodeBody(resp)["errors"].([]any)
	s.Require().True(ok)
	s.Require().Len(errs, 1)
	fe := errs[0].(map[string]any)
	s.Equal("password", fe["field"])
	s.Equal("must be at most 72 bytes", fe["message"])
	s.Nil(fe["value"])

	var count int64
	s.Require().NoError(s.DB.Model(&repository.User{}).Count(&count).Error)
	s.Zero(count)
}

func (s *APITestSuite) TestLogin() {
	u := s.CreateTestUser("sme")

	resp := s.MakeRequest(http.MethodPost, "/api/auth/login",
		fmt.Sprintf(`{"identity":%q,"password":"wrong"}`, u.Email), "")
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.NotContains(s.DecodeBody(resp), "token")

	resp = s.MakeRequest(http.MethodPost, "/api/auth/login",
		fmt.Sprintf(`{"identity":"nobody","password":%q}`, testutils.TestPassword), "")
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	resp = s.MakeRequest(http.MethodPost, "/api/auth/login",
		fmt.Sprintf(`{"identity":%q,"password":%q}`, u.Email, testutils.TestPassword), "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	body := s.DecodeBody(resp)
	s.NotEmpty(body["token"])
	user := body["user"].(map[string]any)
	s.NotNil(user["last_login"])
	s.Equal("sme", user["user_type"])

	// username alias
	resp = s.MakeRequest(http.MethodPost, "/api/auth/login",
		fmt.Sprintf(`{"username":%q,"password":%q}`, u.Username, testutils.TestPassword), "")
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *APITestSuite) TestLogin_UsernameWithAt() {
	resp := s.MakeRequest(http.MethodPost, "/api/auth/signup",
		`{"username":"bob@corp.io","email":"b@y.io","password":"pw"}`, "")
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	resp = s.MakeRequest(http.MethodPost, "/api/auth/login",
		`{"username":"bob@corp.io","password":"pw"}`, "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	body := s.DecodeBody(resp)
	s.NotEmpty(body["token"])
	s.Equal("bob@corp.io", body["user"].(map[string]any)["username"])

	resp = s.MakeRequest(http.MethodPost, "/api/auth/login",
		`{"identity":"b@y.io","password":"pw"}`, "")
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *APITestSuite) TestLogin_MissingFields() {
	resp := s.MakeRequest(http.MethodPost, "/api/auth/login", `{"password":"x"}`, "")
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *APITestSuite) TestMe() {
	resp := s.MakeRequest(http.MethodGet, "/api/auth/me", "", "")
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.Equal("Missing or malformed token", s.DecodeBody(resp)["error"])

	resp = s.MakeRequest(http.MethodGet, "/api/auth/me", "", "garbage")
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	u := s.CreateTestUser("investor")
	resp = s.MakeRequest(http.MethodGet, "/api/auth/me", "", u.Token)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	body := s.DecodeBody(resp)
	s.Equal(u.Username, body["user"].(map[string]any)["username"])
	s.InDelta(0.0, body["total_invested"], 0.0001)
}

func (s *APITestSuite) TestUpdateMe() {
	u := s.CreateTestUser("sme")
	resp := s.MakeRequest(http.MethodPut, "/api/auth/me", `{"company_name":"Acme Ltd"}`, u.Token)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	user := s.DecodeBody(resp)["user"].(map[string]any)
	s.Equal("Acme Ltd", user["company_name"])

	resp = s.MakeRequest(http.MethodPut, "/api/auth/me", `{"phone":"555"}`, u.Token)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	user = s.DecodeBody(resp)["user"].(map[string]any)
	s.Equal("555", user["phone"])
	s.Equal("Acme Ltd", user["company_name"])
}

func (s *APITestSuite) TestInvoice_NegativeAmountRejected() {
	u := s.CreateTestUser("sme")
	resp := s.MakeRequest(http.MethodPost, "/api/invoices",
		`{"invoice_number":"INV-1","buyer_company":"Buyer","invoice_amount":-5,"due_date":"2030-01-31"}`, u.Token)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	errs := s.DecodeBody(resp)["errors"].([]any)
	s.Require().Len(errs, 1)
	s.Equal("invoice_amount", errs[0].(map[string]any)["field"])

	var count int64
	s.Require().NoError(s.DB.Model(&repository.Invoice{}).Count(&count).Error)
	s.Zero(count)
}

func (s *APITestSuite) TestInvoice_Lifecycle() {
	sme := s.CreateTestUser("sme")
	investor := s.CreateTestUser("investor")

	resp := s.MakeRequest(http.MethodPost, "/api/invoices",
		`{"invoice_number":" INV-1 ","buyer_company":"Buyer","invoice_amount":"1500.50","due_date":"2030-01-31"}`, sme.Token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	inv := s.DecodeBody(resp)["invoice"].(map[string]any)
	s.Equal("INV-1", inv["invoice_number"])
	s.Equal("pending", inv["status"])
	s.Equal("unverified", inv["verification_status"])
	s.InDelta(1500.50, inv["invoice_amount"], 0.001)
	id := uint(inv["id"].(float64))

	resp = s.MakeRequest(http.MethodPost, "/api/invoices",
		`{"invoice_number":"INV-1","buyer_company":"Other","invoice_amount":10,"due_date":"2030-01-31"}`, sme.Token)
	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("Invoice number already exists", s.DecodeBody(resp)["error"])

	resp = s.MakeRequest(http.MethodPut, fmt.Sprintf("/api/invoices/%d/verify", id), "", investor.Token)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	body := s.DecodeBody(resp)
	s.Equal("Invoice verified", body["message"])
	s.Equal("verified", body["invoice"].(map[string]any)["verification_status"])
	s.NotNil(body["invoice"].(map[string]any)["verified_at"])

	resp = s.MakeRequest(http.MethodPut, fmt.Sprintf("/api/invoices/%d/status", id), `{"status":"funded"}`, investor.Token)
	s.Equal(http.StatusForbidden, resp.StatusCode)
	s.Equal("Not allowed to modify this invoice", s.DecodeBody(resp)["error"])

	resp = s.MakeRequest(http.MethodPut, fmt.Sprintf("/api/invoices/%d/status", id), `{"status":"overdue"}`, sme.Token)
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	resp = s.MakeRequest(http.MethodPut, fmt.Sprintf("/api/invoices/%d/status", id), `{"status":"funded"}`, sme.Token)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	funded := s.DecodeBody(resp)["invoice"].(map[string]any)
	s.Equal("funded", funded["status"])
	s.NotNil(funded["funded_at"])

	resp = s.MakeRequest(http.MethodGet, fmt.Sprintf("/api/invoices/%d", id), "", investor.Token)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("funded", s.DecodeBody(resp)["invoice"].(map[string]any)["status"])
}

func (s *APITestSuite) TestInvoice_NotFound() {
	u := s.CreateTestUser("investor")

	resp := s.MakeRequest(http.MethodPut, "/api/invoices/999999/verify", "", u.Token)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("Invoice not found", s.DecodeBody(resp)["error"])

	resp = s.MakeRequest(http.MethodGet, "/api/invoices/999999", "", u.Token)
	s.Equal(http.StatusNotFound, resp.StatusCode)

	resp = s.MakeRequest(http.MethodGet, "/api/invoices/abc", "", u.Token)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("Invalid id", s.DecodeBody(resp)["error"])
}

func (s *APITestSuite) TestInvoice_ListingsAndLimit() {
	sme := s.CreateTestUser("sme")
	for i := 1; i <= 3; i++ {
		resp := s.MakeRequest(http.MethodPost, "/api/invoices",
			fmt.Sprintf(`{"invoice_number":"INV-%d","buyer_company":"Buyer","invoice_amount":%d,"due_date":"2030-01-31T00:00:00Z"}`, i, i*100), sme.Token)
		s.Require().Equal(http.StatusCreated, resp.StatusCode)
	}

	resp := s.MakeRequest(http.MethodGet, "/api/invoices", "", sme.Token)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	list := s.DecodeBody(resp)["invoices"].([]any)
	s.Require().Len(list, 3)
	s.Equal("INV-3", list[0].(map[string]any)["invoice_number"])
	s.Equal("INV-1", list[2].(map[string]any)["invoice_number"])

	other := s.CreateTestUser("investor")
	resp = s.MakeRequest(http.MethodGet, "/api/invoices", "", other.Token)
	s.Empty(s.DecodeBody(resp)["invoices"])

	resp = s.MakeRequest(http.MethodGet, "/api/invoices/pending?limit=2", "", other.Token)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Len(s.DecodeBody(resp)["invoices"], 2)

	resp = s.MakeRequest(http.MethodGet, "/api/invoices/pending?limit=x", "", other.Token)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *APITestSuite) TestInvestment_Flow() {
	investor := s.CreateTestUser("investor")

	resp := s.MakeRequest(http.MethodPost, "/api/investments",
		`{"company_name":"Acme","amount":1000,"expected_return":8.5,"risk_level":"low","maturity_date":"2031-06-30"}`, investor.Token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	first := s.DecodeBody(resp)["investment"].(map[string]any)
	s.Equal("active", first["status"])
	s.Equal("low", first["risk_level"])
	firstID := uint(first["id"].(float64))

	resp = s.MakeRequest(http.MethodPost, "/api/investments",
		`{"company_name":"Globex","amount":"250.25"}`, investor.Token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	resp = s.MakeRequest(http.MethodGet, "/api/investments", "", investor.Token)
	list := s.DecodeBody(resp)["investments"].([]any)
	s.Require().Len(list, 2)
	s.Equal("Globex", list[0].(map[string]any)["company_name"])

	resp = s.MakeRequest(http.MethodGet, "/api/investments/summary", "", investor.Token)
	s.InDelta(1250.25, s.DecodeBody(resp)["total"], 0.001)

	resp = s.MakeRequest(http.MethodPut, fmt.Sprintf("/api/investments/%d/status", firstID), `{"status":"defaulted"}`, investor.Token)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal("defaulted", s.DecodeBody(resp)["investment"].(map[string]any)["status"])

	resp = s.MakeRequest(http.MethodGet, "/api/auth/me", "", investor.Token)
	s.InDelta(250.25, s.DecodeBody(resp)["total_invested"], 0.001)

	resp = s.MakeRequest(http.MethodGet, "/api/investments/active?limit=10", "", investor.Token)
	s.Len(s.DecodeBody(resp)["investments"], 1)

	other := s.CreateTestUser("investor")
	resp = s.MakeRequest(http.MethodPut, fmt.Sprintf("/api/investments/%d/status", firstID), `{"status":"active"}`, other.Token)
	s.Equal(http.StatusForbidden, resp.StatusCode)
	s.Equal("Not allowed to modify this investment", s.DecodeBody(resp)["error"])

	resp = s.MakeRequest(http.MethodGet, fmt.Sprintf("/api/investments/%d", firstID), "", other.Token)
	s.Equal(http.StatusOK, resp.StatusCode)

	resp = s.MakeRequest(http.MethodGet, "/api/investments/424242", "", other.Token)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *APITestSuite) TestInvestment_Validation() {
	investor := s.CreateTestUser("investor")
	resp := s.MakeRequest(http.MethodPost, "/api/investments",
		`{"company_name":"  ","amount":"abc","expected_return":150,"maturity_date":"31/12/2030"}`, investor.Token)
	s.Require().Equal(http.StatusBadRequest, resp.StatusCode)

	messages := map[string]string{}
	for _, e := range s.DecodeBody(resp)["errors"].([]any) {
		fe := e.(map[string]any)
		messages[fe["field"].(string)] = fe["message"].(string)
	}
	s.Contains(messages, "company_name")
	s.Equal("must be a number", messages["amount"])
	s.Contains(messages, "expected_return")
	s.Contains(messages, "maturity_date")
}

func (s *APITestSuite) TestTransactions() {
	investor := s.CreateTestUser("investor")
	resp := s.MakeRequest(http.MethodPost, "/api/investments", `{"company_name":"Acme","amount":500}`, investor.Token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	resp = s.MakeRequest(http.MethodGet, "/api/transactions", "", investor.Token)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	list := s.DecodeBody(resp)["transactions"].([]any)
	s.Require().Len(list, 1)
	tx := list[0].(map[string]any)
	s.Equal("investment", tx["transaction_type"])
	s.Equal("pending", tx["status"])
	txID := uint(tx["id"].(float64))

	resp = s.MakeRequest(http.MethodGet, fmt.Sprintf("/api/transactions/%d", txID), "", investor.Token)
	s.Equal(http.StatusOK, resp.StatusCode)

	other := s.CreateTestUser("investor")
	resp = s.MakeRequest(http.MethodGet, fmt.Sprintf("/api/transactions/%d", txID), "", other.Token)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *APITestSuite) TestPortfolio() {
	u := s.CreateTestUser("investor")
	resp := s.MakeRequest(http.MethodGet, "/api/portfolio", "", u.Token)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	body := s.DecodeBody(resp)
	s.Contains(body, "portfolio")
	s.Empty(body["portfolio"])
}

type PostgresAPITestSuite struct {
	testutils.PostgresE2ETestSuite
}

func TestPostgresAPITestSuite(t *testing.T) {
	suite.Run(t, new(PostgresAPITestSuite))
}

func (s *PostgresAPITestSuite) TestHealth() {
	resp := s.MakeRequest(http.MethodGet, "/health", "", "")
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("postgres", s.DecodeBody(resp)["database"])
}

func (s *PostgresAPITestSuite) TestSignupLoginAndDuplicates() {
	u := s.CreateTestUser("sme")

	resp := s.MakeRequest(http.MethodPost, "/api/auth/signup",
		fmt.Sprintf(`{"username":%q,"email":"fresh@example.com","password":"p"}`, u.Username), "")
	s.Equal(http.StatusConflict, resp.StatusCode)

	resp = s.MakeRequest(http.MethodPost, "/api/auth/login",
		fmt.Sprintf(`{"identity":%q,"password":%q}`, u.Username, testutils.TestPassword), "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.NotNil(s.DecodeBody(resp)["user"].(map[string]any)["last_login"])
}

func (s *PostgresAPITestSuite) TestInvoiceAndInvestment() {
	sme := s.CreateTestUser("sme")
	number := "PG-" + sme.Username
	resp := s.MakeRequest(http.MethodPost, "/api/invoices",
		fmt.Sprintf(`{"invoice_number":%q,"buyer_company":"Buyer","invoice_amount":99.99,"due_date":"2030-01-31"}`, number), sme.Token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	id := uint(s.DecodeBody(resp)["invoice"].(map[string]any)["id"].(float64))

	resp = s.MakeRequest(http.MethodPost, "/api/invoices",
		fmt.Sprintf(`{"invoice_number":%q,"buyer_company":"Buyer","invoice_amount":1,"due_date":"2030-01-31"}`, number), sme.Token)
	s.Equal(http.StatusConflict, resp.StatusCode)

	resp = s.MakeRequest(http.MethodPut, fmt.Sprintf("/api/invoices/%d/verify", id), "", sme.Token)
	s.Equal(http.StatusOK, resp.StatusCode)

	investor := s.CreateTestUser("investor")
	resp = s.MakeRequest(http.MethodPost, "/api/investments", `{"company_name":"Acme","amount":40}`, investor.Token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	resp = s.MakeRequest(http.MethodGet, "/api/investments/summary", "", investor.Token)
	s.InDelta(40.0, s.DecodeBody(resp)["total"], 0.001)
}
