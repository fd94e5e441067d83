package dependency

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/bookkeeping/config"
	"github.com/finance-tracker/bookkeeping/internal/infra/metrics"
	"github.com/finance-tracker/bookkeeping/internal/testutil"
)

type apiClient struct {
	t      *testing.T
	engine *gin.Engine
	token  string
}

func newAPIClient(t *testing.T) *apiClient {
	t.Helper()

	cfg := &config.Config{
		Server:     config.ServerConfig{Port: 8080, Environment: "test"},
		JWT:        config.JWTConfig{Secret: "test-secret", Issuer: "bookkeeping-test", AccessTokenExpiry: time.Hour},
		Storage:    config.StorageConfig{Dir: t.TempDir(), BaseURL: "/uploads", MaxUploadSize: 1 << 20},
		Worker:     config.WorkerConfig{Interval: time.Minute, LeaseTTL: time.Minute},
		RateLimit:  config.RateLimitConfig{Enabled: false, MaxAttempts: 5, Window: time.Minute},
		BcryptCost: 4,
	}

	injector, err := NewInjector(cfg, testutil.NewTestDB(t), Options{
		Metrics:         metrics.New(),
		DBHealthChecker: func() bool { return true },
	})
	require.NoError(t, err)

	return &apiClient{t: t, engine: injector.Router.Setup(cfg.Server.Environment)}
}

func (c *apiClient) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	w := httptest.NewRecorder()
	c.engine.ServeHTTP(w, req)
	return w
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	return envelope.Data
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Field string `json:"field"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

type idResponse struct {
	ID string `json:"id"`
}

type balanceResponse struct {
	ID             string          `json:"id"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
}

func (c *apiClient) register(email string) {
	c.t.Helper()
	w := c.do(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email":    email,
		"name":     "Ledger Owner",
		"password": "s3cretpass",
	})
	require.Equal(c.t, http.StatusCreated, w.Code, w.Body.String())

	auth := decodeData[struct {
		AccessToken string `json:"access_token"`
	}](c.t, w)
	require.NotEmpty(c.t, auth.AccessToken)
	c.token = auth.AccessToken
}

func (c *apiClient) createAccount(name, startingBalance string) string {
	c.t.Helper()
	w := c.do(http.MethodPost, "/api/v1/accounts", map[string]string{
		"name":             name,
		"type":             "bank",
		"starting_balance": startingBalance,
	})
	require.Equal(c.t, http.StatusCreated, w.Code, w.Body.String())
	return decodeData[idResponse](c.t, w).ID
}

func (c *apiClient) balance(accountID string) decimal.Decimal {
	c.t.Helper()
	w := c.do(http.MethodGet, "/api/v1/accounts/"+accountID+"/balance", nil)
	require.Equal(c.t, http.StatusOK, w.Code, w.Body.String())
	return decodeData[balanceResponse](c.t, w).CurrentBalance
}

func TestRouter_RequiresToken(t *testing.T) {
	c := newAPIClient(t)

	w := c.do(http.MethodGet, "/api/v1/accounts", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH-030002", decodeError(t, w).Code)
}

func TestRouter_TransferMovesBalance(t *testing.T) {
	c := newAPIClient(t)
	c.register("owner@example.com")

	checking := c.createAccount("Checking", "100.00")
	wallet := c.createAccount("Wallet", "0")

	w := c.do(http.MethodPost, "/api/v1/transfers", map[string]any{
		"from_account_id": checking,
		"to_account_id":   wallet,
		"amount":          "25.50",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	transfer := decodeData[struct {
		TransferGroupID string     `json:"transfer_group_id"`
		Outgoing        idResponse `json:"outgoing"`
		Incoming        idResponse `json:"incoming"`
	}](t, w)
	assert.NotEmpty(t, transfer.TransferGroupID)

	assert.True(t, decimal.RequireFromString("74.50").Equal(c.balance(checking)))
	assert.True(t, decimal.RequireFromString("25.50").Equal(c.balance(wallet)))

	w = c.do(http.MethodGet, "/api/v1/transactions/"+transfer.Outgoing.ID+"/transfer-partner", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, transfer.Incoming.ID, decodeData[idResponse](t, w).ID)

	w = c.do(http.MethodDelete, "/api/v1/transactions/"+transfer.Incoming.ID, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	deleted := decodeData[struct {
		DeletedIDs []string `json:"deleted_ids"`
	}](t, w)
	assert.ElementsMatch(t, []string{transfer.Outgoing.ID, transfer.Incoming.ID}, deleted.DeletedIDs)

	assert.True(t, decimal.RequireFromString("100").Equal(c.balance(checking)))
	assert.True(t, decimal.Zero.Equal(c.balance(wallet)))
}

func TestRouter_ErrorEnvelope(t *testing.T) {
	c := newAPIClient(t)
	c.register("owner@example.com")
	checking := c.createAccount("Checking", "10")

	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		wantStatus int
		wantCode   string
	}{
		{
			name:   "transfer to the same account",
			method: http.MethodPost,
			path:   "/api/v1/transfers",
			body: map[string]any{
				"from_account_id": checking,
				"to_account_id":   checking,
				"amount":          "1",
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "TXN-010006",
		},
		{
			name:       "malformed account id",
			method:     http.MethodGet,
			path:       "/api/v1/accounts/not-a-uuid",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown account",
			method:     http.MethodGet,
			path:       "/api/v1/accounts/7f6b1c1e-7d43-4a41-9f39-7a3f8f1f2a10",
			wantStatus: http.StatusNotFound,
			wantCode:   "ACC-020001",
		},
		{
			name:       "duplicate registration",
			method:     http.MethodPost,
			path:       "/api/v1/auth/register",
			body:       map[string]string{"email": "OWNER@example.com", "name": "Again", "password": "s3cretpass"},
			wantStatus: http.StatusConflict,
			wantCode:   "AUTH-010001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := c.do(tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			body := decodeError(t, w)
			assert.NotEmpty(t, body.Error)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, body.Code)
			}
		})
	}
}

func TestRouter_CategoryCycleRejected(t *testing.T) {
	c := newAPIClient(t)
	c.register("owner@example.com")

	w := c.do(http.MethodPost, "/api/v1/categories", map[string]string{"name": "Living", "type": "expense"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	parent := decodeData[idResponse](t, w).ID

	w = c.do(http.MethodPost, "/api/v1/categories", map[string]string{"name": "Rent", "type": "expense", "parent_id": parent})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	child := decodeData[idResponse](t, w).ID

	w = c.do(http.MethodPatch, "/api/v1/categories/"+parent, map[string]string{"parent_id": child})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "CAT-010004", decodeError(t, w).Code)
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	c := newAPIClient(t)

	w := c.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var health struct {
		Status string `json:"status"`
		Redis  string `json:"redis"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "disabled", health.Redis)

	w = c.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `bookkeeping_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestRouter_DashboardOverview(t *testing.T) {
	c := newAPIClient(t)
	c.register("owner@example.com")

	checking := c.createAccount("Checking", "100.00")
	wallet := c.createAccount("Wallet", "0")

	w := c.do(http.MethodPost, "/api/v1/transfers", map[string]any{
		"from_account_id": checking,
		"to_account_id":   wallet,
		"amount":          "25.50",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = c.do(http.MethodGet, "/api/v1/dashboard/overview", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	overview := decodeData[struct {
		CurrentMonth struct {
			Start    string          `json:"start"`
			Income   decimal.Decimal `json:"income"`
			Expenses decimal.Decimal `json:"expenses"`
			Net      decimal.Decimal `json:"net"`
		} `json:"current_month"`
		IncomeChange   decimal.Decimal `json:"income_change_pct"`
		TotalBalance   decimal.Decimal `json:"total_balance"`
		ActiveAccounts int             `json:"active_accounts"`
	}](t, w)

	assert.Equal(t, time.Now().UTC().Format("2006-01")+"-01", overview.CurrentMonth.Start)
	assert.True(t, decimal.RequireFromString("25.50").Equal(overview.CurrentMonth.Income))
	assert.True(t, decimal.RequireFromString("25.50").Equal(overview.CurrentMonth.Expenses))
	assert.True(t, overview.CurrentMonth.Net.IsZero())
	assert.True(t, overview.IncomeChange.IsZero())
	assert.True(t, decimal.RequireFromString("100").Equal(overview.TotalBalance))
	assert.Equal(t, 2, overview.ActiveAccounts)
}
