package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wallet-ledger/config"
	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/adapter/http/middleware"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/internal/core/ports/mocks"
	"wallet-ledger/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testLedgerCfg = config.LedgerConfig{
	Cards:        []string{"9224-1234-5678-9012"},
	SaldoNumbers: []string{"53555555"},
	USDTAddress:  "0xDepositAddress",
}

func postJSON(t *testing.T, body interface{}) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

// --- Signal Handler Tests ---

func TestIngestSMS_KnownCardSettles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSignal := mocks.NewMockSignalService(ctrl)
	h := NewSignalHandler(mockSignal, testLedgerCfg, zerolog.Nop())

	mockSignal.EXPECT().Process(gomock.Any(), domain.Signal{
		Phone:            "53111111",
		Amount:           950,
		Currency:         domain.CurrencyCUP,
		ExternalID:       "BNC-001",
		SettlementMethod: "transfermovil",
	}).Return(&domain.SettlementResult{
		Outcome:        domain.OutcomeSettled,
		Currency:       domain.CurrencyCUP,
		ExternalID:     "BNC-001",
		AmountReceived: 950,
		Bonus:          95,
		Credited:       1045,
		NewBalance:     1045,
	}, nil)

	w, c := postJSON(t, dto.SMSSignalRequest{
		Proveedor:       "Transfermovil",
		TipoTransaccion: "transferencia",
		Monto:           950,
		Remitente:       "5311-1111",
		Receptor:        "9224123456789012",
		TransaccionID:   "BNC-001",
		Valid:           true,
	})
	h.IngestSMS(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "settled", data["outcome"])
	assert.Equal(t, float64(1045), data["credited"])
}

func TestIngestSMS_SaldoNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSignal := mocks.NewMockSignalService(ctrl)
	h := NewSignalHandler(mockSignal, testLedgerCfg, zerolog.Nop())

	mockSignal.EXPECT().Process(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sig domain.Signal) (*domain.SettlementResult, error) {
			assert.Equal(t, domain.CurrencySaldo, sig.Currency)
			return &domain.SettlementResult{Outcome: domain.OutcomeSettled, Currency: sig.Currency}, nil
		})

	w, c := postJSON(t, dto.SMSSignalRequest{
		Proveedor:     "Cubacel",
		Monto:         600,
		Remitente:     "53222222",
		Receptor:      "53555555",
		TransaccionID: "CUB-9",
		Valid:         true,
	})
	h.IngestSMS(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIngestSMS_InvalidFlagIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSignal := mocks.NewMockSignalService(ctrl)
	h := NewSignalHandler(mockSignal, testLedgerCfg, zerolog.Nop())

	w, c := postJSON(t, dto.SMSSignalRequest{
		Proveedor:     "Transfermovil",
		Monto:         950,
		Receptor:      "9224123456789012",
		TransaccionID: "BNC-002",
		Valid:         false,
	})
	h.IngestSMS(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ignored", dataField(t, w)["outcome"])
}

func TestIngestSMS_UnknownReceptorRecordsUnmatched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSignal := mocks.NewMockSignalService(ctrl)
	h := NewSignalHandler(mockSignal, testLedgerCfg, zerolog.Nop())

	mockSignal.EXPECT().RecordUnmatched(gomock.Any(), gomock.Any(), true).
		Return(&domain.SettlementResult{
			Outcome:    domain.OutcomeUnmatched,
			ExternalID: "BNC-003",
		}, nil)

	w, c := postJSON(t, dto.SMSSignalRequest{
		Proveedor:     "Transfermovil",
		Monto:         500,
		Remitente:     "53111111",
		Receptor:      "0000111122223333",
		TransaccionID: "BNC-003",
		Valid:         true,
	})
	h.IngestSMS(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "unmatched", dataField(t, w)["outcome"])
}

func TestIngestSMS_MaskedReceptorMatchesByTail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSignal := mocks.NewMockSignalService(ctrl)
	h := NewSignalHandler(mockSignal, testLedgerCfg, zerolog.Nop())

	mockSignal.EXPECT().Process(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sig domain.Signal) (*domain.SettlementResult, error) {
			assert.Equal(t, domain.CurrencyCUP, sig.Currency)
			return &domain.SettlementResult{Outcome: domain.OutcomeSettled, Currency: sig.Currency}, nil
		})

	w, c := postJSON(t, dto.SMSSignalRequest{
		Proveedor:     "Transfermovil",
		Monto:         1200,
		Remitente:     "53111111",
		Receptor:      "9224********9012",
		TransaccionID: "BNC-004",
		Valid:         true,
	})
	h.IngestSMS(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIngestChain_ForeignAddressIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSignal := mocks.NewMockSignalService(ctrl)
	h := NewSignalHandler(mockSignal, testLedgerCfg, zerolog.Nop())

	w, c := postJSON(t, dto.ChainSignalRequest{
		TxHash: "0xdead",
		Amount: 50,
		From:   "0xSender",
		To:     "0xSomeoneElse",
	})
	h.IngestChain(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ignored", dataField(t, w)["outcome"])
}

func TestIngestChain_DepositAddressProcessed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSignal := mocks.NewMockSignalService(ctrl)
	h := NewSignalHandler(mockSignal, testLedgerCfg, zerolog.Nop())

	mockSignal.EXPECT().Process(gomock.Any(), domain.Signal{
		WalletAddress:    "0xSender",
		Amount:           100,
		Currency:         domain.CurrencyUSDT,
		ExternalID:       "0xbeef",
		SettlementMethod: "chain",
	}).Return(&domain.SettlementResult{
		Outcome:  domain.OutcomeSettled,
		Currency: domain.CurrencyUSDT,
		Credited: 105,
	}, nil)

	w, c := postJSON(t, dto.ChainSignalRequest{
		TxHash: "0xbeef",
		Amount: 100,
		From:   "0xSender",
		To:     "0xdepositaddress", // case-insensitive match
	})
	h.IngestChain(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "settled", dataField(t, w)["outcome"])
}

// --- Order Handler Tests ---

func TestCreateOrder_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrder := mocks.NewMockOrderService(ctrl)
	mockAccount := mocks.NewMockAccountService(ctrl)
	h := NewOrderHandler(mockOrder, mockAccount)

	account := domain.NewAccount("tg:42")
	order := &domain.Transaction{
		ID:              uuid.New(),
		AccountID:       account.ID,
		Type:            domain.TransactionTypeDeposit,
		Currency:        domain.CurrencyCUP,
		AmountRequested: 1000,
		EstimatedBonus:  100,
		Status:          domain.TransactionStatusPending,
	}

	mockAccount.EXPECT().Ensure(gomock.Any(), "tg:42").Return(account, nil)
	mockOrder.EXPECT().Create(gomock.Any(), ports.OrderRequest{
		AccountID: account.ID,
		Currency:  domain.CurrencyCUP,
		Amount:    1000,
	}).Return(order, nil)

	w, c := postJSON(t, dto.CreateOrderRequest{Currency: "cup", Amount: 1000})
	c.Set(middleware.CtxUserKey, "tg:42")
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := dataField(t, w)
	assert.Equal(t, "cup", data["currency"])
	assert.Equal(t, float64(100), data["estimated_bonus"])
}

func TestCreateOrder_UnknownCurrencyRejectedByBinding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrder := mocks.NewMockOrderService(ctrl)
	mockAccount := mocks.NewMockAccountService(ctrl)
	h := NewOrderHandler(mockOrder, mockAccount)

	w, c := postJSON(t, dto.CreateOrderRequest{Currency: "eur", Amount: 1000})
	c.Set(middleware.CtxUserKey, "tg:42")
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrder_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrder := mocks.NewMockOrderService(ctrl)
	mockAccount := mocks.NewMockAccountService(ctrl)
	h := NewOrderHandler(mockOrder, mockAccount)

	account := domain.NewAccount("tg:42")
	mockAccount.EXPECT().Ensure(gomock.Any(), "tg:42").Return(account, nil)
	mockOrder.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrOrderAlreadyPending())

	w, c := postJSON(t, dto.CreateOrderRequest{Currency: "cup", Amount: 1000})
	c.Set(middleware.CtxUserKey, "tg:42")
	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCancelOrder_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrder := mocks.NewMockOrderService(ctrl)
	mockAccount := mocks.NewMockAccountService(ctrl)
	h := NewOrderHandler(mockOrder, mockAccount)

	account := domain.NewAccount("tg:42")
	mockAccount.EXPECT().Get(gomock.Any(), "tg:42").Return(account, nil)
	mockOrder.EXPECT().Cancel(gomock.Any(), account.ID, domain.CurrencyCUP).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/", nil)
	c.Params = gin.Params{{Key: "currency", Value: "cup"}}
	c.Set(middleware.CtxUserKey, "tg:42")
	h.Cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Claim Handler Tests ---

func TestClaim_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccount := mocks.NewMockAccountService(ctrl)
	mockSignal := mocks.NewMockSignalService(ctrl)
	h := NewAccountHandler(mockAccount, mockSignal)

	account := domain.NewAccount("tg:42")
	mockAccount.EXPECT().Get(gomock.Any(), "tg:42").Return(account, nil)
	mockSignal.EXPECT().Claim(gomock.Any(), account.ID, "BNC-007").
		Return(&domain.SettlementResult{
			Outcome:  domain.OutcomeSettled,
			Currency: domain.CurrencyCUP,
			Credited: 2200,
		}, nil)

	w, c := postJSON(t, dto.ClaimRequest{ExternalID: "BNC-007"})
	c.Set(middleware.CtxUserKey, "tg:42")
	h.Claim(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "settled", dataField(t, w)["outcome"])
}

func TestClaim_NotClaimable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccount := mocks.NewMockAccountService(ctrl)
	mockSignal := mocks.NewMockSignalService(ctrl)
	h := NewAccountHandler(mockAccount, mockSignal)

	account := domain.NewAccount("tg:42")
	mockAccount.EXPECT().Get(gomock.Any(), "tg:42").Return(account, nil)
	mockSignal.EXPECT().Claim(gomock.Any(), account.ID, "BNC-007").
		Return(nil, apperror.ErrPaymentNotClaimable())

	w, c := postJSON(t, dto.ClaimRequest{ExternalID: "BNC-007"})
	c.Set(middleware.CtxUserKey, "tg:42")
	h.Claim(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Admin Handler Tests ---

func TestAdminAdjust_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdjust := mocks.NewMockAdjustmentService(ctrl)
	mockSignal := mocks.NewMockSignalService(ctrl)
	h := NewAdminHandler(mockAdjust, mockSignal)

	accountID := uuid.New()
	adminKey := "admin-1"
	mockAdjust.EXPECT().Adjust(gomock.Any(), ports.AdjustmentRequest{
		AccountID: accountID,
		Currency:  domain.CurrencyCUP,
		Amount:    500,
		Direction: ports.AdjustmentAdd,
		AdminKey:  adminKey,
	}).Return(&domain.Transaction{
		ID:        uuid.New(),
		AccountID: accountID,
		Type:      domain.TransactionTypeAdminAdjustment,
		Currency:  domain.CurrencyCUP,
		Amount:    500,
		Status:    domain.TransactionStatusCompleted,
		AdminKey:  &adminKey,
	}, nil)

	w, c := postJSON(t, dto.AdjustmentRequest{
		AccountID: accountID.String(),
		Currency:  "cup",
		Amount:    500,
		Direction: "add",
	})
	c.Set(middleware.CtxAdminSubject, "admin-1")
	h.Adjust(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(500), dataField(t, w)["amount"])
}

func TestAdminAdjust_BadAccountID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdjust := mocks.NewMockAdjustmentService(ctrl)
	mockSignal := mocks.NewMockSignalService(ctrl)
	h := NewAdminHandler(mockAdjust, mockSignal)

	w, c := postJSON(t, dto.AdjustmentRequest{
		AccountID: "not-a-uuid",
		Currency:  "cup",
		Amount:    500,
		Direction: "add",
	})
	h.Adjust(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminListUnmatched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdjust := mocks.NewMockAdjustmentService(ctrl)
	mockSignal := mocks.NewMockSignalService(ctrl)
	h := NewAdminHandler(mockAdjust, mockSignal)

	phone := "53111111"
	mockSignal.EXPECT().ListUnclaimed(gomock.Any(), 100).Return([]*domain.UnmatchedPayment{
		{ID: uuid.New(), Phone: &phone, Amount: 750, Currency: domain.CurrencyCUP, ExternalID: "BNC-010"},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	h.ListUnmatched(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items := resp["data"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "BNC-010", items[0].(map[string]interface{})["external_id"])
}

// --- Auth Handler Tests ---

func TestIssueToken_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockToken := mocks.NewMockTokenService(ctrl)
	h := NewAuthHandler(mockToken)

	mockToken.EXPECT().Generate("admin-1", "admin").
		DoAndReturn(func(subject, role string) (string, time.Time, error) {
			return "jwt-token-123", time.Now().Add(time.Hour), nil
		})

	w, c := postJSON(t, dto.TokenRequest{Subject: "admin-1", Role: "admin"})
	h.IssueToken(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jwt-token-123", dataField(t, w)["token"])
}

func TestIssueToken_BadRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockToken := mocks.NewMockTokenService(ctrl)
	h := NewAuthHandler(mockToken)

	w, c := postJSON(t, dto.TokenRequest{Subject: "admin-1", Role: "superuser"})
	h.IssueToken(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Health Handler Tests ---

type fakeChecker struct {
	name string
	err  error
}

func (f fakeChecker) Ping(context.Context) error { return f.err }
func (f fakeChecker) Name() string               { return f.name }

func TestHealthCheck_AllHealthy(t *testing.T) {
	router := gin.New()
	router.GET("/health", HealthCheck(fakeChecker{name: "postgresql"}, fakeChecker{name: "redis"}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	router := gin.New()
	router.GET("/health", HealthCheck(
		fakeChecker{name: "postgresql"},
		fakeChecker{name: "redis", err: assert.AnError},
	))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
}
