package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/veripay/partner-gateway/internal/api"
	"github.com/veripay/partner-gateway/internal/auth"
	"github.com/veripay/partner-gateway/internal/config"
	"github.com/veripay/partner-gateway/internal/models"
	"github.com/veripay/partner-gateway/internal/partner"
	"github.com/veripay/partner-gateway/internal/pipeline"
	"github.com/veripay/partner-gateway/internal/services"
	"github.com/veripay/partner-gateway/internal/worker"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := config.Config{
		Env:         "test",
		JWTSecret:   "test-secret",
		JWTIssuer:   "partner-gateway",
		OpsUser:     "ops",
		OpsPassword: "changeme",
		RateRPS:     0, // disabled in tests
	}
	store := partner.Demo()
	wp := worker.NewPool(1)
	t.Cleanup(wp.Stop)
	svc := services.NewTransactionService(pipeline.New(store, time.Now), nil, wp)
	tm := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, time.Hour)
	return api.NewRouter(cfg, svc, store, tm)
}

// signedBody builds a submission signed the way a real partner would.
func signedBody(t *testing.T, mutate func(*models.SubmitTransactionRequest)) []byte {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Second)
	req := models.SubmitTransactionRequest{
		PartnerKey:      "FAKEGOOGLE",
		PartnerRefNo:    "REF-100",
		PartnerPassword: "RkFLRVBBU1NXT1JEMTIzNA==",
		TotalAmount:     25000,
		Timestamp:       now.Format(time.RFC3339),
	}
	req.Sig = pipeline.Sign(now, req.PartnerKey, req.PartnerRefNo, req.TotalAmount, req.PartnerPassword)
	if mutate != nil {
		mutate(&req)
	}
	b, err := json.Marshal(req)
	require.NoError(t, err)
	return b
}

func postSubmit(t *testing.T, r http.Handler, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/submittrxmessage", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitAccepted(t *testing.T) {
	r := newTestRouter(t)
	w := postSubmit(t, r, signedBody(t, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Result)
	require.NotNil(t, resp.TotalAmount)
	require.Equal(t, int64(25000), *resp.TotalAmount)
	require.NotNil(t, resp.TotalDiscount)
	require.Equal(t, int64(1250), *resp.TotalDiscount)
	require.NotNil(t, resp.FinalAmount)
	require.Equal(t, int64(23750), *resp.FinalAmount)
	require.Empty(t, resp.ResultMessage)

	// no message key on success, absent not null
	require.NotContains(t, w.Body.String(), "resultMessage")
	require.NotContains(t, w.Body.String(), "null")
}

func TestSubmitTamperedAmount(t *testing.T) {
	r := newTestRouter(t)
	w := postSubmit(t, r, signedBody(t, func(req *models.SubmitTransactionRequest) {
		req.TotalAmount = 26000 // signature no longer matches
	}))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 0, resp.Result)
	require.Equal(t, "Access Denied!", resp.ResultMessage)

	// amounts omitted on rejection
	require.NotContains(t, w.Body.String(), "totalAmount")
	require.NotContains(t, w.Body.String(), "finalAmount")
}

func TestSubmitWrongPassword(t *testing.T) {
	r := newTestRouter(t)
	w := postSubmit(t, r, signedBody(t, func(req *models.SubmitTransactionRequest) {
		req.PartnerPassword = "RkFLRVBBU1NXT1JENDU3OA==" // another partner's secret
	}))
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Access Denied!")
}

func TestSubmitMalformedCredentialIsGenericDenial(t *testing.T) {
	r := newTestRouter(t)
	w := postSubmit(t, r, signedBody(t, func(req *models.SubmitTransactionRequest) {
		req.PartnerPassword = "???"
	}))
	// distinct reason internally, generic denial on the wire
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Access Denied!")
	require.NotContains(t, w.Body.String(), "Base64")
}

func TestSubmitExpiredTimestamp(t *testing.T) {
	r := newTestRouter(t)
	w := postSubmit(t, r, signedBody(t, func(req *models.SubmitTransactionRequest) {
		stale := time.Now().UTC().Add(-10 * time.Minute).Truncate(time.Second)
		req.Timestamp = stale.Format(time.RFC3339)
		req.Sig = pipeline.Sign(stale, req.PartnerKey, req.PartnerRefNo, req.TotalAmount, req.PartnerPassword)
	}))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Expired.")
}

func TestSubmitFieldValidation(t *testing.T) {
	r := newTestRouter(t)
	w := postSubmit(t, r, signedBody(t, func(req *models.SubmitTransactionRequest) {
		req.PartnerRefNo = ""
		req.TotalAmount = 0
	}))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 0, resp.Result)
	require.Contains(t, resp.ResultMessage, "partnerRefNo: required")
	require.Contains(t, resp.ResultMessage, "totalAmount: must be >= 1")
	require.Contains(t, resp.ResultMessage, "; ")
}

func TestSubmitItemQtyOutOfContractRange(t *testing.T) {
	r := newTestRouter(t)
	w := postSubmit(t, r, signedBody(t, func(req *models.SubmitTransactionRequest) {
		req.Items = []models.ItemDetail{
			{PartnerItemRef: "ITM-1", Name: "Bulk", Qty: 6, UnitPrice: 100},
		}
	}))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "items.qty: must be between 1 and 5")
}

func TestSubmitBadBody(t *testing.T) {
	r := newTestRouter(t)
	w := postSubmit(t, r, []byte("{not json"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid request body.")
}

func TestPing(t *testing.T) {
	r := newTestRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Result)
	require.True(t, strings.HasPrefix(resp.ResultMessage, "SERVER TIME NOW: "))
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ok", w.Body.String())
}

func TestOpsFlow(t *testing.T) {
	r := newTestRouter(t)

	// partners endpoint requires a token
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ops/partners", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// bad credentials
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/ops/token",
		strings.NewReader(`{"username":"ops","password":"wrong"}`)))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// issue a token
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/ops/token",
		strings.NewReader(`{"username":"ops","password":"changeme"}`)))
	require.Equal(t, http.StatusOK, w.Code)

	var tok struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tok))
	require.NotEmpty(t, tok.AccessToken)

	// list partners with the token; secrets must not appear
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ops/partners", nil)
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var partners []struct {
		PartnerKey string `json:"partnerKey"`
		PartnerNo  string `json:"partnerNo"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &partners))
	require.Len(t, partners, 2)
	require.Equal(t, "FAKEGOOGLE", partners[0].PartnerKey)
	require.NotContains(t, w.Body.String(), "FAKEPASSWORD")
}
