package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/veripay/partner-gateway/internal/api/httpx"
	"github.com/veripay/partner-gateway/internal/auth"
	"github.com/veripay/partner-gateway/internal/config"
	"github.com/veripay/partner-gateway/internal/middleware"
	"github.com/veripay/partner-gateway/internal/partner"
)

// OpsHandler serves the operator surface: token issuance and a read-only
// view of the configured partners. Secrets never leave this handler.
type OpsHandler struct {
	TM    *auth.TokenManager
	Store *partner.Store
	Cfg   config.Config
}

func NewOpsHandler(tm *auth.TokenManager, store *partner.Store, cfg config.Config) *OpsHandler {
	return &OpsHandler{TM: tm, Store: store, Cfg: cfg}
}

type tokenReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResp struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

func (h *OpsHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req tokenReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request", nil)
		return
	}
	if req.Username != h.Cfg.OpsUser || !h.passwordOK(req.Password) {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid credentials", nil)
		return
	}
	token, exp, err := h.TM.Generate(req.Username)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "token generation failed", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tokenResp{
		AccessToken: token,
		ExpiresIn:   int64(time.Until(exp).Seconds()),
	})
}

func (h *OpsHandler) passwordOK(password string) bool {
	if h.Cfg.OpsPassHash != "" {
		return auth.VerifyPassword(password, h.Cfg.OpsPassHash) == nil
	}
	// dev fallback: plaintext compare against the configured password
	return password == h.Cfg.OpsPassword
}

type partnerView struct {
	PartnerKey string `json:"partnerKey"`
	PartnerNo  string `json:"partnerNo"`
}

func (h *OpsHandler) Partners(w http.ResponseWriter, r *http.Request) {
	if user, ok := middleware.OpsUser(r.Context()); ok {
		slog.Debug("partner list requested", "user", user)
	}
	keys := h.Store.Keys()
	out := make([]partnerView, 0, len(keys))
	for _, k := range keys {
		cred, _ := h.Store.Lookup(k)
		out = append(out, partnerView{PartnerKey: k, PartnerNo: cred.PartnerNo})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
