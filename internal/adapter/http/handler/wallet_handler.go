package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/snw/walletd/internal/adapter/http/dto"
	"github.com/snw/walletd/internal/domain"
	"github.com/snw/walletd/internal/infrastructure/metrics"
	"github.com/snw/walletd/internal/usecase"
)

// WalletService defines the behavior needed by WalletHandler.
type WalletService interface {
	ReconcileBatch(ctx context.Context, inputs []usecase.BatchRecordInput) ([]*domain.Wallet, error)
	GetWallet(ctx context.Context, user string) (*domain.Wallet, error)
	ListWallets(ctx context.Context, limit, offset int) ([]*domain.Wallet, error)
}

// WalletHandler handles wallet-related HTTP requests.
type WalletHandler struct {
	walletUC WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletUC WalletService) *WalletHandler {
	return &WalletHandler{walletUC: walletUC}
}

// ReconcileBatch applies a batch of records and returns the updated wallets.
func (h *WalletHandler) ReconcileBatch(w http.ResponseWriter, r *http.Request) {
	var req []dto.BatchRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	start := time.Now()

	wallets, err := h.walletUC.ReconcileBatch(r.Context(), dto.BatchToUseCaseInputs(req))
	if err != nil {
		metrics.ObserveBatchRejected(rejectionReason(err))
		writeDomainError(w, err, "failed to reconcile batch")

		return
	}

	metrics.ObserveBatchCommitted(len(req), time.Since(start))

	writeJSON(w, http.StatusCreated, dto.WalletsFromDomain(wallets))
}

// GetBalance returns the cached wallet of a user.
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	user := chi.URLParam(r, "user")
	if user == "" {
		writeError(w, http.StatusBadRequest, "missing user", "")
		return
	}

	wallet, err := h.walletUC.GetWallet(r.Context(), user)
	if err != nil {
		writeDomainError(w, err, "failed to get wallet")
		return
	}

	writeJSON(w, http.StatusOK, dto.WalletFromDomain(wallet))
}

// List lists wallets.
func (h *WalletHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	wallets, err := h.walletUC.ListWallets(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list wallets", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListWalletsResponse{
		Wallets: dto.WalletsFromDomain(wallets),
	})
}

func rejectionReason(err error) string {
	var boundaryErr *domain.BoundaryError

	switch {
	case errors.As(err, &boundaryErr):
		return "boundary_violation"
	case errors.Is(err, domain.ErrLockTimeout):
		return "lock_timeout"
	case errors.Is(err, domain.ErrRecordAmountExceeded),
		errors.Is(err, domain.ErrNegativeAmount),
		errors.Is(err, domain.ErrInvalidKind),
		errors.Is(err, domain.ErrMissingUser),
		errors.Is(err, domain.ErrEmptyBatch):
		return "invalid_entry"
	default:
		return "store_failure"
	}
}
