package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/snw/walletd/internal/adapter/http/handler"
	apimiddleware "github.com/snw/walletd/internal/adapter/http/middleware"
	"github.com/snw/walletd/internal/domain"
	"github.com/snw/walletd/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_MetricsEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	body := `[{"user":"user1","status":"CREDITOR","amount":12.50}]`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/wallet/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"GET /metrics",
		"POST /api/v1/wallet/",
		"GET /api/v1/wallet/{user}",
		"POST /api/v1/records/",
		"GET /api/v1/records/",
		"GET /api/v1/records/{id}",
		"PUT /api/v1/records/{id}",
		"PATCH /api/v1/records/{id}",
		"DELETE /api/v1/records/{id}",
		"GET /api/v1/records/user/{user}",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	cfg := RouterConfig{
		HealthHandler: &handler.HealthHandler{},
		WalletHandler: handler.NewWalletHandler(&stubWalletService{}),
		RecordHandler: handler.NewRecordHandler(&stubRecordService{}),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubWalletService struct{}

func (stubWalletService) ReconcileBatch(ctx context.Context, inputs []usecase.BatchRecordInput) ([]*domain.Wallet, error) {
	return []*domain.Wallet{{User: "user1", Credit: decimal.Zero}}, nil
}

func (stubWalletService) GetWallet(ctx context.Context, user string) (*domain.Wallet, error) {
	return &domain.Wallet{User: user, Credit: decimal.Zero}, nil
}

func (stubWalletService) ListWallets(ctx context.Context, limit, offset int) ([]*domain.Wallet, error) {
	return []*domain.Wallet{}, nil
}

type stubRecordService struct{}

func (stubRecordService) CreateRecord(ctx context.Context, input usecase.CreateRecordInput) (*domain.Record, error) {
	return &domain.Record{ID: "rec"}, nil
}

func (stubRecordService) GetRecord(ctx context.Context, id string) (*domain.Record, error) {
	return &domain.Record{ID: id}, nil
}

func (stubRecordService) GetRecordsByUser(ctx context.Context, user string) ([]*domain.Record, error) {
	return []*domain.Record{}, nil
}

func (stubRecordService) ListRecords(ctx context.Context, limit, offset int) ([]*domain.Record, error) {
	return []*domain.Record{}, nil
}

func (stubRecordService) UpdateRecord(ctx context.Context, id string, input usecase.UpdateRecordInput) (*domain.Record, error) {
	return &domain.Record{ID: id}, nil
}

func (stubRecordService) PartialUpdateRecord(ctx context.Context, id string, changes map[string]any) (*domain.Record, error) {
	return &domain.Record{ID: id}, nil
}

func (stubRecordService) DeleteRecord(ctx context.Context, id string) error {
	return nil
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}
