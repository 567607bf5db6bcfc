package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/snw/walletd/internal/domain"
	"github.com/snw/walletd/internal/usecase"
)

// MockWalletRepository is a mock implementation of WalletRepository.
type MockWalletRepository struct {
	mu      sync.RWMutex
	wallets map[string]*domain.Wallet

	GetByUserFunc   func(ctx context.Context, user string) (*domain.Wallet, error)
	LockByUsersFunc func(ctx context.Context, tx usecase.Transaction, users []string) error
	UpsertFunc      func(ctx context.Context, tx usecase.Transaction, wallet *domain.Wallet) (*domain.Wallet, error)
	ListFunc        func(ctx context.Context, limit, offset int) ([]*domain.Wallet, error)

	LockedUsers [][]string
}

func NewMockWalletRepository() *MockWalletRepository {
	return &MockWalletRepository{
		wallets: make(map[string]*domain.Wallet),
	}
}

func (m *MockWalletRepository) GetByUser(ctx context.Context, user string) (*domain.Wallet, error) {
	if m.GetByUserFunc != nil {
		return m.GetByUserFunc(ctx, user)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if w, ok := m.wallets[user]; ok {
		return w, nil
	}
	return nil, domain.ErrWalletNotFound
}

func (m *MockWalletRepository) LockByUsers(ctx context.Context, tx usecase.Transaction, users []string) error {
	m.mu.Lock()
	m.LockedUsers = append(m.LockedUsers, append([]string(nil), users...))
	m.mu.Unlock()
	if m.LockByUsersFunc != nil {
		return m.LockByUsersFunc(ctx, tx, users)
	}
	return nil
}

func (m *MockWalletRepository) Upsert(ctx context.Context, tx usecase.Transaction, wallet *domain.Wallet) (*domain.Wallet, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, tx, wallet)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wallets[wallet.User] = wallet
	return wallet, nil
}

func (m *MockWalletRepository) List(ctx context.Context, limit, offset int) ([]*domain.Wallet, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var wallets []*domain.Wallet
	for _, w := range m.wallets {
		wallets = append(wallets, w)
	}
	return wallets, nil
}

// Wallet returns the stored wallet for a user, or nil.
func (m *MockWalletRepository) Wallet(user string) *domain.Wallet {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.wallets[user]
}

// MockRecordRepository is a mock implementation of RecordRepository.
type MockRecordRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.Record
	order   []string

	CreateFunc           func(ctx context.Context, record *domain.Record) error
	CreateBatchFunc      func(ctx context.Context, tx usecase.Transaction, records []*domain.Record) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Record, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Record, error)
	GetByUserFunc        func(ctx context.Context, user string) ([]*domain.Record, error)
	ListFunc             func(ctx context.Context, limit, offset int) ([]*domain.Record, error)
	UpdateFunc           func(ctx context.Context, tx usecase.Transaction, record *domain.Record) error
	DeleteFunc           func(ctx context.Context, tx usecase.Transaction, id string) error
	SumByUserFunc        func(ctx context.Context, tx usecase.Transaction) (map[string]decimal.Decimal, error)
}

func NewMockRecordRepository() *MockRecordRepository {
	return &MockRecordRepository{
		records: make(map[string]*domain.Record),
	}
}

func (m *MockRecordRepository) Create(ctx context.Context, record *domain.Record) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.ID] = record
	m.order = append(m.order, record.ID)
	return nil
}

func (m *MockRecordRepository) CreateBatch(ctx context.Context, tx usecase.Transaction, records []*domain.Record) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, tx, records)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, record := range records {
		m.records[record.ID] = record
		m.order = append(m.order, record.ID)
	}
	return nil
}

func (m *MockRecordRepository) GetByID(ctx context.Context, id string) (*domain.Record, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.records[id]; ok {
		return r, nil
	}
	return nil, domain.ErrRecordNotFound
}

func (m *MockRecordRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Record, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockRecordRepository) GetByUser(ctx context.Context, user string) ([]*domain.Record, error) {
	if m.GetByUserFunc != nil {
		return m.GetByUserFunc(ctx, user)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var records []*domain.Record
	for _, id := range m.order {
		if m.records[id].User == user {
			records = append(records, m.records[id])
		}
	}
	return records, nil
}

func (m *MockRecordRepository) List(ctx context.Context, limit, offset int) ([]*domain.Record, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var records []*domain.Record
	for _, id := range m.order {
		records = append(records, m.records[id])
	}
	return records, nil
}

func (m *MockRecordRepository) Update(ctx context.Context, tx usecase.Transaction, record *domain.Record) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.ID] = record
	return nil
}

func (m *MockRecordRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return nil
}

func (m *MockRecordRepository) SumByUser(ctx context.Context, tx usecase.Transaction) (map[string]decimal.Decimal, error) {
	if m.SumByUserFunc != nil {
		return m.SumByUserFunc(ctx, tx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sums := make(map[string]decimal.Decimal)
	for _, record := range m.records {
		sums[record.User] = sums[record.User].Add(record.SignedAmount())
	}
	return sums, nil
}

// Count returns the number of stored records.
func (m *MockRecordRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	t.Committed = true
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if !t.Committed {
		t.RolledBack = true
	}
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	Transactions []*MockTransaction
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	tx := &MockTransaction{}
	m.Transactions = append(m.Transactions, tx)
	return tx, nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string

	mu      sync.Mutex
	counter int
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("id-%04d", m.counter)
}

// MockEventPublisher is a mock implementation of EventPublisher.
type MockEventPublisher struct {
	PublishBatchCommittedFunc func(ctx context.Context, event domain.BatchCommitted) error

	mu     sync.Mutex
	Events []domain.BatchCommitted
}

func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

func (m *MockEventPublisher) PublishBatchCommitted(ctx context.Context, event domain.BatchCommitted) error {
	m.mu.Lock()
	m.Events = append(m.Events, event)
	m.mu.Unlock()
	if m.PublishBatchCommittedFunc != nil {
		return m.PublishBatchCommittedFunc(ctx, event)
	}
	return nil
}
