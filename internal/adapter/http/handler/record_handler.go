package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/snw/walletd/internal/adapter/http/dto"
	"github.com/snw/walletd/internal/domain"
	"github.com/snw/walletd/internal/usecase"
)

// RecordService defines the behavior needed by RecordHandler.
type RecordService interface {
	CreateRecord(ctx context.Context, input usecase.CreateRecordInput) (*domain.Record, error)
	GetRecord(ctx context.Context, id string) (*domain.Record, error)
	GetRecordsByUser(ctx context.Context, user string) ([]*domain.Record, error)
	ListRecords(ctx context.Context, limit, offset int) ([]*domain.Record, error)
	UpdateRecord(ctx context.Context, id string, input usecase.UpdateRecordInput) (*domain.Record, error)
	PartialUpdateRecord(ctx context.Context, id string, changes map[string]any) (*domain.Record, error)
	DeleteRecord(ctx context.Context, id string) error
}

// RecordHandler handles record-related HTTP requests.
type RecordHandler struct {
	recordUC RecordService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(recordUC RecordService) *RecordHandler {
	return &RecordHandler{recordUC: recordUC}
}

// Create creates a new record.
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	record, err := h.recordUC.CreateRecord(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, err, "failed to create record")
		return
	}

	writeJSON(w, http.StatusCreated, dto.RecordFromDomain(record))
}

// Get retrieves a record by ID.
func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing record ID", "")
		return
	}

	record, err := h.recordUC.GetRecord(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "failed to get record")
		return
	}

	writeJSON(w, http.StatusOK, dto.RecordFromDomain(record))
}

// GetByUser lists all records of a user.
func (h *RecordHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	user := chi.URLParam(r, "user")
	if user == "" {
		writeError(w, http.StatusBadRequest, "missing user", "")
		return
	}

	records, err := h.recordUC.GetRecordsByUser(r.Context(), user)
	if err != nil {
		writeDomainError(w, err, "failed to list records")
		return
	}

	writeJSON(w, http.StatusOK, dto.RecordsFromDomain(records))
}

// List lists records.
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	records, err := h.recordUC.ListRecords(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list records", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListRecordsResponse{
		Records: dto.RecordsFromDomain(records),
	})
}

// Update replaces a record's mutable fields.
func (h *RecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing record ID", "")
		return
	}

	var req dto.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	record, err := h.recordUC.UpdateRecord(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, err, "failed to update record")
		return
	}

	writeJSON(w, http.StatusOK, dto.RecordFromDomain(record))
}

// PartialUpdate applies a field map to a record.
func (h *RecordHandler) PartialUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing record ID", "")
		return
	}

	var changes map[string]any
	if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	record, err := h.recordUC.PartialUpdateRecord(r.Context(), id, changes)
	if err != nil {
		writeDomainError(w, err, "failed to patch record")
		return
	}

	writeJSON(w, http.StatusOK, dto.RecordFromDomain(record))
}

// Delete deletes a record.
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing record ID", "")
		return
	}

	if err := h.recordUC.DeleteRecord(r.Context(), id); err != nil {
		writeDomainError(w, err, "failed to delete record")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
