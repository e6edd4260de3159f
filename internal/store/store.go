// Package store implements the per-user invoice state container. All state
// lives in memory; every change is mirrored to a durable Storage backend
// under a single key, the way the original browser profile kept it.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"invoicekeeper/internal/logger"
	"invoicekeeper/internal/model"
)

// snapshot is the persisted payload layout. The current user id is
// deliberately excluded: it is re-established each session by the identity
// collaborator.
type snapshot struct {
	Invoices []model.Invoice `json:"invoices"`
	Filters  model.FilterSet `json:"filters"`
}

// Store holds every user's invoices as one flat sequence plus the active
// filter set. Operations that require a signed-in user scope themselves by
// the invoice UserID; rows of other users are never touched.
//
// The filter set is persisted unscoped, shared by every user of the same
// storage, matching the original behavior.
type Store struct {
	mu            sync.RWMutex
	invoices      []model.Invoice
	filters       model.FilterSet
	currentUserID string

	storage model.Storage
	logger  *logger.Logger
}

// New creates a Store hydrated from storage. A missing snapshot yields an
// empty store; a malformed one is surfaced as an error rather than silently
// discarded.
func New(ctx context.Context, storage model.Storage, logger *logger.Logger) (*Store, error) {
	s := &Store{
		filters: model.DefaultFilters(),
		storage: storage,
		logger:  logger,
	}

	data, err := storage.Load(ctx, model.StorageKey)
	if errors.Is(err, model.ErrNotFound) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	s.invoices = snap.Invoices
	if len(snap.Filters) > 0 {
		s.filters = snap.Filters
	}

	return s, nil
}

// persist mirrors the full state to storage. The mirror is a side channel:
// a failed write is logged and the operation that triggered it still
// succeeds.
func (s *Store) persist(ctx context.Context) {
	snap := snapshot{Invoices: s.invoices, Filters: s.filters}
	data, err := json.Marshal(snap)
	if err != nil {
		s.logger.Error("failed to encode snapshot", "error", err)
		return
	}
	if err := s.storage.Save(ctx, model.StorageKey, data); err != nil {
		s.logger.Error("failed to persist snapshot", "error", err)
	}
}

// CurrentUser returns the signed-in user id, or "" while anonymous.
func (s *Store) CurrentUser() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUserID
}

// SetCurrentUser makes id the signed-in user without touching filters.
func (s *Store) SetCurrentUser(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUserID = id
	s.logger.Info("current user set", "user_id", id)
}

// SwitchUser makes id the signed-in user and resets filters to the
// catch-all set. Switching to the already-current user is a no-op.
func (s *Store) SwitchUser(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == s.currentUserID {
		s.logger.Debug("user already current", "user_id", id)
		return
	}
	s.currentUserID = id
	s.filters = model.DefaultFilters()
	s.persist(ctx)
	s.logger.Info("switched user", "user_id", id)
}

// ClearCurrentUser returns the store to the anonymous state and resets
// filters to the catch-all set.
func (s *Store) ClearCurrentUser(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUserID = ""
	s.filters = model.DefaultFilters()
	s.persist(ctx)
	s.logger.Info("cleared current user")
}

// InitializeUserInvoices is advisory: it only branches logging between a
// new and a returning user and performs no mutation.
func (s *Store) InitializeUserInvoices(id string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := s.countForUser(id)
	if count == 0 {
		s.logger.Info("new user, no invoices yet", "user_id", id)
		return
	}
	s.logger.Info("returning user", "user_id", id, "invoice_count", count)
}

// GetUserInvoices returns the current user's invoices in insertion order.
// While anonymous it returns an empty list; that is a defined result, not a
// failure.
func (s *Store) GetUserInvoices() []model.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUserID == "" {
		return []model.Invoice{}
	}
	out := make([]model.Invoice, 0)
	for _, inv := range s.invoices {
		if inv.UserID == s.currentUserID {
			out = append(out, inv)
		}
	}
	return out
}

// GetVisibleInvoices returns the current user's invoices narrowed by the
// active filter set, the derived view every consumer renders.
func (s *Store) GetVisibleInvoices() []model.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Invoice, 0)
	if s.currentUserID == "" {
		return out
	}
	for _, inv := range s.invoices {
		if inv.UserID == s.currentUserID && s.filters.Matches(inv.Status) {
			out = append(out, inv)
		}
	}
	return out
}

// AddInvoice appends a new invoice owned by the current user. The caller's
// UserID is ignored and totals are recomputed from the raw items. Duplicate
// ids across different users are permitted; ids are only unique within one
// user's set by convention.
func (s *Store) AddInvoice(ctx context.Context, inv model.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUserID == "" {
		s.logger.Error("cannot add invoice without current user", "invoice_id", inv.ID)
		return model.ErrNoCurrentUser
	}

	inv.UserID = s.currentUserID
	inv.RecalculateTotals()
	s.invoices = append(s.invoices, inv)
	s.persist(ctx)
	s.logger.Info("invoice added", "invoice_id", inv.ID, "user_id", inv.UserID)
	return nil
}

// UpdateInvoice replaces the first invoice matching both the id and the
// current user. Totals are recomputed from the raw items. Rows belonging to
// other users are left untouched even when the id matches.
func (s *Store) UpdateInvoice(ctx context.Context, inv model.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUserID == "" {
		s.logger.Error("cannot update invoice without current user", "invoice_id", inv.ID)
		return model.ErrNoCurrentUser
	}

	for i := range s.invoices {
		if s.invoices[i].ID == inv.ID && s.invoices[i].UserID == s.currentUserID {
			inv.UserID = s.currentUserID
			inv.RecalculateTotals()
			s.invoices[i] = inv
			s.persist(ctx)
			s.logger.Info("invoice updated", "invoice_id", inv.ID, "user_id", inv.UserID)
			return nil
		}
	}
	return model.ErrNotFound
}

// DeleteInvoice removes every invoice matching the id under the current
// user.
func (s *Store) DeleteInvoice(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUserID == "" {
		s.logger.Error("cannot delete invoice without current user", "invoice_id", id)
		return model.ErrNoCurrentUser
	}

	kept := s.invoices[:0:0]
	removed := 0
	for _, inv := range s.invoices {
		if inv.ID == id && inv.UserID == s.currentUserID {
			removed++
			continue
		}
		kept = append(kept, inv)
	}
	if removed == 0 {
		return model.ErrNotFound
	}
	s.invoices = kept
	s.persist(ctx)
	s.logger.Info("invoice deleted", "invoice_id", id, "user_id", s.currentUserID, "removed", removed)
	return nil
}

// TogglePaid flips the payment status of the matching invoice under the
// current user: Paid becomes Pending, anything else becomes Paid.
func (s *Store) TogglePaid(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUserID == "" {
		s.logger.Error("cannot toggle payment without current user", "invoice_id", id)
		return model.ErrNoCurrentUser
	}

	for i := range s.invoices {
		if s.invoices[i].ID != id || s.invoices[i].UserID != s.currentUserID {
			continue
		}
		if s.invoices[i].Status == model.StatusPaid {
			s.invoices[i].Status = model.StatusPending
		} else {
			s.invoices[i].Status = model.StatusPaid
		}
		s.persist(ctx)
		s.logger.Info("invoice payment toggled", "invoice_id", id, "status", s.invoices[i].Status)
		return nil
	}
	return model.ErrNotFound
}

// GetFilters returns a copy of the active filter set.
func (s *Store) GetFilters() model.FilterSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters.Clone()
}

// SetFilters replaces the filter set unconditionally; labels are not
// validated against the status vocabulary. An empty set falls back to the
// catch-all.
func (s *Store) SetFilters(ctx context.Context, filters model.FilterSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(filters) == 0 {
		filters = model.DefaultFilters()
	}
	s.filters = filters.Clone()
	s.persist(ctx)
}

// ToggleFilter flips one status label in the filter set.
func (s *Store) ToggleFilter(ctx context.Context, status model.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = s.filters.Toggle(status)
	s.persist(ctx)
}

// GetAllUsers returns every user id appearing in the store, de-duplicated
// in first-seen order, regardless of the current user.
func (s *Store) GetAllUsers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]struct{}, len(s.invoices))
	users := make([]string, 0)
	for _, inv := range s.invoices {
		if _, ok := seen[inv.UserID]; ok {
			continue
		}
		seen[inv.UserID] = struct{}{}
		users = append(users, inv.UserID)
	}
	return users
}

// GetUserInvoiceCount returns how many invoices belong to the given user.
func (s *Store) GetUserInvoiceCount(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countForUser(userID)
}

func (s *Store) countForUser(userID string) int {
	count := 0
	for _, inv := range s.invoices {
		if inv.UserID == userID {
			count++
		}
	}
	return count
}
