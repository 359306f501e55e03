package alerts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Houeta/price-radar/internal/models"
	"github.com/Houeta/price-radar/internal/repository"
)

// StorageKey is the key the whole alert list is saved under.
const StorageKey = "pr_alerts"

// createdAtLayout renders dates the way en-IN short dates read, e.g. 15/10/2026.
const createdAtLayout = "2/1/2006"

// KeyValue is the durable collaborator the store persists into.
type KeyValue interface {
	Load(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key, value string) error
}

// Store owns the alert list. It is loaded once and then kept in memory;
// every mutation writes the complete list back.
type Store struct {
	log    *slog.Logger
	kv     KeyValue
	now    func() time.Time
	mu     sync.Mutex
	alerts []models.Alert
	lastID int64
}

// Option customises a Store.
type Option func(*Store)

// WithClock replaces the time source used for ids and creation dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore loads the persisted alerts. A missing or unreadable value yields
// an empty store; only a failing collaborator is reported as an error.
func NewStore(ctx context.Context, log *slog.Logger, kv KeyValue, opts ...Option) (*Store, error) {
	const opn = "alerts.NewStore"

	s := &Store{log: log, kv: kv, now: time.Now, alerts: []models.Alert{}}
	for _, opt := range opts {
		opt(s)
	}
	logger := log.With("op", opn)

	raw, err := kv.Load(ctx, StorageKey)
	switch {
	case errors.Is(err, repository.ErrKeyNotFound):
		logger.InfoContext(ctx, "No stored alerts, starting empty")
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("%s: failed to load alerts: %w", opn, err)
	}

	var stored []models.Alert
	if err = json.Unmarshal([]byte(raw), &stored); err != nil {
		logger.WarnContext(ctx, "Stored alerts are corrupted, starting empty", "error", err)
		return s, nil
	}

	if stored != nil {
		s.alerts = stored
	}
	for _, a := range s.alerts {
		s.lastID = max(s.lastID, a.ID)
	}
	logger.InfoContext(ctx, "Loaded alerts", "count", len(s.alerts))

	return s, nil
}

// List returns a copy of all alerts in creation order.
func (s *Store) List() []models.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.alerts)
}

// Create validates the input, appends a new alert and persists the list.
// Validation stops at the first failing field: email, product, then price.
func (s *Store) Create(ctx context.Context, email, product, targetPriceRaw string) (models.Alert, error) {
	const opn = "alerts.Create"

	email = strings.TrimSpace(email)
	product = strings.TrimSpace(product)

	target, err := validate(email, product, targetPriceRaw)
	if err != nil {
		return models.Alert{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	alert := models.Alert{
		ID:          s.nextID(now),
		Email:       email,
		Product:     product,
		TargetPrice: target,
		CreatedAt:   now.Format(createdAtLayout),
	}

	next := append(slices.Clone(s.alerts), alert)
	if err = s.persist(ctx, next); err != nil {
		return models.Alert{}, fmt.Errorf("%s: %w", opn, err)
	}
	s.alerts = next
	s.lastID = alert.ID

	s.log.InfoContext(ctx, "Alert created", "op", opn, "id", alert.ID, "product", alert.Product, "target", alert.TargetPrice)

	return alert, nil
}

// Delete removes every alert with the given id and persists the result,
// whether or not anything matched.
func (s *Store) Delete(ctx context.Context, id int64) error {
	const opn = "alerts.Delete"

	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(s.alerts), func(a models.Alert) bool { return a.ID == id })
	if err := s.persist(ctx, next); err != nil {
		return fmt.Errorf("%s: %w", opn, err)
	}

	s.log.InfoContext(ctx, "Alert deleted", "op", opn, "id", id, "removed", len(s.alerts)-len(next))
	s.alerts = next

	return nil
}

// nextID uses the creation time in milliseconds, bumped when two alerts
// land in the same millisecond so ids stay unique and increasing.
func (s *Store) nextID(now time.Time) int64 {
	return max(now.UnixMilli(), s.lastID+1)
}

func (s *Store) persist(ctx context.Context, list []models.Alert) error {
	payload, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode alerts: %w", err)
	}

	if err = s.kv.Save(ctx, StorageKey, string(payload)); err != nil {
		return fmt.Errorf("failed to save alerts: %w", err)
	}

	return nil
}

func validate(email, product, targetPriceRaw string) (float64, error) {
	if email == "" || !strings.Contains(email, "@") {
		return 0, &ValidationError{Field: FieldEmail, Message: "Enter a valid email."}
	}

	if product == "" {
		return 0, &ValidationError{Field: FieldProduct, Message: "Enter a product name."}
	}

	target, err := strconv.ParseFloat(strings.TrimSpace(targetPriceRaw), 64)
	if err != nil || math.IsNaN(target) || math.IsInf(target, 0) || target <= 0 {
		return 0, &ValidationError{Field: FieldTargetPrice, Message: "Enter a valid target price."}
	}

	return target, nil
}
