package alerts_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Houeta/price-radar/internal/models"
	"github.com/Houeta/price-radar/internal/repository"
	"github.com/Houeta/price-radar/internal/services/alerts"
	"github.com/Houeta/price-radar/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 5, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newEmptyStore builds a store over a key-value mock holding nothing yet.
func newEmptyStore(t *testing.T) (*alerts.Store, *mocks.KeyValue) {
	t.Helper()

	kv := mocks.NewKeyValue(t)
	kv.On("Load", mock.Anything, alerts.StorageKey).Return("", repository.ErrKeyNotFound).Once()

	store, err := alerts.NewStore(t.Context(), newLogger(), kv, alerts.WithClock(fixedClock))
	require.NoError(t, err)

	return store, kv
}

func TestNewStore(t *testing.T) {
	ctx := t.Context()

	t.Run("loads persisted alerts", func(t *testing.T) {
		// Arrange
		kv := mocks.NewKeyValue(t)
		kv.On("Load", ctx, alerts.StorageKey).
			Return(`[{"id":1700000000000,"email":"a@b.com","product":"TV","targetPrice":20000,"createdAt":"14/11/2023"}]`, nil).
			Once()

		// Act
		store, err := alerts.NewStore(ctx, newLogger(), kv)

		// Assert
		require.NoError(t, err)
		require.Len(t, store.List(), 1)
		assert.Equal(t, "TV", store.List()[0].Product)
	})

	t.Run("corrupted value starts empty", func(t *testing.T) {
		kv := mocks.NewKeyValue(t)
		kv.On("Load", ctx, alerts.StorageKey).Return("{not json", nil).Once()

		store, err := alerts.NewStore(ctx, newLogger(), kv)

		require.NoError(t, err)
		assert.Empty(t, store.List())
	})

	t.Run("json null starts empty", func(t *testing.T) {
		kv := mocks.NewKeyValue(t)
		kv.On("Load", ctx, alerts.StorageKey).Return("null", nil).Once()

		store, err := alerts.NewStore(ctx, newLogger(), kv)

		require.NoError(t, err)
		assert.NotNil(t, store.List())
		assert.Empty(t, store.List())
	})

	t.Run("collaborator failure", func(t *testing.T) {
		kv := mocks.NewKeyValue(t)
		kv.On("Load", ctx, alerts.StorageKey).Return("", assert.AnError).Once()

		_, err := alerts.NewStore(ctx, newLogger(), kv)

		require.ErrorIs(t, err, assert.AnError)
		require.ErrorContains(t, err, "alerts.NewStore")
	})
}

func TestStore_Create_Validation(t *testing.T) {
	testCases := []struct {
		name    string
		email   string
		product string
		price   string
		field   string
	}{
		{name: "email without at sign", email: "bad-email", product: "Phone", price: "500", field: alerts.FieldEmail},
		{name: "empty email", email: "  ", product: "Phone", price: "500", field: alerts.FieldEmail},
		{name: "email checked before product", email: "bad", product: "", price: "-1", field: alerts.FieldEmail},
		{name: "empty product", email: "a@b.com", product: "", price: "500", field: alerts.FieldProduct},
		{name: "product checked before price", email: "a@b.com", product: " ", price: "x", field: alerts.FieldProduct},
		{name: "negative price", email: "a@b.com", product: "Phone", price: "-5", field: alerts.FieldTargetPrice},
		{name: "zero price", email: "a@b.com", product: "Phone", price: "0", field: alerts.FieldTargetPrice},
		{name: "non numeric price", email: "a@b.com", product: "Phone", price: "cheap", field: alerts.FieldTargetPrice},
		{name: "empty price", email: "a@b.com", product: "Phone", price: "", field: alerts.FieldTargetPrice},
		{name: "infinite price", email: "a@b.com", product: "Phone", price: "Inf", field: alerts.FieldTargetPrice},
		{name: "nan price", email: "a@b.com", product: "Phone", price: "NaN", field: alerts.FieldTargetPrice},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange: Save must never be reached.
			store, _ := newEmptyStore(t)

			// Act
			_, err := store.Create(t.Context(), tc.email, tc.product, tc.price)

			// Assert
			require.ErrorIs(t, err, alerts.ErrValidation)
			var vErr *alerts.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
			assert.NotEmpty(t, vErr.Message)
			assert.Empty(t, store.List())
		})
	}
}

func TestStore_CreateListDelete(t *testing.T) {
	ctx := t.Context()
	store, kv := newEmptyStore(t)

	var saved string
	kv.On("Save", ctx, alerts.StorageKey, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { saved = args.String(2) }).
		Return(nil).
		Twice()

	// Create
	alert, err := store.Create(ctx, " a@b.com ", "Phone X", "15000")
	require.NoError(t, err)
	assert.Equal(t, fixedNow.UnixMilli(), alert.ID)
	assert.Equal(t, "a@b.com", alert.Email)
	assert.InDelta(t, 15000.0, alert.TargetPrice, 0)
	assert.Equal(t, "5/10/2026", alert.CreatedAt)

	list := store.List()
	require.Len(t, list, 1)
	assert.Equal(t, alert, list[0])

	var persisted []models.Alert
	require.NoError(t, json.Unmarshal([]byte(saved), &persisted))
	assert.Equal(t, list, persisted)

	// Delete
	require.NoError(t, store.Delete(ctx, alert.ID))
	assert.Empty(t, store.List())
	assert.JSONEq(t, "[]", saved)
}

func TestStore_Create_UniqueIDs(t *testing.T) {
	ctx := t.Context()
	store, kv := newEmptyStore(t)
	kv.On("Save", ctx, alerts.StorageKey, mock.Anything).Return(nil).Times(3)

	var ids []int64
	for range 3 {
		a, err := store.Create(ctx, "a@b.com", "Phone", "100")
		require.NoError(t, err)
		ids = append(ids, a.ID)
	}

	assert.Equal(t, []int64{fixedNow.UnixMilli(), fixedNow.UnixMilli() + 1, fixedNow.UnixMilli() + 2}, ids)
}

func TestStore_Create_SaveFailure(t *testing.T) {
	ctx := t.Context()
	store, kv := newEmptyStore(t)
	kv.On("Save", ctx, alerts.StorageKey, mock.Anything).Return(assert.AnError).Once()

	_, err := store.Create(ctx, "a@b.com", "Phone", "100")

	require.ErrorIs(t, err, assert.AnError)
	require.ErrorContains(t, err, "alerts.Create")
	assert.Empty(t, store.List(), "memory must keep matching what was persisted")
}

func TestStore_Delete(t *testing.T) {
	ctx := t.Context()

	t.Run("persists even when nothing matched", func(t *testing.T) {
		store, kv := newEmptyStore(t)
		kv.On("Save", ctx, alerts.StorageKey, "[]").Return(nil).Once()

		require.NoError(t, store.Delete(ctx, 42))
	})

	t.Run("save failure keeps the alert", func(t *testing.T) {
		store, kv := newEmptyStore(t)
		kv.On("Save", ctx, alerts.StorageKey, mock.Anything).Return(nil).Once()
		a, err := store.Create(ctx, "a@b.com", "Phone", "100")
		require.NoError(t, err)

		kv.On("Save", ctx, alerts.StorageKey, mock.Anything).Return(assert.AnError).Once()

		err = store.Delete(ctx, a.ID)

		require.ErrorIs(t, err, assert.AnError)
		assert.Len(t, store.List(), 1)
	})
}
