package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamevault/pensopay/internal/models"
)

func TestTransactionRepository_Append(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	_, order := seedCartAndOrder(t, database)
	repo := NewTransactionRepository(database)

	t.Run("appends an intent entry", func(t *testing.T) {
		entry := newLedgerEntry(order.ID, "pay_append_1", "pending", models.TransactionTypeIntent)
		entry.Meta = map[string]any{
			"captured":           false,
			"testmode":           true,
			"pensopay_reference": "txn_1",
		}

		err := repo.Append(context.Background(), entry)
		require.NoError(t, err)

		retrieved, err := repo.FindByID(context.Background(), entry.ID)
		require.NoError(t, err)

		assert.Equal(t, models.TransactionTypeIntent, retrieved.Type)
		assert.Equal(t, models.Driver, retrieved.Driver)
		assert.Equal(t, "pay_append_1", retrieved.Reference)
		assert.Equal(t, "pending", retrieved.Status)
		assert.True(t, retrieved.Success)
		assert.Nil(t, retrieved.ParentTransactionID)
		assert.NotNil(t, retrieved.Meta)
		assert.Equal(t, "txn_1", retrieved.Meta["pensopay_reference"])
	})

	t.Run("appends a child entry with parent link and captured_at", func(t *testing.T) {
		parent := newLedgerEntry(order.ID, "pay_append_2", "pending", models.TransactionTypeIntent)
		require.NoError(t, repo.Append(context.Background(), parent))

		capturedAt := time.Now()
		child := newLedgerEntry(order.ID, "pay_append_2", "captured", models.TransactionTypeCapture)
		child.ParentTransactionID = &parent.ID
		child.CapturedAt = &capturedAt

		require.NoError(t, repo.Append(context.Background(), child))

		retrieved, err := repo.FindByID(context.Background(), child.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved.ParentTransactionID)
		assert.Equal(t, parent.ID, *retrieved.ParentTransactionID)
		require.NotNil(t, retrieved.CapturedAt)
	})

	t.Run("rejects a duplicate reference and status pair", func(t *testing.T) {
		first := newLedgerEntry(order.ID, "pay_append_3", "authorized", models.TransactionTypeIntent)
		require.NoError(t, repo.Append(context.Background(), first))

		replay := newLedgerEntry(order.ID, "pay_append_3", "authorized", models.TransactionTypeIntent)
		err := repo.Append(context.Background(), replay)
		assert.ErrorIs(t, err, models.ErrDuplicateTransaction)
	})

	t.Run("allows the same reference with a different status", func(t *testing.T) {
		first := newLedgerEntry(order.ID, "pay_append_4", "pending", models.TransactionTypeIntent)
		require.NoError(t, repo.Append(context.Background(), first))

		second := newLedgerEntry(order.ID, "pay_append_4", "payment.authorized", models.TransactionTypeIntent)
		second.ParentTransactionID = &first.ID
		assert.NoError(t, repo.Append(context.Background(), second))
	})
}

func TestTransactionRepository_FindByID(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	_, order := seedCartAndOrder(t, database)
	repo := NewTransactionRepository(database)

	entry := newLedgerEntry(order.ID, "pay_find_1", "pending", models.TransactionTypeIntent)
	require.NoError(t, repo.Append(context.Background(), entry))

	t.Run("existing transaction", func(t *testing.T) {
		retrieved, err := repo.FindByID(context.Background(), entry.ID)
		require.NoError(t, err)
		assert.Equal(t, entry.ID, retrieved.ID)
	})

	t.Run("non-existent transaction", func(t *testing.T) {
		_, err := repo.FindByID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestTransactionRepository_FindLatestByReference(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	_, order := seedCartAndOrder(t, database)
	repo := NewTransactionRepository(database)

	first := newLedgerEntry(order.ID, "pay_latest_1", "pending", models.TransactionTypeIntent)
	first.CreatedAt = time.Now().Add(-time.Minute)
	require.NoError(t, repo.Append(context.Background(), first))

	second := newLedgerEntry(order.ID, "pay_latest_1", "payment.authorized", models.TransactionTypeIntent)
	second.ParentTransactionID = &first.ID
	require.NoError(t, repo.Append(context.Background(), second))

	t.Run("returns the newest entry for the reference", func(t *testing.T) {
		latest, err := repo.FindLatestByReference(context.Background(), "pay_latest_1")
		require.NoError(t, err)
		assert.Equal(t, second.ID, latest.ID)
	})

	t.Run("unknown reference", func(t *testing.T) {
		_, err := repo.FindLatestByReference(context.Background(), "pay_never_seen")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestTransactionRepository_ListByOrder(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateTables(t, database)

	_, order := seedCartAndOrder(t, database)
	repo := NewTransactionRepository(database)

	intent := newLedgerEntry(order.ID, "pay_list_1", "pending", models.TransactionTypeIntent)
	intent.CreatedAt = time.Now().Add(-2 * time.Minute)
	require.NoError(t, repo.Append(context.Background(), intent))

	capture := newLedgerEntry(order.ID, "pay_list_1", "captured", models.TransactionTypeCapture)
	capture.ParentTransactionID = &intent.ID
	capture.CreatedAt = time.Now().Add(-time.Minute)
	require.NoError(t, repo.Append(context.Background(), capture))

	t.Run("returns entries oldest first", func(t *testing.T) {
		txns, err := repo.ListByOrder(context.Background(), order.ID)
		require.NoError(t, err)
		require.Len(t, txns, 2)
		assert.Equal(t, intent.ID, txns[0].ID)
		assert.Equal(t, capture.ID, txns[1].ID)
	})

	t.Run("order without entries yields an empty list", func(t *testing.T) {
		txns, err := repo.ListByOrder(context.Background(), uuid.New())
		require.NoError(t, err)
		assert.Empty(t, txns)
	})
}
