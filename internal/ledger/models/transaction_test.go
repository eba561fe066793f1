package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefundable(t *testing.T) {
	assert.True(t, StatusSuccess.Refundable())
	assert.True(t, StatusPending.Refundable())
	assert.False(t, StatusRefund.Refundable())
	assert.False(t, StatusFailed.Refundable())
	assert.False(t, Status("UNKNOWN").Refundable())
}

func TestSortNewestFirst(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	txs := []Transaction{
		{ID: "old", CreatedAt: base},
		{ID: "tie-a", CreatedAt: base.Add(time.Hour)},
		{ID: "new", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "tie-b", CreatedAt: base.Add(time.Hour)},
	}

	SortNewestFirst(txs)

	ids := make([]string, len(txs))
	for i, tx := range txs {
		ids[i] = tx.ID
	}
	assert.Equal(t, []string{"new", "tie-a", "tie-b", "old"}, ids)
}
