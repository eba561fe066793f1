package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestActionable(t *testing.T) {
	assert.True(t, StatusPending.Actionable())
	assert.False(t, StatusApproved.Actionable())
	assert.False(t, StatusRejected.Actionable())
}

func TestSortAndFind(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	reqs := []FundRequest{
		{ID: "fr_1", CreatedAt: base},
		{ID: "fr_2", CreatedAt: base.Add(time.Minute)},
	}

	SortNewestFirst(reqs)
	assert.Equal(t, "fr_2", reqs[0].ID)

	got, ok := Find(reqs, "fr_1")
	assert.True(t, ok)
	assert.Equal(t, base, got.CreatedAt)

	_, ok = Find(reqs, "fr_9")
	assert.False(t, ok)
}
