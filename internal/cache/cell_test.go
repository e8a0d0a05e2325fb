package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCellExpiry(t *testing.T) {
	created := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	cell := NewCell("payload", created)

	assert.False(t, cell.Expired(created), "fresh cell must be valid")
	assert.False(t, cell.Expired(created.AddDate(0, 0, 1)),
		"a one-day TTL cell created today is still valid tomorrow")
	assert.True(t, cell.Expired(created.AddDate(0, 0, 2)))
	assert.True(t, cell.Expired(created.AddDate(0, 1, 0)))
}

func TestCellCustomTTL(t *testing.T) {
	created := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	cell := NewCellWithTTL("payload", created, FoundFirstDayTTL)

	assert.False(t, cell.Expired(created.AddDate(0, 0, 999)))
	assert.True(t, cell.Expired(created.AddDate(0, 0, 1000)))
}
