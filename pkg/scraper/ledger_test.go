package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedger(t *testing.T) {
	ledger := NewLedger()
	assert.Equal(t, 0, ledger.Len())
	assert.False(t, ledger.Has("https://example.test/a.jpg"))

	ledger.Add("https://example.test/a.jpg")
	ledger.Add("https://example.test/a.jpg")

	assert.True(t, ledger.Has("https://example.test/a.jpg"))
	assert.False(t, ledger.Has("https://example.test/a.jpg?v=2"))
	assert.Equal(t, 1, ledger.Len())
}
