package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePrefersExactMatch(t *testing.T) {
	cat := NewCatalog("Securities", "ClassCode", "SecCode", "ShortName")

	col, ok := cat.Resolve("SecShortName", "ShortName")
	assert.True(t, ok)
	assert.Equal(t, "ShortName", col)
}

func TestResolveFallsBackToCaseInsensitive(t *testing.T) {
	cat := NewCatalog("Firms", "firmid", "firmname")

	col, ok := cat.Resolve("FirmId")
	assert.True(t, ok)
	assert.Equal(t, "firmid", col)
}

func TestResolveExactBeatsCaseInsensitive(t *testing.T) {
	// The first candidate only matches case-insensitively while the
	// second matches exactly; the exact pass runs over the whole list
	// first, so the second candidate wins.
	cat := NewCatalog("Securities", "secshortname", "ShortName")

	col, ok := cat.Resolve("SecShortName", "ShortName")
	assert.True(t, ok)
	assert.Equal(t, "ShortName", col)
}

func TestResolveNoMatch(t *testing.T) {
	cat := NewCatalog("Firms", "FirmId")

	_, ok := cat.Resolve("TradeDate", "OrderNum")
	assert.False(t, ok)
}

func TestHas(t *testing.T) {
	cat := NewCatalog("Firms", "FirmId")

	assert.True(t, cat.Has("FirmId"))
	assert.False(t, cat.Has("firmid"))
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"FirmId"`, QuoteIdent("FirmId"))
	assert.Equal(t, `"we""ird"`, QuoteIdent(`we"ird`))
}
