package nsns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddOrGetStable(t *testing.T) {
	tbl := NewTable()
	a := tbl.AddOrGet("urn:a")
	b := tbl.AddOrGet("urn:b")
	a2 := tbl.AddOrGet("urn:a")
	assert.Equal(t, a, a2)
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, tbl.Len())
}

func TestIndexOfRoundTrip(t *testing.T) {
	tbl := NewTable()
	uris := []string{"urn:one", "urn:two", "urn:three"}
	for _, u := range uris {
		i := tbl.AddOrGet(u)
		got, ok := tbl.IndexOf(u)
		assert.True(t, ok)
		assert.Equal(t, i, got)
		assert.Equal(t, u, tbl.URI(i))
	}
}

func TestIndexOfMissing(t *testing.T) {
	tbl := NewTable()
	_, ok := tbl.IndexOf("urn:nope")
	assert.False(t, ok)
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "ns0", Prefix(0))
	assert.Equal(t, "ns12", Prefix(12))
}
