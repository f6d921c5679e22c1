package enums

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *Registry {
	return New(map[string][]Entry{
		"relationship": {
			{ID: 1, Label: "บิดา"},
			{ID: 2, Label: "มารดา"},
			{ID: 3, Label: "คู่สมรส"},
			{ID: 4, Label: "บุตร"},
		},
		"statement_type": {
			{ID: 1, Label: "ทรัพย์สิน"},
			{ID: 2, Label: "หนี้สิน"},
		},
	})
}

func TestResolveByID(t *testing.T) {
	r := testRegistry()

	// every known id resolves to itself
	for _, e := range r.Domain("relationship") {
		id, ok := r.Resolve("relationship", strconv.Itoa(e.ID))
		require.True(t, ok)
		assert.Equal(t, e.ID, id)
	}
}

func TestResolveByLabel(t *testing.T) {
	r := testRegistry()

	tests := []struct {
		name      string
		domain    string
		candidate string
		wantID    int
		wantOK    bool
	}{
		{"exact label", "relationship", "บิดา", 1, true},
		{"padded label", "relationship", "  มารดา ", 2, true},
		{"unknown label", "relationship", "เพื่อน", 0, false},
		{"unknown id", "relationship", "99", 0, false},
		{"empty", "relationship", "", 0, false},
		{"unknown domain", "asset_type", "1", 0, false},
		{"cross-domain label", "statement_type", "บิดา", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := r.Resolve(tt.domain, tt.candidate)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestResolveID(t *testing.T) {
	r := testRegistry()
	assert.True(t, r.ResolveID("relationship", 3))
	assert.False(t, r.ResolveID("relationship", 42))
	assert.False(t, r.ResolveID("nope", 1))
}

func TestAlternateLabelsShareID(t *testing.T) {
	r := New(map[string][]Entry{
		"asset_type": {
			{ID: 5, Label: "รถยนต์"},
			{ID: 5, Label: "รถยนต์นั่งส่วนบุคคล"},
		},
	})
	id, ok := r.Resolve("asset_type", "รถยนต์นั่งส่วนบุคคล")
	require.True(t, ok)
	assert.Equal(t, 5, id)
}

func TestPromptContext(t *testing.T) {
	r := testRegistry()
	ctx := r.PromptContext("relationship")
	assert.Contains(t, ctx, "relationship:")
	assert.Contains(t, ctx, "1 = บิดา")
	assert.Contains(t, ctx, "4 = บุตร")
	assert.NotContains(t, ctx, "statement_type")

	// duplicate ids from alternate labels render once
	r2 := New(map[string][]Entry{"d": {{ID: 7, Label: "a"}, {ID: 7, Label: "b"}}})
	assert.Equal(t, "d:\n  7 = a\n", r2.PromptContext("d"))
}
