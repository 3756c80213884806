package align

import (
	"testing"

	"github.com/aria-lang/bioflow-go/internal/poa/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainGraph(symbols ...string) *graph.Graph {
	g := graph.New()
	ids := make([]graph.NodeID, len(symbols))
	for i, s := range symbols {
		ids[i] = g.AddNode(s, nil)
	}
	for i := 0; i < len(ids)-1; i++ {
		g.AddOrUpdateEdge(ids[i], ids[i+1], "seed")
	}
	return g
}

func TestNewConfigValidation(t *testing.T) {
	_, err := NewConfig(0, -1, -2)
	require.Error(t, err)

	_, err = NewConfig(1, 1, -2)
	require.Error(t, err)

	_, err = NewConfig(1, -1, 1)
	require.Error(t, err)

	cfg, err := NewConfig(2, -1, -2)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Match)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1, cfg.Match)
	assert.Equal(t, -1, cfg.Mismatch)
	assert.Equal(t, -2, cfg.Gap)
}

func TestAlignRejectsEmptySequence(t *testing.T) {
	g := chainGraph("A")
	_, err := Align(nil, g, nil)
	require.Error(t, err)
}

func TestAlignPanicsOnEmptyGraph(t *testing.T) {
	g := graph.New()
	assert.Panics(t, func() {
		Align([]string{"A"}, g, nil)
	})
}

func TestAlignIdenticalSequenceIsAllMatches(t *testing.T) {
	g := chainGraph("T", "G", "X", "T")

	result, err := Align([]string{"T", "G", "X", "T"}, g, nil)
	require.NoError(t, err)

	for _, e := range result.Entries {
		assert.Equal(t, KindMatch, e.Kind)
	}
	assert.Len(t, result.Entries, 4)
}

func TestAlignPrefixExtensionInsertsLeadingGap(t *testing.T) {
	g := chainGraph("T", "G", "X", "T")

	result, err := Align([]string{"A", "T", "G", "X", "T"}, g, nil)
	require.NoError(t, err)

	require.Len(t, result.Entries, 5)
	assert.Equal(t, KindGraphGap, result.Entries[0].Kind)
	assert.Equal(t, 0, result.Entries[0].SeqPos)
	for _, e := range result.Entries[1:] {
		assert.Equal(t, KindMatch, e.Kind)
	}
}

func TestAlignSuffixTruncationLeavesTrailingGap(t *testing.T) {
	g := chainGraph("T", "G", "X", "T")

	result, err := Align([]string{"T", "G", "X"}, g, nil)
	require.NoError(t, err)

	var matches, seqGaps int
	for _, e := range result.Entries {
		switch e.Kind {
		case KindMatch:
			matches++
		case KindSeqGap:
			seqGaps++
		}
	}
	assert.Equal(t, 3, matches)
	assert.Equal(t, 1, seqGaps, "the trailing graph node T should be unmatched")
}

func TestAlignSingleSymbolSequence(t *testing.T) {
	g := chainGraph("A")

	result, err := Align([]string{"A"}, g, nil)
	require.NoError(t, err)

	require.Len(t, result.Entries, 1)
	assert.Equal(t, KindMatch, result.Entries[0].Kind)
}
