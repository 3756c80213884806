package poa

import (
	"testing"

	"github.com/aria-lang/bioflow-go/internal/poa/consensus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toks(s string) []string {
	out := make([]string, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = string(s[i])
	}
	return out
}

func rowsByLabel(rows []consensus.Row) map[string][]string {
	out := make(map[string][]string, len(rows))
	for _, r := range rows {
		out[r.Label] = r.Symbols
	}
	return out
}

func TestTwoIdenticalSequences(t *testing.T) {
	b, err := New("a", toks("TGXT"), nil)
	require.NoError(t, err)
	require.NoError(t, b.Add("b", toks("TGXT")))

	assert.Equal(t, 4, b.Graph().NodeCount())

	rows := b.Consensus("-")
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"T", "G", "X", "T"}, rows[0].Symbols)
	assert.Equal(t, []string{"T", "G", "X", "T"}, rows[1].Symbols)

	// Every edge on the shared chain should carry both labels.
	topo := b.Graph().NodesTopological()
	for i := 0; i < len(topo)-1; i++ {
		edge, ok := b.Graph().Edge(topo[i], topo[i+1])
		require.True(t, ok)
		assert.ElementsMatch(t, []string{"a", "b"}, edge.Labels)
	}
}

func TestPrefixExtension(t *testing.T) {
	b, err := New("a", toks("TGXT"), nil)
	require.NoError(t, err)
	require.NoError(t, b.Add("b", toks("ATGXT")))

	assert.Equal(t, 5, b.Graph().NodeCount())

	byLabel := rowsByLabel(b.Consensus("-"))
	assert.Equal(t, []string{"-", "T", "G", "X", "T"}, byLabel["a"])
	assert.Equal(t, []string{"A", "T", "G", "X", "T"}, byLabel["b"])
}

func TestSingleMismatchFormsAlignedClique(t *testing.T) {
	b, err := New("a", toks("MTGXT"), nil)
	require.NoError(t, err)
	require.NoError(t, b.Add("b", toks("ATGXT")))

	byLabel := rowsByLabel(b.Consensus("-"))
	assert.Equal(t, []string{"M", "T", "G", "X", "T"}, byLabel["a"])
	assert.Equal(t, []string{"A", "T", "G", "X", "T"}, byLabel["b"])
}

func TestSuffixTruncation(t *testing.T) {
	b, err := New("a", toks("TGXT"), nil)
	require.NoError(t, err)
	require.NoError(t, b.Add("b", toks("TGX")))

	byLabel := rowsByLabel(b.Consensus("-"))
	assert.Equal(t, []string{"T", "G", "X", "T"}, byLabel["a"])
	assert.Equal(t, []string{"T", "G", "X", "-"}, byLabel["b"])
}

func TestThreeWayMerge(t *testing.T) {
	b, err := New("a", toks("TGXT"), nil)
	require.NoError(t, err)
	require.NoError(t, b.Add("b", toks("ATGXT")))
	require.NoError(t, b.Add("c", toks("TGX")))

	assert.Equal(t, 5, b.Graph().NodeCount())

	byLabel := rowsByLabel(b.Consensus("-"))
	assert.Equal(t, []string{"-", "T", "G", "X", "T"}, byLabel["a"])
	assert.Equal(t, []string{"A", "T", "G", "X", "T"}, byLabel["b"])
	assert.Equal(t, []string{"-", "T", "G", "X", "-"}, byLabel["c"])
}

func TestIncorporatingSameSequenceTwiceReusesEveryNode(t *testing.T) {
	b, err := New("a", toks("ACGT"), nil)
	require.NoError(t, err)

	before := b.Graph().NodeCount()
	require.NoError(t, b.Add("b", toks("ACGT")))

	assert.Equal(t, before, b.Graph().NodeCount(), "no new nodes should be created for an identical sequence")
}

func TestDuplicateLabelRejected(t *testing.T) {
	b, err := New("a", toks("ACGT"), nil)
	require.NoError(t, err)

	err = b.Add("a", toks("ACGT"))
	require.Error(t, err)
}

func TestEmptySequenceRejected(t *testing.T) {
	_, err := New("a", nil, nil)
	require.Error(t, err)
}

func TestBuildFromRejectsEmptyRecordList(t *testing.T) {
	_, err := BuildFrom(nil, nil)
	require.Error(t, err)
	assert.IsType(t, &EmptyRecordsError{}, err)
}

func TestBuildFromSeedsAndFoldsRemainingRecords(t *testing.T) {
	b, err := BuildFrom([]Record{
		{Label: "a", Symbols: toks("TGXT")},
		{Label: "b", Symbols: toks("ATGXT")},
	}, nil)
	require.NoError(t, err)

	byLabel := rowsByLabel(b.Consensus("-"))
	assert.Equal(t, []string{"-", "T", "G", "X", "T"}, byLabel["a"])
	assert.Equal(t, []string{"A", "T", "G", "X", "T"}, byLabel["b"])
}

func TestDebugHookInvokedPerAlignment(t *testing.T) {
	b, err := New("a", toks("ACGT"), nil)
	require.NoError(t, err)

	calls := 0
	b.SetDebugHook(func(graphRow, matchRow, seqRow []string) {
		calls++
		assert.Equal(t, len(graphRow), len(matchRow))
		assert.Equal(t, len(graphRow), len(seqRow))
	})

	require.NoError(t, b.Add("b", toks("ACGT")))
	assert.Equal(t, 1, calls)
}
