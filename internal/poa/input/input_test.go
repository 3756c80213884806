package input

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDelimitedCSV(t *testing.T) {
	records, err := ParseDelimited(strings.NewReader("a,T,G,X,T\nb,A,T,G,X,T\n"), ',')
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].Label)
	assert.Equal(t, []string{"T", "G", "X", "T"}, records[0].Symbols)
	assert.Equal(t, "b", records[1].Label)
	assert.Equal(t, []string{"A", "T", "G", "X", "T"}, records[1].Symbols)
}

func TestParseDelimitedTSV(t *testing.T) {
	records, err := ParseDelimited(strings.NewReader("a\tT\tG\n"), '\t')
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"T", "G"}, records[0].Symbols)
}

func TestParseDelimitedRejectsDuplicateLabel(t *testing.T) {
	_, err := ParseDelimited(strings.NewReader("a,T,G\na,A,T\n"), ',')
	require.Error(t, err)
	assert.IsType(t, &DuplicateLabelError{}, err)
}

func TestParseDelimitedSkipsRowsWithNoSymbols(t *testing.T) {
	records, err := ParseDelimited(strings.NewReader("a\nb,T,G\n"), ',')
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "b", records[0].Label)
}

func TestParseDelimitedRejectsEmptyInput(t *testing.T) {
	_, err := ParseDelimited(strings.NewReader(""), ',')
	require.Error(t, err)
	assert.IsType(t, &EmptyRecordsError{}, err)
}

func TestParseFASTA(t *testing.T) {
	fasta := ">seq1\nATGC\n>seq2 description\nATGA\n"
	records, err := ParseFASTA(strings.NewReader(fasta))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "seq1", records[0].Label)
	assert.Equal(t, []string{"A", "T", "G", "C"}, records[0].Symbols)
	assert.Equal(t, "seq2", records[1].Label)
}
