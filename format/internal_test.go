package format

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pairs [][2]string

func (p pairs) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, kv := range p {
			if !yield(kv[0], kv[1]) {
				return
			}
		}
	}
}

func TestAlignRow(t *testing.T) {
	t.Parallel()
	header := []string{"A", "B", "C"}
	row, err := alignRow(header, headerIndex(header), pairs{{"C", "3"}, {"A", "1"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "", "3"}, row)

	_, err = alignRow(header, headerIndex(header), pairs{{"D", "4"}})
	assert.ErrorIs(t, err, ErrFieldMismatch)
}

func TestGridUnion(t *testing.T) {
	t.Parallel()
	header, rows, err := grid(Table, []pairs{
		{{"A", "1"}, {"B", "2"}},
		{{"C", "3"}, {"A", "4"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, header)
	assert.Equal(t, [][]string{{"1", "2", ""}, {"4", "", "3"}}, rows)
}

func TestComputeWidthsWide(t *testing.T) {
	t.Parallel()
	widths := computeWidths([]string{"名前", "X"}, [][]string{{"a", "xyz"}}, 0)
	assert.Equal(t, []int{4, 3}, widths)
	assert.Equal(t, []int{3, 3}, computeWidths([]string{"A", "B"}, nil, 3))
}

func TestPadCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "名  ", padCell("名", 4))
	assert.Equal(t, "long", padCell("long", 2))
}
