package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NormalizeLimit(0))
	assert.Equal(t, DefaultLimit, NormalizeLimit(-3))
	assert.Equal(t, 10, NormalizeLimit(10))
	assert.Equal(t, MaxLimit, NormalizeLimit(MaxLimit+1))
}

func TestCursorRoundTrip(t *testing.T) {
	offset, err := ParseCursor(EncodeCursor(42))
	require.NoError(t, err)
	assert.Equal(t, 42, offset)

	offset, err = ParseCursor("")
	require.NoError(t, err)
	assert.Zero(t, offset)
}

func TestParseCursorRejectsGarbage(t *testing.T) {
	_, err := ParseCursor("!!!")
	assert.Error(t, err)

	_, err = ParseCursor("Zm9vYmFy") // "foobar" without the offset prefix
	assert.Error(t, err)
}

func TestWindow(t *testing.T) {
	page, err := Window(Params{Limit: 3}, 8)
	require.NoError(t, err)
	assert.Equal(t, 0, page.Offset)
	assert.Equal(t, 3, page.End())
	require.NotEmpty(t, page.NextCursor)

	next, err := Window(Params{Limit: 3, Cursor: page.NextCursor}, 8)
	require.NoError(t, err)
	assert.Equal(t, 3, next.Offset)

	last, err := Window(Params{Limit: 3, Cursor: EncodeCursor(6)}, 8)
	require.NoError(t, err)
	assert.Equal(t, 8, last.End())
	assert.Empty(t, last.NextCursor)

	past, err := Window(Params{Limit: 3, Cursor: EncodeCursor(50)}, 8)
	require.NoError(t, err)
	assert.Equal(t, 8, past.Offset)
	assert.Equal(t, 8, past.End())
}
