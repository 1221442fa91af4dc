package matrix_test

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/born-ml/layerchain/internal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_Layout(t *testing.T) {
	m := mustFromSlice(t, 2, 3, 1, 2.5, -3, 0, 0.125, 1e-7)

	var buf bytes.Buffer
	require.NoError(t, m.Encode(&buf))
	assert.Equal(t, "2\t3\n1\t2.5\t-3\n0\t0.125\t1e-07\n", buf.String())
}

func TestEncode_TransposedView(t *testing.T) {
	m := mustFromSlice(t, 1, 2, 1, 2)

	var buf bytes.Buffer
	require.NoError(t, m.T().Encode(&buf))
	assert.Equal(t, "2\t1\n1\n2\n", buf.String())
}

func TestEncode_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&matrix.Matrix{}).Encode(&buf))
	assert.Equal(t, "0\t0\n", buf.String())

	got := matrix.Eye(2)
	require.NoError(t, got.Decode(&buf))
	assert.True(t, got.IsEmpty())
}

func TestDecode_RoundTrip(t *testing.T) {
	m := mustFromSlice(t, 3, 2, 0.1, -0.2, 3.14159, 1e10, -7, 0.333333)

	var buf bytes.Buffer
	require.NoError(t, m.Encode(&buf))

	var got matrix.Matrix
	require.NoError(t, got.Decode(&buf))
	assert.Equal(t, m.Size(), got.Size())
	assert.Equal(t, m.Data(), got.Data(), "shortest float formatting must round-trip exactly")
}

func TestDecode_ReplacesSharedHandle(t *testing.T) {
	orig := matrix.Eye(2)
	handle := orig.Clone()

	require.NoError(t, handle.Decode(strings.NewReader("1 3\n4 5 6\n")))
	assert.Equal(t, []float32{4, 5, 6}, handle.Data())
	assert.Equal(t, []float32{1, 0, 0, 1}, orig.Data())
	assert.True(t, orig.IsUnique())
}

func TestDecode_SequentialOnOneStream(t *testing.T) {
	a := mustFromSlice(t, 1, 2, 1, 2)
	b := mustFromSlice(t, 2, 1, 3, 4)

	var buf bytes.Buffer
	require.NoError(t, a.Encode(&buf))
	require.NoError(t, b.Encode(&buf))

	r := bufio.NewReader(&buf)
	var gotA, gotB matrix.Matrix
	require.NoError(t, gotA.Decode(r))
	require.NoError(t, gotB.Decode(r))

	assert.Equal(t, a.Data(), gotA.Data())
	assert.Equal(t, b.Size(), gotB.Size())
	assert.Equal(t, b.Data(), gotB.Data())
}

func TestDecode_PlainReader(t *testing.T) {
	// OneByteReader hides the rune-scanning methods of the underlying reader.
	r := iotest.OneByteReader(strings.NewReader("2\t2\n1\t-2\n3.5\t4\n"))

	m := &matrix.Matrix{}
	require.NoError(t, m.Decode(r))
	assert.Equal(t, matrix.Size{Rows: 2, Cols: 2}, m.Size())
	assert.Equal(t, []float32{1, -2, 3.5, 4}, m.Data())
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"negative rows", "-1\t2\n", matrix.ErrNegativeDimension},
		{"negative cols", "2\t-3\n", matrix.ErrNegativeDimension},
		{"product wraps to zero", "4294967296\t4294967296\n", matrix.ErrTooLarge},
		{"product too large", "2000000000000\t2000000\n", matrix.ErrTooLarge},
		{"empty input", "", nil},
		{"truncated", "2\t2\n1\t2\n3\n", nil},
		{"not a number", "1\t2\n1\tx\n", nil},
		{"bad header", "rows\tcols\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := matrix.Eye(2)
			err := m.Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, []float32{1, 0, 0, 1}, m.Data(), "failed decode must leave the matrix untouched")
		})
	}
}
