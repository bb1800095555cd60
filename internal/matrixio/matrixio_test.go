package matrixio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Davincible/qrmeta/pkg/mask"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	in := "#.#\n\n.#.\r\n1 0\n"
	g, err := Parse(strings.NewReader(in), DefaultDark, DefaultLight)
	require.NoError(t, err)

	assert.Equal(t, mask.Grid{
		{true, false, true},
		{false, true, false},
		{true, false, false},
	}, g)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{name: "Empty", in: "\n\n", want: ErrEmpty},
		{name: "Ragged", in: "##\n#\n", want: ErrNotSquare},
		{name: "Too few rows", in: "###\n###\n", want: ErrNotSquare},
		{name: "Unknown character", in: "#?\n##\n", want: ErrUnknownRune},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.in), DefaultDark, DefaultLight)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_ReportsPosition(t *testing.T) {
	_, err := Parse(strings.NewReader("##\n#x\n"), DefaultDark, DefaultLight)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2, column 2")
}

func TestFormatRoundTrip(t *testing.T) {
	g := mask.NewGrid(4)
	g[0][3] = true
	g[2][1] = true

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, g, '#', '.'))
	assert.Equal(t, "...#\n....\n.#..\n....\n", buf.String())

	back, err := Parse(&buf, DefaultDark, DefaultLight)
	require.NoError(t, err)
	assert.Equal(t, g, back)
}
