package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttributes(t *testing.T) {
	s, err := Parse("1;3;4;7;9")
	require.NoError(t, err)
	assert.Equal(t, Style{Bold: true, Italic: true, Underline: true, Inverse: true, Strikethrough: true}, s)

	s, err = Parse("1;2;22;4;24")
	require.NoError(t, err)
	assert.True(t, s.IsDefault())

	s, err = Parse("1;0;3")
	require.NoError(t, err)
	assert.Equal(t, Style{Italic: true}, s)
}

func TestParseEmptyIsDefault(t *testing.T) {
	s, err := Parse("  ")
	require.NoError(t, err)
	assert.True(t, s.IsDefault())
}

func TestParseColors(t *testing.T) {
	cases := map[string]Style{
		"31":                 {ForegroundColor: Palette(1)},
		"44":                 {BackgroundColor: Palette(4)},
		"91;102":             {ForegroundColor: Palette(9), BackgroundColor: Palette(10)},
		"38;5;196":           {ForegroundColor: Palette(196)},
		"48;2;10;20;30":      {BackgroundColor: Direct(10, 20, 30)},
		"38:5:17":            {ForegroundColor: Palette(17)},
		"38:2:1:2:3":         {ForegroundColor: Direct(1, 2, 3)},
		"48:2::4:5:6":        {BackgroundColor: Direct(4, 5, 6)},
		"38;2;999;0;0":       {ForegroundColor: Direct(255, 0, 0)},
		"31;39":              {},
		"4:3":                {Underline: true},
		"4;4:0":              {},
		"1;38;2;255;128;0;7": {Bold: true, Inverse: true, ForegroundColor: Direct(255, 128, 0)},
	}
	for params, want := range cases {
		t.Run(params, func(t *testing.T) {
			got, err := Parse(params)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseSequenceRoundTrip(t *testing.T) {
	for _, s := range []Style{
		{Bold: true, ForegroundColor: Palette(2)},
		{Faint: true, Underline: true, BackgroundColor: Palette(200)},
		{Inverse: true, ForegroundColor: Direct(1, 2, 3), BackgroundColor: Direct(4, 5, 6)},
	} {
		got, err := Parse(s.Sequence())
		require.NoError(t, err)
		assert.Equal(t, s, got, "%q", s.Sequence())
	}
}

func TestParseErrors(t *testing.T) {
	for _, params := range []string{"1;x", "38;2;1", "38;5", "38", "38;7;1", "58;5;1", "12", "38:2:1", "70000"} {
		t.Run(params, func(t *testing.T) {
			_, err := Parse(params)
			assert.ErrorIs(t, err, ErrInvalidParams)
		})
	}
}
