// Package style describes how grid text is decorated and encodes it as SGR
// (Select Graphic Rendition) escape sequences.
//
// Sequences follow https://vt100.net/docs/vt510-rm/SGR.html.
package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hnimtadd/datagrid/table/utils"
	"github.com/mitchellh/hashstructure/v2"
)

const (
	csi = "\x1b["

	// Reset returns the terminal to the default rendition.
	Reset = csi + "0m"
)

type RGB struct {
	R, G, B uint8
}

type ColorType int

const (
	ColorTypeNone ColorType = iota
	ColorTypePalette
	ColorTypeRGB
)

// The color for one style attribute: nothing, one of the 256 palette
// entries, or direct RGB.
type Color struct {
	Type    ColorType
	Palette uint8
	RGB     RGB
}

func Palette(idx uint8) Color {
	return Color{Type: ColorTypePalette, Palette: idx}
}

func Direct(r, g, b uint8) Color {
	return Color{Type: ColorTypeRGB, RGB: RGB{r, g, b}}
}

func (c Color) String() string {
	switch c.Type {
	case ColorTypeNone:
		return "Color.none"
	case ColorTypePalette:
		return fmt.Sprintf("Color.palette{{ %d }}", c.Palette)
	case ColorTypeRGB:
		return fmt.Sprintf("Color.rgb{{ %d, %d, %d }}", c.RGB.R, c.RGB.G, c.RGB.B)
	default:
		return "Color.unknown"
	}
}

// params appends the SGR parameters selecting c. base is 38 for the
// foreground and 48 for the background.
func (c Color) params(base int, out []string) []string {
	switch c.Type {
	case ColorTypePalette:
		// The 8 basic colors have their own short codes.
		if c.Palette < 8 {
			return append(out, strconv.Itoa(base-8+int(c.Palette)))
		}
		return append(out, strconv.Itoa(base), "5", strconv.Itoa(int(c.Palette)))
	case ColorTypeRGB:
		return append(out, strconv.Itoa(base), "2",
			strconv.Itoa(int(c.RGB.R)),
			strconv.Itoa(int(c.RGB.G)),
			strconv.Itoa(int(c.RGB.B)))
	default:
		return out
	}
}

// Style attribute for a span of grid text.
type Style struct {
	ForegroundColor Color
	BackgroundColor Color

	Bold          bool
	Italic        bool
	Faint         bool
	Inverse       bool
	Underline     bool
	Strikethrough bool
}

func (s *Style) IsDefault() bool {
	return *s == Style{}
}

func (s *Style) Reset() {
	*s = Style{}
}

// Sequence encodes the style as one SGR escape sequence. The default style
// encodes to "".
func (s Style) Sequence() string {
	if s.IsDefault() {
		return ""
	}
	params := make([]string, 0, 8)
	if s.Bold {
		params = append(params, "1")
	}
	if s.Faint {
		params = append(params, "2")
	}
	if s.Italic {
		params = append(params, "3")
	}
	if s.Underline {
		params = append(params, "4")
	}
	if s.Inverse {
		params = append(params, "7")
	}
	if s.Strikethrough {
		params = append(params, "9")
	}
	params = s.ForegroundColor.params(38, params)
	params = s.BackgroundColor.params(48, params)
	return csi + strings.Join(params, ";") + "m"
}

// Render wraps text in the style's sequence and a trailing reset.
func (s Style) Render(text string) string {
	seq := s.Sequence()
	if seq == "" || text == "" {
		return text
	}
	return seq + text + Reset
}

func (s Style) Hash() uint64 {
	hashed, err := hashstructure.Hash(s, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash style: %v", err))
	return hashed
}
