package style

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hnimtadd/datagrid/table/utils"
)

var ErrInvalidParams = errors.New("invalid SGR parameters")

// Parse reads SGR parameters such as "1;7" or "38;2;255;128;0" into a Style.
// Both the semicolon and the colon (ITU T.416) forms of extended colors are
// accepted, and so is a complete sequence as produced by Style.Sequence.
// Later parameters override earlier ones.
func Parse(params string) (Style, error) {
	params = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(params), csi), "m")
	var s Style
	if params == "" {
		return s, nil
	}
	r, err := newParamReader(params)
	if err != nil {
		return Style{}, err
	}
	for r.idx < len(r.params) {
		if r.colon(r.idx) {
			if err := s.applyGroup(r.group()); err != nil {
				return Style{}, err
			}
			continue
		}
		code := r.params[r.idx]
		r.idx++
		switch {
		case code == 0:
			s.Reset()
		case code == 1:
			s.Bold = true
		case code == 2:
			s.Faint = true
		case code == 3:
			s.Italic = true
		case code == 4 || code == 21:
			s.Underline = true
		case code == 7:
			s.Inverse = true
		case code == 9:
			s.Strikethrough = true
		case code == 22:
			s.Bold, s.Faint = false, false
		case code == 23:
			s.Italic = false
		case code == 24:
			s.Underline = false
		case code == 27:
			s.Inverse = false
		case code == 29:
			s.Strikethrough = false
		case code >= 30 && code <= 37:
			s.ForegroundColor = Palette(uint8(code - 30))
		case code == 39:
			s.ForegroundColor = Color{}
		case code >= 40 && code <= 47:
			s.BackgroundColor = Palette(uint8(code - 40))
		case code == 49:
			s.BackgroundColor = Color{}
		case code >= 90 && code <= 97:
			s.ForegroundColor = Palette(uint8(code - 90 + 8))
		case code >= 100 && code <= 107:
			s.BackgroundColor = Palette(uint8(code - 100 + 8))
		case code == 38 || code == 48:
			c, err := r.extendedColor()
			if err != nil {
				return Style{}, err
			}
			if code == 38 {
				s.ForegroundColor = c
			} else {
				s.BackgroundColor = c
			}
		default:
			return Style{}, fmt.Errorf("%w: unsupported parameter %d", ErrInvalidParams, code)
		}
	}
	return s, nil
}

// applyGroup applies one colon separated run, e.g. 4:3 or 38:2::r:g:b.
func (s *Style) applyGroup(g []uint16) error {
	switch g[0] {
	case 4:
		// Any underline kind other than 0 renders as a single underline.
		s.Underline = g[1] != 0
		return nil
	case 38, 48:
		c, err := colorFromGroup(g[1:])
		if err != nil {
			return err
		}
		if g[0] == 38 {
			s.ForegroundColor = c
		} else {
			s.BackgroundColor = c
		}
		return nil
	default:
		return fmt.Errorf("%w: unsupported parameter group %v", ErrInvalidParams, g)
	}
}

type paramReader struct {
	params []uint16
	// Bit i is set when params[i] is followed by a colon.
	colons *utils.StaticBitSet
	idx    int
}

func newParamReader(raw string) (*paramReader, error) {
	var (
		values []uint16
		colons []int
		start  int
	)
	for i := 0; i <= len(raw); i++ {
		if i < len(raw) && raw[i] != ';' && raw[i] != ':' {
			continue
		}
		// An empty parameter means 0.
		var v uint64
		if tok := strings.TrimSpace(raw[start:i]); tok != "" {
			var err error
			v, err = strconv.ParseUint(tok, 10, 16)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidParams, tok)
			}
		}
		if i < len(raw) && raw[i] == ':' {
			colons = append(colons, len(values))
		}
		values = append(values, uint16(v))
		start = i + 1
	}
	r := &paramReader{params: values, colons: utils.NewStaticBitSet(len(values))}
	for _, idx := range colons {
		r.colons.Set(idx)
	}
	return r, nil
}

// colon reports whether params[i] is followed by a colon. The last value
// never is.
func (r *paramReader) colon(i int) bool {
	return i < len(r.params)-1 && r.colons.IsSet(i)
}

// group consumes the colon separated run starting at the cursor.
func (r *paramReader) group() []uint16 {
	start := r.idx
	for r.colon(r.idx) {
		r.idx++
	}
	r.idx++
	return r.params[start:r.idx]
}

// extendedColor consumes the semicolon form following 38 or 48: either
// 5;n or 2;r;g;b.
func (r *paramReader) extendedColor() (Color, error) {
	rest := r.params[r.idx:]
	if len(rest) == 0 {
		return Color{}, fmt.Errorf("%w: missing color kind", ErrInvalidParams)
	}
	switch rest[0] {
	case 5:
		if len(rest) < 2 {
			return Color{}, fmt.Errorf("%w: missing palette index", ErrInvalidParams)
		}
		r.idx += 2
		return Palette(channel(rest[1])), nil
	case 2:
		if len(rest) < 4 {
			return Color{}, fmt.Errorf("%w: direct color needs 3 channels", ErrInvalidParams)
		}
		r.idx += 4
		return Direct(channel(rest[1]), channel(rest[2]), channel(rest[3])), nil
	default:
		return Color{}, fmt.Errorf("%w: unknown color kind %d", ErrInvalidParams, rest[0])
	}
}

// colorFromGroup decodes the colon form. A direct color carries an optional
// color space id before its channels.
func colorFromGroup(sub []uint16) (Color, error) {
	switch {
	case len(sub) == 2 && sub[0] == 5:
		return Palette(channel(sub[1])), nil
	case len(sub) == 4 && sub[0] == 2:
		return Direct(channel(sub[1]), channel(sub[2]), channel(sub[3])), nil
	case len(sub) == 5 && sub[0] == 2:
		return Direct(channel(sub[2]), channel(sub[3]), channel(sub[4])), nil
	default:
		return Color{}, fmt.Errorf("%w: malformed color %v", ErrInvalidParams, sub)
	}
}

// channel truncates to the 0-255 range terminals expect.
func channel(v uint16) uint8 {
	return uint8(min(math.MaxUint8, v))
}
