// Package config reads grid presentation settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hnimtadd/datagrid"
	"github.com/hnimtadd/datagrid/logger"
	"github.com/hnimtadd/datagrid/table/render"
	"github.com/hnimtadd/datagrid/table/style"
	"golang.org/x/text/language"
)

var ErrUnknownKey = errors.New("unknown config key")

// Config mirrors the presentation half of datagrid.Options. Absent keys keep
// whatever the Options already hold.
type Config struct {
	Selection  *bool `toml:"selection"`
	Sorting    *bool `toml:"sorting"`
	Filtering  *bool `toml:"filtering"`
	Pagination *bool `toml:"pagination"`
	PageSize   int   `toml:"page_size"`

	EmptyMessage   string `toml:"empty_message"`
	LoadingMessage string `toml:"loading_message"`

	VirtualScrolling *bool `toml:"virtual_scrolling"`
	MaxHeight        int   `toml:"max_height"`
	RowHeight        int   `toml:"row_height"`
	Overscan         int   `toml:"overscan"`

	// BCP 47 tag used for collation, e.g. "de" or "sv-SE".
	Language string `toml:"language"`

	Log   Log   `toml:"log"`
	Style Style `toml:"style"`
}

type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Style configures text rendering. Styles are SGR parameter lists such as
// "1" or "38;5;208;7".
type Style struct {
	Color          *bool  `toml:"color"`
	Header         string `toml:"header"`
	Selected       string `toml:"selected"`
	Message        string `toml:"message"`
	MaxColumnWidth int    `toml:"max_column_width"`
	EastAsian      bool   `toml:"east_asian"`
}

// Load decodes a TOML document. Keys that no field consumes are an error.
func Load(r io.Reader) (*Config, error) {
	c := &Config{}
	md, err := toml.NewDecoder(r).Decode(c)
	if err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("config: %w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	return c, nil
}

func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Apply overlays c onto opts. The logger is replaced only when a log level
// or format is configured, and it writes to w. Every value is validated
// before opts is touched, so an error leaves opts unchanged.
func (c *Config) Apply(opts *datagrid.Options, w io.Writer) error {
	if c.PageSize < 0 || c.MaxHeight < 0 || c.RowHeight < 0 {
		return fmt.Errorf("config: page_size, max_height and row_height must not be negative")
	}
	var tag language.Tag
	if c.Language != "" {
		var err error
		tag, err = language.Parse(c.Language)
		if err != nil {
			return fmt.Errorf("config: language %q: %w", c.Language, err)
		}
	}
	var log logger.Logger
	if c.Log.Level != "" || c.Log.Format != "" {
		level, err := logger.ParseLevel(c.Log.Level)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		typ, err := logger.ParseType(c.Log.Format)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		log = logger.New(logger.Options{Buffer: w, Level: level, Type: typ})
	}

	if c.Selection != nil {
		opts.EnableSelection = *c.Selection
	}
	if c.Sorting != nil {
		opts.DisableSorting = !*c.Sorting
	}
	if c.Filtering != nil {
		opts.DisableFiltering = !*c.Filtering
	}
	if c.Pagination != nil {
		opts.EnablePagination = *c.Pagination
	}
	if c.VirtualScrolling != nil {
		opts.DisableVirtualScrolling = !*c.VirtualScrolling
	}
	if c.PageSize > 0 {
		opts.PageSize = c.PageSize
	}
	if c.MaxHeight > 0 {
		opts.MaxHeight = c.MaxHeight
	}
	if c.RowHeight > 0 {
		opts.RowHeight = c.RowHeight
	}
	if c.Overscan != 0 {
		opts.Overscan = c.Overscan
	}
	if c.EmptyMessage != "" {
		opts.EmptyMessage = c.EmptyMessage
	}
	if c.LoadingMessage != "" {
		opts.LoadingMessage = c.LoadingMessage
	}
	if c.Language != "" {
		opts.Language = tag
	}
	if log != nil {
		opts.Logger = log
	}
	return nil
}

// TextOptions overlays the style section onto render.DefaultTextOptions.
func (c *Config) TextOptions() (render.TextOptions, error) {
	opts := render.DefaultTextOptions()
	if c.Style.Color != nil {
		opts.Color = *c.Style.Color
	}
	for _, field := range []struct {
		key    string
		params string
		dst    *style.Style
	}{
		{"header", c.Style.Header, &opts.Header},
		{"selected", c.Style.Selected, &opts.Selected},
		{"message", c.Style.Message, &opts.Message},
	} {
		if field.params == "" {
			continue
		}
		s, err := style.Parse(field.params)
		if err != nil {
			return render.TextOptions{}, fmt.Errorf("config: style.%s: %w", field.key, err)
		}
		*field.dst = s
	}
	if c.Style.MaxColumnWidth < 0 {
		return render.TextOptions{}, fmt.Errorf("config: style.max_column_width must not be negative")
	}
	if c.Style.MaxColumnWidth > 0 {
		opts.MaxColumnWidth = c.Style.MaxColumnWidth
	}
	opts.EastAsian = c.Style.EastAsian
	return opts, nil
}
