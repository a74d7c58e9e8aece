package style

// Sheet memoizes encoded sequences by style hash. Rendering a frame looks up
// the same few styles for every row.
type Sheet struct {
	sequences map[uint64]string
}

func NewSheet() *Sheet {
	return &Sheet{sequences: make(map[uint64]string)}
}

// Render wraps text in s, reusing a previously encoded sequence.
func (sh *Sheet) Render(s Style, text string) string {
	if text == "" || s.IsDefault() {
		return text
	}
	key := s.Hash()
	seq, ok := sh.sequences[key]
	if !ok {
		seq = s.Sequence()
		sh.sequences[key] = seq
	}
	return seq + text + Reset
}
