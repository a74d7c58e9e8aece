package utils

// Assert panics when condition does not hold. It guards internal invariants
// of the grid, never caller input.
func Assert(condition bool, message ...string) {
	if condition {
		return
	}
	if len(message) == 1 {
		panic(message[0])
	}
	panic("failed assertion")
}
