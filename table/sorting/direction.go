package sorting

type Direction int

const (
	None Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

// Next advances the header activation cycle
// none -> ascending -> descending -> none.
func (d Direction) Next() Direction {
	switch d {
	case None:
		return Ascending
	case Ascending:
		return Descending
	default:
		return None
	}
}

// State is the active sort of a grid. ColumnID is empty exactly when
// Direction is None.
type State struct {
	ColumnID  string
	Direction Direction
}

func (s State) Active() bool {
	return s.Direction != None
}

// DirectionOf returns the direction shown on the header of columnID.
func (s State) DirectionOf(columnID string) Direction {
	if s.ColumnID != columnID {
		return None
	}
	return s.Direction
}

// Activate returns the state after the header of columnID was activated.
// Repeated activation of one column cycles its direction; activating another
// column starts that column at Ascending and drops the previous one.
func (s State) Activate(columnID string) State {
	if columnID == "" {
		return State{}
	}
	if s.ColumnID != columnID {
		return State{ColumnID: columnID, Direction: Ascending}
	}
	next := s.Direction.Next()
	if next == None {
		return State{}
	}
	return State{ColumnID: columnID, Direction: next}
}

// Normalize keeps ColumnID and Direction in step.
func (s State) Normalize() State {
	if s.ColumnID == "" || s.Direction == None {
		return State{}
	}
	if s.Direction != Ascending && s.Direction != Descending {
		return State{}
	}
	return s
}
