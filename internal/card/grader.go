package card

// PatternCells is the set of card slots (0..24) a game's pattern targets.
// The zero value is an empty pattern and puts the grader in ungraded mode.
type PatternCells struct {
	slots [Size]bool
	count int
}

// NewPatternCells converts 1..25 cell numbering to slots. Cell 13 (the FREE
// square) and out-of-range values are dropped.
func NewPatternCells(cells []int) PatternCells {
	var p PatternCells
	for _, c := range cells {
		if c < 1 || c > Size || c == FreeSlot+1 {
			continue
		}
		if !p.slots[c-1] {
			p.slots[c-1] = true
			p.count++
		}
	}
	return p
}

func (p PatternCells) Empty() bool { return p.count == 0 }

func (p PatternCells) Len() int { return p.count }

func (p PatternCells) Has(slot int) bool {
	if slot < 0 || slot >= Size {
		return false
	}
	return p.slots[slot]
}

type SquareState string

const (
	StateFree       SquareState = "free"
	StateSelected   SquareState = "selected"
	StateUnselected SquareState = "unselected"
	StateHit        SquareState = "hit"
	StateTarget     SquareState = "target"
	StateWrong      SquareState = "wrong"
	StateNeutral    SquareState = "neutral"
)

type Square struct {
	IsFree        bool
	IsPatternCell bool
	IsSelected    bool
	Graded        bool
}

func (s Square) State() SquareState {
	switch {
	case s.IsFree:
		return StateFree
	case !s.Graded && s.IsSelected:
		return StateSelected
	case !s.Graded:
		return StateUnselected
	case s.IsPatternCell && s.IsSelected:
		return StateHit
	case s.IsPatternCell:
		return StateTarget
	case s.IsSelected:
		return StateWrong
	default:
		return StateNeutral
	}
}

// Classify grades one square. An empty pattern means the game is ungraded.
func Classify(selections [Size]bool, pattern PatternCells, index int) Square {
	if index == FreeSlot {
		return Square{IsFree: true, IsSelected: true, Graded: !pattern.Empty()}
	}
	if index < 0 || index >= Size {
		return Square{}
	}
	return Square{
		IsPatternCell: pattern.Has(index),
		IsSelected:    selections[index],
		Graded:        !pattern.Empty(),
	}
}

// Grade classifies every square of a card.
func Grade(c Card, pattern PatternCells) [Size]Square {
	sel := c.Selections()
	var out [Size]Square
	for i := range out {
		out[i] = Classify(sel, pattern, i)
	}
	return out
}

type Tally struct {
	Hits    int
	Targets int
	Wrong   int
}

// Count summarizes graded squares. It reports progress only, there is no win
// detection.
func Count(squares [Size]Square) Tally {
	var t Tally
	for _, s := range squares {
		switch s.State() {
		case StateHit:
			t.Hits++
		case StateTarget:
			t.Targets++
		case StateWrong:
			t.Wrong++
		}
	}
	return t
}
