package catalog

import "fmt"

// FreeCell is the grid number of the FREE centre square; it is never a target.
const FreeCell = 13

// ValidatePattern reports cells outside 1..25 or duplicated. The centre is
// tolerated in stored data and ignored by grading.
func ValidatePattern(p Pattern) error {
	if len(p.Cells) == 0 {
		return fmt.Errorf("pattern %d: no cells", p.ID)
	}
	seen := make(map[int]bool, len(p.Cells))
	for _, c := range p.Cells {
		if c < 1 || c > 25 {
			return fmt.Errorf("pattern %d: cell %d outside 1..25", p.ID, c)
		}
		if seen[c] {
			return fmt.Errorf("pattern %d: duplicate cell %d", p.ID, c)
		}
		seen[c] = true
	}
	return nil
}

// DefaultPatterns is the shape set seeded into new databases.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{ID: 1, Name: "Four Corners", Cells: []int{1, 5, 21, 25}},
		{ID: 2, Name: "Inner Corners", Cells: []int{7, 9, 17, 19}},
		{ID: 3, Name: "Edge Midpoints", Cells: []int{3, 11, 15, 23}},
		{ID: 4, Name: "Small Diamond", Cells: []int{8, 12, 14, 18}},
		{ID: 5, Name: "Outer Pairs", Cells: []int{2, 4, 22, 24}},
		{ID: 6, Name: "Side Pairs", Cells: []int{6, 10, 16, 20}},
		{ID: 7, Name: "Letter X", Cells: []int{1, 5, 7, 9, 17, 19, 21, 25}},
		{ID: 8, Name: "Plus Sign", Cells: []int{3, 8, 11, 12, 14, 15, 18, 23}},
		{ID: 9, Name: "Picture Frame", Cells: []int{1, 2, 3, 4, 5, 6, 10, 11, 15, 16, 20, 21, 22, 23, 24, 25}},
		{ID: 10, Name: "Postage Stamp", Cells: []int{1, 2, 6, 7}},
		{ID: 11, Name: "Hourglass", Cells: []int{5, 9, 11, 15, 17, 21}},
		{ID: 12, Name: "Crown", Cells: []int{3, 7, 9, 17, 19, 23}},
		{ID: 13, Name: "Arrowhead", Cells: []int{6, 10, 12, 14, 16, 20}},
		{ID: 14, Name: "Zigzag", Cells: []int{2, 6, 8, 18, 20, 24}},
		{ID: 15, Name: "Blackout", Cells: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25}},
	}
}
