package itinerary

import (
	"fmt"

	"github.com/shhac/travelease/internal/domain"
)

// Op is the kind of a visible change
type Op int

const (
	OpInserted Op = iota // Count positions inserted at Position
	OpRemoved            // Count positions removed at Position
	OpChanged            // Count positions at Position need re-binding
	OpReset              // Everything changed; Count is the new item count
)

func (o Op) String() string {
	switch o {
	case OpInserted:
		return "inserted"
	case OpRemoved:
		return "removed"
	case OpChanged:
		return "changed"
	case OpReset:
		return "reset"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Change describes a change to the visible positions of a GroupedList.
// Changes from one mutation are delivered in order; each position refers to
// the list as it is after the previous change has been applied.
type Change struct {
	Op       Op
	Position int
	Count    int
}

// diff returns the changes turning before into after as one removal
// followed by one insertion at the end of their common prefix.
func diff(before, after []domain.ListItem) []Change {
	prefix := 0
	for prefix < len(before) && prefix < len(after) && before[prefix] == after[prefix] {
		prefix++
	}

	suffix := 0
	for suffix < len(before)-prefix && suffix < len(after)-prefix &&
		before[len(before)-1-suffix] == after[len(after)-1-suffix] {
		suffix++
	}

	var changes []Change
	if removed := len(before) - prefix - suffix; removed > 0 {
		changes = append(changes, Change{Op: OpRemoved, Position: prefix, Count: removed})
	}
	if added := len(after) - prefix - suffix; added > 0 {
		changes = append(changes, Change{Op: OpInserted, Position: prefix, Count: added})
	}
	return changes
}

// inserted reports whether pos lies in a range inserted by changes
func inserted(changes []Change, pos int) bool {
	for _, c := range changes {
		if c.Op == OpInserted && pos >= c.Position && pos < c.Position+c.Count {
			return true
		}
	}
	return false
}
