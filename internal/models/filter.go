package models

import "fmt"

// Filter is the display mode applied on top of schedule visibility. It
// carries no display text; screen names are resolved by the UI layer.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterToday      Filter = "today"
	FilterCompleted  Filter = "completed"
	FilterIncomplete Filter = "incomplete"
)

// Filters lists all filters in display order.
var Filters = []Filter{FilterAll, FilterToday, FilterCompleted, FilterIncomplete}

// ParseFilter converts a stored or user-supplied filter name. Unknown names
// are an error so a corrupt setting never silently changes the view.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterAll, FilterToday, FilterCompleted, FilterIncomplete:
		return Filter(s), nil
	}
	return FilterAll, fmt.Errorf("unknown filter: %q", s)
}

// Next returns the filter after f in display order, wrapping around.
func (f Filter) Next() Filter {
	for i, known := range Filters {
		if known == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}
