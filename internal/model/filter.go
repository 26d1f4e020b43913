package model

import "fmt"

type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

var validFilters = []Filter{FilterAll, FilterActive, FilterCompleted}

func ValidateFilter(f Filter) error {
	for _, v := range validFilters {
		if f == v {
			return nil
		}
	}
	return fmt.Errorf("invalid filter %q: must be one of all, active, completed", f)
}

// Matches reports whether the item is surfaced under this filter.
func (f Filter) Matches(i Item) bool {
	switch f {
	case FilterActive:
		return !i.Completed
	case FilterCompleted:
		return i.Completed
	default:
		return true
	}
}
