package model

import (
	"sort"
	"time"
)

// Donation records a single amount given by an authenticated user.
type Donation struct {
	ID     string
	UserID string
	Amount float64
	Date   time.Time
}

// SortNewestFirst orders donations by date descending, keeping the relative
// order of donations recorded at the same instant.
func SortNewestFirst(items []Donation) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
}
