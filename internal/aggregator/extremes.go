package aggregator

import (
	"sort"

	"delegates/internal/models"
)

// FindExtremes returns the oldest and youngest records with a parsed age.
// Records are stably sorted by descending age; the oldest is the head and
// the youngest the tail, so ties resolve by input order the same way.
func FindExtremes(records []models.Delegate) models.Extremes {
	aged := make([]*models.Delegate, 0, len(records))

	for i := range records {
		if records[i].Age != nil {
			aged = append(aged, &records[i])
		}
	}

	if len(aged) == 0 {
		return models.Extremes{}
	}

	sort.SliceStable(aged, func(a, b int) bool {
		return *aged[a].Age > *aged[b].Age
	})

	return models.Extremes{Oldest: aged[0], Youngest: aged[len(aged)-1]}
}
