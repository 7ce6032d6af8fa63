package aggregator

import "delegates/internal/models"

// Markers returns a map marker for every record with usable coordinates.
func Markers(records []models.Delegate) []models.Marker {
	markers := make([]models.Marker, 0, len(records))

	for i := range records {
		d := &records[i]
		if !d.HasCoordinates() {
			continue
		}

		markers = append(markers, models.Marker{Name: d.Name, Index: i, Lat: *d.Lat, Lon: *d.Lon})
	}

	return markers
}

// FindByName returns the first record named name.
func FindByName(records []models.Delegate, name string) (*models.Delegate, bool) {
	for i := range records {
		if records[i].Name == name {
			return &records[i], true
		}
	}

	return nil, false
}
