package aggregator

import (
	"testing"

	"delegates/internal/models"
)

func TestMarkers(t *testing.T) {
	lat, lon, zero := 25.0, 121.5, 0.0

	records := []models.Delegate{
		{Name: "placed", Lat: &lat, Lon: &lon},
		{Name: "no lon", Lat: &lat},
		{Name: "zero lat", Lat: &zero, Lon: &lon},
		{Name: "none"},
		{Name: "placed too", Lat: &lat, Lon: &lon},
	}

	markers := Markers(records)
	if len(markers) != 2 {
		t.Fatalf("got %d markers, want 2", len(markers))
	}

	if markers[0].Name != "placed" || markers[0].Index != 0 || markers[0].Lat != 25.0 || markers[0].Lon != 121.5 {
		t.Errorf("markers[0] = %+v", markers[0])
	}

	if markers[1].Index != 4 {
		t.Errorf("markers[1].Index = %d, want 4", markers[1].Index)
	}
}

func TestFindByName(t *testing.T) {
	records := []models.Delegate{
		{Name: "甲", Unit: "first"},
		{Name: "乙"},
		{Name: "甲", Unit: "second"},
	}

	d, ok := FindByName(records, "甲")
	if !ok || d.Unit != "first" {
		t.Errorf("FindByName(甲) = %+v, %v; want first match", d, ok)
	}

	if _, ok := FindByName(records, "丙"); ok {
		t.Error("FindByName(丙) found a record")
	}
}
