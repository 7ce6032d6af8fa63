package classifier

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"delegates/internal/models"
)

func TestNew_NilCatalogUsesDefault(t *testing.T) {
	c := New(nil)
	if c.Catalog() == nil || len(c.Catalog().Provinces) == 0 {
		t.Fatal("New(nil) did not fall back to the default catalog")
	}
}

func TestClassifier_EnrichAll(t *testing.T) {
	lat, lon := 38.04, 114.51

	raws := []models.RawDelegate{
		{
			Name:       "甲",
			Gender:     "男",
			Age:        "45",
			Birthplace: "河北省某縣",
			Unit:       "河北省",
			Experience: models.TextList{"曾任師長"},
			Lat:        &lat,
			Lon:        &lon,
		},
		{Name: "乙", Gender: "女", Age: "abc", Experience: models.TextList{}},
	}

	got := New(nil).EnrichAll(raws)
	if len(got) != 2 {
		t.Fatalf("EnrichAll returned %d records, want 2", len(got))
	}

	first := got[0]
	if first.Age == nil || *first.Age != 45 {
		t.Errorf("first.Age = %v, want 45", first.Age)
	}

	if first.Province != "河北" {
		t.Errorf("first.Province = %q, want 河北", first.Province)
	}

	if diff := cmp.Diff([]string{"軍方"}, first.Domains); diff != "" {
		t.Errorf("first.Domains mismatch (-want +got):\n%s", diff)
	}

	if first.Name != "甲" || first.Unit != "河北省" || first.Lat != &lat {
		t.Errorf("first lost pass-through fields: %+v", first)
	}

	second := got[1]
	if second.Age != nil {
		t.Errorf("second.Age = %d, want nil", *second.Age)
	}

	if second.Province != models.Other {
		t.Errorf("second.Province = %q, want %q", second.Province, models.Other)
	}

	if len(second.Domains) != 0 {
		t.Errorf("second.Domains = %v, want empty", second.Domains)
	}
}
