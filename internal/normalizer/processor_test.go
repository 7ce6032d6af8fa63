package normalizer

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"delegates/internal/classifier"
	"delegates/internal/logger"
	"delegates/internal/models"
)

func TestNewProcessor(t *testing.T) {
	p, err := NewProcessor(nil)
	if err != nil {
		t.Fatalf("NewProcessor returned error: %v", err)
	}

	if p == nil || len(p.Catalog().Domains) != 4 {
		t.Fatal("NewProcessor(nil) did not use the default catalog")
	}
}

func TestNewProcessor_InvalidCatalog(t *testing.T) {
	_, err := NewProcessor(&classifier.Catalog{})
	if !errors.Is(err, classifier.ErrNoProvinces) {
		t.Errorf("NewProcessor error = %v, want ErrNoProvinces", err)
	}
}

func TestProcessor_Process(t *testing.T) {
	var buf bytes.Buffer

	p, err := NewProcessor(nil, WithLogger(logger.NewLoggerTo(&buf, "debug")))
	if err != nil {
		t.Fatalf("NewProcessor returned error: %v", err)
	}

	lat, lon := 38.04, 114.51
	raws := []models.RawDelegate{
		{Name: "甲", Gender: "男", Age: "45", Birthplace: "河北省某縣", Experience: models.TextList{"曾任師長"}, Lat: &lat, Lon: &lon},
		{Name: "乙", Gender: "女", Age: "abc", Experience: models.TextList{}},
	}

	report := p.Process(raws)

	if len(report.Records) != 2 || report.View.Total != 2 {
		t.Fatalf("report has %d records, total %d", len(report.Records), report.View.Total)
	}

	if len(report.Markers) != 1 || report.Markers[0].Name != "甲" {
		t.Errorf("Markers = %+v", report.Markers)
	}

	if strings.Join(report.Domains, ",") != "政界,軍方,商界,教育界" {
		t.Errorf("Domains = %v", report.Domains)
	}

	if report.View.Extremes.Oldest != &report.Records[0] {
		t.Error("extremes do not point into the report records")
	}

	out := buf.String()
	for _, want := range []string{"classified delegates", "delegates without a parseable age", "processed delegates"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestProcessor_Process_Empty(t *testing.T) {
	p, err := NewProcessor(nil)
	if err != nil {
		t.Fatalf("NewProcessor returned error: %v", err)
	}

	report := p.Process(nil)
	if report.View.Total != 0 || len(report.Records) != 0 || len(report.Markers) != 0 {
		t.Errorf("report = %+v, want empty", report)
	}
}

func TestReport_JSONContract(t *testing.T) {
	p, err := NewProcessor(nil)
	if err != nil {
		t.Fatalf("NewProcessor returned error: %v", err)
	}

	report := p.Process([]models.RawDelegate{
		{Name: "甲", Gender: "男", Age: "45", Birthplace: "四川成都"},
		{Name: "乙", Gender: "女", Age: "", Birthplace: "北京"},
	})

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	got := string(data)
	for _, want := range []string{
		`"genderCounts":{"男":1,"女":1,"其他":0}`,
		`"provinceCounts":{"四川":1,"北京":1}`,
		`"provinceGroups":[{"province":"四川","indices":[0]},{"province":"北京","indices":[1]}]`,
		`"age":null`,
		`"domains":[]`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("JSON missing %s:\n%s", want, got)
		}
	}
}
