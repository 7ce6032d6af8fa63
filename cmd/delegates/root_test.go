package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"delegates/internal/config"
)

const fixtureDataset = `[
  {"name": "甲", "gender": "男", "age": "45", "birthplace": "河北省某縣", "experience": ["曾任師長"], "lat": 38.04, "lon": 114.51},
  {"name": "乙", "gender": "女", "age": "abc", "birthplace": "", "experience": []}
]`

func resetFlags(t *testing.T) {
	t.Helper()

	t.Cleanup(func() {
		configPath, inputPath, catalogPath, outputPath, logLevel = "", "", "", "", ""
	})
}

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	return path
}

func TestResolveConfig_FlagOverrides(t *testing.T) {
	resetFlags(t)

	configPath = writeFixture(t, "delegates.yaml", "dataset:\n  path: a.json\nlogging:\n  level: warn\n")
	inputPath = "b.json"
	logLevel = "debug"

	cfg, err := resolveConfig()
	if err != nil {
		t.Fatalf("resolveConfig failed: %v", err)
	}

	if cfg.Dataset.Path != "b.json" || cfg.Logging.Level != "debug" {
		t.Errorf("overrides not applied: %s level=%s", cfg, cfg.Logging.Level)
	}
}

func TestResolveConfig_InvalidOverride(t *testing.T) {
	resetFlags(t)

	configPath = writeFixture(t, "delegates.yaml", "dataset:\n  path: a.json\n")
	logLevel = "loud"

	if _, err := resolveConfig(); err == nil {
		t.Error("resolveConfig expected error for bad log level")
	}
}

func TestRunExport(t *testing.T) {
	resetFlags(t)

	out := filepath.Join(t.TempDir(), "out", "report.json")
	configPath = writeFixture(t, "delegates.yaml", "dataset:\n  path: x.json\nlogging:\n  level: error\n")
	inputPath = writeFixture(t, "people_data.json", fixtureDataset)
	outputPath = out

	e, err := setup()
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if err := runExport(e); err != nil {
		t.Fatalf("runExport failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var got struct {
		View struct {
			Total        int            `json:"total"`
			GenderCounts map[string]int `json:"genderCounts"`
		} `json:"view"`
		Records []struct {
			Province string   `json:"province"`
			Domains  []string `json:"domains"`
			Age      *int     `json:"age"`
		} `json:"records"`
		Markers []struct {
			Name string `json:"name"`
		} `json:"markers"`
	}

	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, data)
	}

	if got.View.Total != 2 || got.View.GenderCounts["其他"] != 0 || got.View.GenderCounts["男"] != 1 {
		t.Errorf("view = %+v", got.View)
	}

	if len(got.Records) != 2 || got.Records[0].Province != "河北" || got.Records[1].Age != nil {
		t.Errorf("records = %+v", got.Records)
	}

	if len(got.Markers) != 1 || got.Markers[0].Name != "甲" {
		t.Errorf("markers = %+v", got.Markers)
	}
}

func TestRunSummary_CustomCatalog(t *testing.T) {
	resetFlags(t)

	out := filepath.Join(t.TempDir(), "summary.md")
	configPath = writeFixture(t, "delegates.yaml", "dataset:\n  path: x.json\nlogging:\n  level: error\n")
	inputPath = writeFixture(t, "people_data.json", fixtureDataset)
	catalogPath = writeFixture(t, "catalog.yaml",
		"provinces: [某縣, 河北]\ndomains:\n  - label: 軍職\n    keywords: [師長]\n")
	outputPath = out

	e, err := setup()
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if e.cfg.Output.Format != config.FormatMarkdown {
		t.Fatalf("format = %q", e.cfg.Output.Format)
	}

	if err := runSummary(e); err != nil {
		t.Fatalf("runSummary failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	got := string(data)
	for _, want := range []string{"某縣 (1人)", "| 軍職 | 1   | 1   |"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}
