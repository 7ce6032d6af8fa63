package models

import (
	"bytes"
	"encoding/json"
)

// Tally counts occurrences per label and remembers the order in which
// labels were first added.
type Tally struct {
	counts map[string]int
	keys   []string
}

// NewTally creates a tally with the given labels present at zero.
func NewTally(seed ...string) *Tally {
	t := &Tally{counts: make(map[string]int, len(seed))}
	for _, key := range seed {
		if _, ok := t.counts[key]; !ok {
			t.counts[key] = 0
			t.keys = append(t.keys, key)
		}
	}

	return t
}

// Add increments the count for key.
func (t *Tally) Add(key string) {
	if _, ok := t.counts[key]; !ok {
		t.keys = append(t.keys, key)
	}

	t.counts[key]++
}

// Get returns the count for key.
func (t *Tally) Get(key string) int {
	return t.counts[key]
}

// Has reports whether key is present, even at zero.
func (t *Tally) Has(key string) bool {
	_, ok := t.counts[key]
	return ok
}

// Keys returns the labels in first-added order.
func (t *Tally) Keys() []string {
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)

	return keys
}

// Len returns the number of labels.
func (t *Tally) Len() int {
	return len(t.keys)
}

// Total returns the sum of all counts.
func (t *Tally) Total() int {
	total := 0
	for _, n := range t.counts {
		total += n
	}

	return total
}

// MarshalJSON writes the tally as an object with keys in first-added order.
func (t *Tally) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		buf.Write(k)
		buf.WriteByte(':')

		v, err := json.Marshal(t.counts[key])
		if err != nil {
			return nil, err
		}

		buf.Write(v)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// AgeBin is one fixed-width bucket of the age histogram.
type AgeBin struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Count int    `json:"count"`
}

// DomainCount holds how many delegates do and do not carry a domain tag.
type DomainCount struct {
	Domain string `json:"domain"`
	Yes    int    `json:"yes"`
	No     int    `json:"no"`
}

// Extremes holds the oldest and youngest delegate with a parsed age.
// Both are nil when no delegate has one.
type Extremes struct {
	Oldest   *Delegate `json:"oldest"`
	Youngest *Delegate `json:"youngest"`
}

// ProvinceGroup lists the delegates of one province in input order.
type ProvinceGroup struct {
	Province  string      `json:"province"`
	Indices   []int       `json:"indices"`
	Delegates []*Delegate `json:"-"`
}

// AggregateView is every summary derived from one delegate collection.
type AggregateView struct {
	GenderCounts   *Tally          `json:"genderCounts"`
	ProvinceCounts *Tally          `json:"provinceCounts"`
	Extremes       Extremes        `json:"extremes"`
	AgeHistogram   []AgeBin        `json:"ageHistogram"`
	DomainCounts   []DomainCount   `json:"domainCounts"`
	ProvinceGroups []ProvinceGroup `json:"provinceGroups"`
	Total          int             `json:"total"`
}

// Domain returns the yes/no counts for label.
func (v *AggregateView) Domain(label string) (DomainCount, bool) {
	for _, dc := range v.DomainCounts {
		if dc.Domain == label {
			return dc, true
		}
	}

	return DomainCount{}, false
}

// Group returns the group for province.
func (v *AggregateView) Group(province string) (ProvinceGroup, bool) {
	for _, g := range v.ProvinceGroups {
		if g.Province == province {
			return g, true
		}
	}

	return ProvinceGroup{}, false
}

// Marker is a delegate placed on the map.
type Marker struct {
	Name  string  `json:"name"`
	Index int     `json:"index"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

// Report is everything handed to the rendering side.
type Report struct {
	View    AggregateView `json:"view"`
	Records []Delegate    `json:"records"`
	Markers []Marker      `json:"markers"`
	Domains []string      `json:"domains"`
}
