// Package models defines the delegate records and the derived views built from them.
package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Fixed labels shared by the classifier and the aggregator.
const (
	Other        = "其他"
	GenderMale   = "男"
	GenderFemale = "女"

	// Missing is shown in place of an absent list or age.
	Missing = "無"
)

// RawDelegate is one delegate as it appears in the source dataset.
type RawDelegate struct {
	Name       string   `json:"name"`
	Gender     string   `json:"gender"`
	Age        AgeText  `json:"age"`
	Birthplace string   `json:"birthplace"`
	Unit       string   `json:"unit"`
	Education  TextList `json:"education"`
	Experience TextList `json:"experience"`
	Photo      string   `json:"photo,omitempty"`
	Lat        *float64 `json:"lat,omitempty"`
	Lon        *float64 `json:"lon,omitempty"`
}

// Delegate is a RawDelegate with parsed age, inferred province and domain tags.
type Delegate struct {
	Name       string   `json:"name"`
	Gender     string   `json:"gender"`
	Age        *int     `json:"age"`
	Birthplace string   `json:"birthplace"`
	Unit       string   `json:"unit"`
	Education  TextList `json:"education"`
	Experience TextList `json:"experience"`
	Photo      string   `json:"photo,omitempty"`
	Lat        *float64 `json:"lat,omitempty"`
	Lon        *float64 `json:"lon,omitempty"`
	Province   string   `json:"province"`
	Domains    []string `json:"domains"`
}

// HasCoordinates reports whether the delegate can be placed on the map.
// A zero coordinate counts as missing.
func (d *Delegate) HasCoordinates() bool {
	return d.Lat != nil && d.Lon != nil && *d.Lat != 0 && *d.Lon != 0
}

// HasDomain reports whether label is among the delegate's domain tags.
func (d *Delegate) HasDomain(label string) bool {
	for _, got := range d.Domains {
		if got == label {
			return true
		}
	}

	return false
}

// AgeLabel returns the age for display, or Missing when it did not parse.
func (d *Delegate) AgeLabel() string {
	if d.Age == nil {
		return Missing
	}

	return strconv.Itoa(*d.Age)
}

// AgeText holds the raw age field. The dataset mixes JSON strings and
// numbers; both are kept as text and anything else decodes as empty.
type AgeText string

// UnmarshalJSON implements json.Unmarshaler without ever failing on shape.
func (a *AgeText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*a = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = ""
			return nil
		}

		*a = AgeText(s)
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		*a = AgeText(data)
	default:
		*a = ""
	}

	return nil
}

// TextList is an ordered list of free-text entries. It is nil when the
// field was absent or was not a JSON array; non-string elements are dropped.
type TextList []string

// UnmarshalJSON implements json.Unmarshaler without ever failing on shape.
func (l *TextList) UnmarshalJSON(data []byte) error {
	var items []any
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		*l = nil
		return nil
	}

	list := make(TextList, 0, len(items))

	for _, item := range items {
		if s, ok := item.(string); ok {
			list = append(list, s)
		}
	}

	*l = list

	return nil
}

// Join joins the entries with sep, or returns Missing when the list is absent.
func (l TextList) Join(sep string) string {
	if l == nil {
		return Missing
	}

	return strings.Join(l, sep)
}
