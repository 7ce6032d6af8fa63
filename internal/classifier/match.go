package classifier

import (
	"strings"

	"delegates/internal/models"
)

// DetectProvince returns the first catalog province contained in
// birthplace, or models.Other when none is.
func (c *Catalog) DetectProvince(birthplace string) string {
	if birthplace == "" {
		return models.Other
	}

	for _, prov := range c.Provinces {
		if strings.Contains(birthplace, prov) {
			return prov
		}
	}

	return models.Other
}

// DetectDomains returns the labels of every domain with a keyword contained
// in some experience entry, once each, in catalog order. The result is
// never nil.
func (c *Catalog) DetectDomains(experience models.TextList) []string {
	matched := make([]string, 0, len(c.Domains))
	if len(experience) == 0 {
		return matched
	}

	for _, d := range c.Domains {
		if mentionsAny(experience, d.Keywords) {
			matched = append(matched, d.Label)
		}
	}

	return matched
}

func mentionsAny(entries []string, keywords []string) bool {
	for _, entry := range entries {
		for _, kw := range keywords {
			if strings.Contains(entry, kw) {
				return true
			}
		}
	}

	return false
}
