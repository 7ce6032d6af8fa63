// Package classifier infers province and domain labels from a delegate's
// free-text fields by substring matching against an ordered catalog.
package classifier

import (
	"errors"
	"fmt"
)

// Catalog validation errors.
var (
	ErrNoProvinces          = errors.New("catalog must list at least one province")
	ErrEmptyProvince        = errors.New("province entry is empty")
	ErrEmptyDomainLabel     = errors.New("domain label is empty")
	ErrDuplicateDomainLabel = errors.New("domain label is duplicated")
	ErrDomainWithoutKeyword = errors.New("domain has no keywords")
	ErrEmptyKeyword         = errors.New("domain keyword is empty")
)

// Domain is a professional-sphere label and the keywords that trigger it.
type Domain struct {
	Label    string   `yaml:"label" json:"label"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// Catalog holds the ordered province candidates and the domain keyword map.
//
// Province order is the tie-break rule: the first entry contained in a
// birthplace wins, so duplicates and nested names must keep their positions.
type Catalog struct {
	Provinces []string `yaml:"provinces" json:"provinces"`
	Domains   []Domain `yaml:"domains" json:"domains"`
}

// DefaultCatalog returns a fresh copy of the built-in catalog.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Provinces: []string{
			"北京", "天津", "上海", "重慶",
			"河北", "山西", "遼寧", "吉林", "黑龍江", "哈爾濱", "瀋陽",
			"江蘇", "浙江", "安徽", "福建", "江西", "山東", "綏遠", "遼北", "廣州",
			"河南", "湖北", "湖南", "廣東", "海南", "嫩江", "察哈爾", "山東", "南京",
			"四川", "貴州", "雲南", "陝西", "甘肅", "青海", "漢口", "熱河", "興安",
			"廣西", "蒙古", "新疆", "西藏", "寧夏", "安東", "松江", "青島", "貴州",
			"香港", "澳門", "臺灣", "西康", "大連", "天津", "北平", "合江", "重慶",
		},
		Domains: []Domain{
			{Label: "政界", Keywords: []string{"政府", "議會", "立法院", "行政院", "部長", "市長", "省長", "官員"}},
			{Label: "軍方", Keywords: []string{"軍", "師", "旅", "營", "司令", "將軍", "少校", "上校"}},
			{Label: "商界", Keywords: []string{"公司", "銀行", "企業", "董事長", "總經理", "廠長"}},
			{Label: "教育界", Keywords: []string{"學校", "教授", "教師", "大學", "中學", "校長"}},
		},
	}
}

// DomainLabels returns the domain labels in declaration order.
func (c *Catalog) DomainLabels() []string {
	labels := make([]string, 0, len(c.Domains))
	for _, d := range c.Domains {
		labels = append(labels, d.Label)
	}

	return labels
}

// Validate checks the catalog. Repeated province entries are allowed.
func (c *Catalog) Validate() error {
	if len(c.Provinces) == 0 {
		return ErrNoProvinces
	}

	for i, prov := range c.Provinces {
		if prov == "" {
			return fmt.Errorf("%w: provinces[%d]", ErrEmptyProvince, i)
		}
	}

	seen := make(map[string]bool, len(c.Domains))

	for i, d := range c.Domains {
		if d.Label == "" {
			return fmt.Errorf("%w: domains[%d]", ErrEmptyDomainLabel, i)
		}

		if seen[d.Label] {
			return fmt.Errorf("%w: %s", ErrDuplicateDomainLabel, d.Label)
		}

		seen[d.Label] = true

		if len(d.Keywords) == 0 {
			return fmt.Errorf("%w: %s", ErrDomainWithoutKeyword, d.Label)
		}

		// An empty keyword is a substring of everything.
		for j, kw := range d.Keywords {
			if kw == "" {
				return fmt.Errorf("%w: %s keywords[%d]", ErrEmptyKeyword, d.Label, j)
			}
		}
	}

	return nil
}
