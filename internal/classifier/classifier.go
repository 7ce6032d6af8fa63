package classifier

import "delegates/internal/models"

// Classifier enriches raw delegates using one catalog.
type Classifier struct {
	catalog *Catalog
}

// New creates a classifier. A nil catalog means DefaultCatalog.
func New(catalog *Catalog) *Classifier {
	if catalog == nil {
		catalog = DefaultCatalog()
	}

	return &Classifier{catalog: catalog}
}

// Catalog returns the catalog in use.
func (c *Classifier) Catalog() *Catalog {
	return c.catalog
}

// Enrich derives the parsed age, province and domain tags for one delegate.
func (c *Classifier) Enrich(raw models.RawDelegate) models.Delegate {
	return models.Delegate{
		Name:       raw.Name,
		Gender:     raw.Gender,
		Age:        ParseAge(raw.Age),
		Birthplace: raw.Birthplace,
		Unit:       raw.Unit,
		Education:  raw.Education,
		Experience: raw.Experience,
		Photo:      raw.Photo,
		Lat:        raw.Lat,
		Lon:        raw.Lon,
		Province:   c.catalog.DetectProvince(raw.Birthplace),
		Domains:    c.catalog.DetectDomains(raw.Experience),
	}
}

// EnrichAll enriches every delegate, keeping input order.
func (c *Classifier) EnrichAll(raws []models.RawDelegate) []models.Delegate {
	out := make([]models.Delegate, 0, len(raws))
	for _, raw := range raws {
		out = append(out, c.Enrich(raw))
	}

	return out
}
