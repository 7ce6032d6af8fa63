// Package normalizer turns raw delegate records into the enriched records
// and aggregate view consumed by the rendering side.
package normalizer

import (
	"fmt"

	"delegates/internal/aggregator"
	"delegates/internal/classifier"
	"delegates/internal/logger"
	"delegates/internal/models"
)

// Processor runs classification followed by aggregation.
type Processor struct {
	classifier *classifier.Classifier
	log        *logger.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger. The default discards output.
func WithLogger(log *logger.Logger) Option {
	return func(p *Processor) {
		if log != nil {
			p.log = log
		}
	}
}

// NewProcessor creates a processor for catalog. A nil catalog means the
// built-in one; an invalid catalog is rejected here so Process cannot fail.
func NewProcessor(catalog *classifier.Catalog, opts ...Option) (*Processor, error) {
	if catalog == nil {
		catalog = classifier.DefaultCatalog()
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	p := &Processor{
		classifier: classifier.New(catalog),
		log:        logger.Discard(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Catalog returns the catalog the processor classifies with.
func (p *Processor) Catalog() *classifier.Catalog {
	return p.classifier.Catalog()
}

// Process enriches every raw record and aggregates the result. Malformed
// fields degrade to fallback values; there is no error path.
func (p *Processor) Process(raws []models.RawDelegate) *models.Report {
	records := p.classifier.EnrichAll(raws)
	p.log.Debug("classified delegates", "count", len(records))

	domains := p.Catalog().DomainLabels()
	view := aggregator.Aggregate(records, domains)
	markers := aggregator.Markers(records)

	p.log.Debug("aggregated delegates",
		"provinces", view.ProvinceCounts.Len(),
		"markers", len(markers),
	)

	unparsed := 0
	for i := range records {
		if records[i].Age == nil {
			unparsed++
		}
	}

	if unparsed > 0 {
		p.log.Warn("delegates without a parseable age", "count", unparsed)
	}

	p.log.Info("processed delegates",
		"total", view.Total,
		"provinces", view.ProvinceCounts.Len(),
		"other_province", view.ProvinceCounts.Get(models.Other),
	)

	return &models.Report{
		Records: records,
		View:    view,
		Markers: markers,
		Domains: domains,
	}
}
