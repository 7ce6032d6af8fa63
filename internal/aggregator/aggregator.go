// Package aggregator derives counts, bins and groupings from enriched delegates.
//
// It depends only on the shape of models.Delegate: province and domain
// labels are taken as given, and the domain catalog is passed in as an
// ordered list of labels.
package aggregator

import "delegates/internal/models"

// Aggregate computes the full view over records in one forward pass,
// followed by a stable sort for the extremes. The returned view points
// into records, which must not be modified afterwards.
//
// An empty collection yields zeroed gender buckets, an empty province
// tally, an all-zero histogram, zero domain counts and nil extremes.
func Aggregate(records []models.Delegate, domains []string) models.AggregateView {
	genders := models.NewTally(models.GenderMale, models.GenderFemale, models.Other)
	provinces := models.NewTally()
	histogram := NewAgeHistogram()
	groups := newGrouper()

	yes := make([]int, len(domains))

	for i := range records {
		d := &records[i]

		genders.Add(d.Gender)
		provinces.Add(d.Province)

		if d.Age != nil {
			histogram[BinIndex(*d.Age)].Count++
		}

		for j, label := range domains {
			if d.HasDomain(label) {
				yes[j]++
			}
		}

		groups.add(i, d)
	}

	counts := make([]models.DomainCount, len(domains))
	for j, label := range domains {
		counts[j] = models.DomainCount{Domain: label, Yes: yes[j], No: len(records) - yes[j]}
	}

	return models.AggregateView{
		Total:          len(records),
		GenderCounts:   genders,
		ProvinceCounts: provinces,
		AgeHistogram:   histogram,
		DomainCounts:   counts,
		Extremes:       FindExtremes(records),
		ProvinceGroups: groups.groups,
	}
}
