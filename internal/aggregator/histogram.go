package aggregator

import (
	"fmt"

	"delegates/internal/models"
)

// Age histogram layout: bins of BinWidth years from 0 up to MaxBinStart.
const (
	BinWidth    = 5
	MaxBinStart = 100
	BinCount    = MaxBinStart/BinWidth + 1
)

// NewAgeHistogram returns the zeroed bins "0-4" through "100-104".
func NewAgeHistogram() []models.AgeBin {
	bins := make([]models.AgeBin, BinCount)
	for i := range bins {
		lo := i * BinWidth
		hi := lo + BinWidth - 1
		bins[i] = models.AgeBin{Label: fmt.Sprintf("%d-%d", lo, hi), Min: lo, Max: hi}
	}

	return bins
}

// BinIndex returns the bin for age. Ages past the last bin collapse into
// it; negative ages fall into the first.
func BinIndex(age int) int {
	idx := age / BinWidth

	switch {
	case age < 0:
		return 0
	case idx >= BinCount:
		return BinCount - 1
	default:
		return idx
	}
}
