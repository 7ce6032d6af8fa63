package aggregator

import "delegates/internal/models"

// grouper builds province groups in first-seen order.
type grouper struct {
	index  map[string]int
	groups []models.ProvinceGroup
}

func newGrouper() *grouper {
	return &grouper{index: make(map[string]int), groups: make([]models.ProvinceGroup, 0)}
}

func (g *grouper) add(i int, d *models.Delegate) {
	pos, ok := g.index[d.Province]
	if !ok {
		pos = len(g.groups)
		g.index[d.Province] = pos
		g.groups = append(g.groups, models.ProvinceGroup{Province: d.Province})
	}

	g.groups[pos].Indices = append(g.groups[pos].Indices, i)
	g.groups[pos].Delegates = append(g.groups[pos].Delegates, d)
}

// GroupByProvince groups records by province label. Groups appear in the
// order their province is first seen; records keep input order within a group.
func GroupByProvince(records []models.Delegate) []models.ProvinceGroup {
	g := newGrouper()
	for i := range records {
		g.add(i, &records[i])
	}

	return g.groups
}
