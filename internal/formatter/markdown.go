package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"delegates/internal/models"
)

// nameSeparator joins delegate names within one province row.
const nameSeparator = "， "

// OldestText describes the oldest delegate, or "" when no age parsed.
func OldestText(ext models.Extremes) string {
	if ext.Oldest == nil {
		return ""
	}

	return fmt.Sprintf("最年長：%s (%d歲)", ext.Oldest.Name, *ext.Oldest.Age)
}

// YoungestText describes the youngest delegate, or "" when no age parsed.
func YoungestText(ext models.Extremes) string {
	if ext.Youngest == nil {
		return ""
	}

	return fmt.Sprintf("最年輕：%s (%d歲)", ext.Youngest.Name, *ext.Youngest.Age)
}

// GroupLabel is the province cell of the roster table, e.g. "河北 (3人)".
func GroupLabel(g models.ProvinceGroup) string {
	return fmt.Sprintf("%s (%d人)", g.Province, len(g.Delegates))
}

// RenderMarkdown renders every aggregation in the report plus the
// province roster.
func RenderMarkdown(report *models.Report) string {
	view := &report.View

	var lines []string

	lines = append(lines, "# 代表統計摘要", "", fmt.Sprintf("總人數：%d", view.Total), "")

	lines = append(lines, "## 性別", "")
	lines = append(lines, tallyTable("性別", view.GenderCounts)...)

	lines = append(lines, "", "## 省份", "")
	lines = append(lines, tallyTable("省份", view.ProvinceCounts)...)

	lines = append(lines, "", "## 年齡分布", "")

	ageRows := make([][]string, 0, len(view.AgeHistogram))
	for _, bin := range view.AgeHistogram {
		ageRows = append(ageRows, []string{bin.Label, strconv.Itoa(bin.Count)})
	}

	lines = append(lines, renderTable([]string{"年齡", "人數"}, ageRows)...)

	lines = append(lines, "", "## 領域分布", "")

	domainRows := make([][]string, 0, len(view.DomainCounts))
	for _, dc := range view.DomainCounts {
		domainRows = append(domainRows, []string{dc.Domain, strconv.Itoa(dc.Yes), strconv.Itoa(dc.No)})
	}

	lines = append(lines, renderTable([]string{"領域", "是", "否"}, domainRows)...)

	lines = append(lines, "", "## 特殊案例", "")

	if view.Extremes.Oldest == nil {
		lines = append(lines, models.Missing)
	} else {
		lines = append(lines, "- "+OldestText(view.Extremes), "- "+YoungestText(view.Extremes))
	}

	lines = append(lines, "", "## 省份代表名單", "")
	lines = append(lines, rosterTable(view.ProvinceGroups)...)

	return strings.Join(lines, "\n") + "\n"
}

// RenderDelegate renders the detail card of one delegate.
func RenderDelegate(d *models.Delegate) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "## %s\n\n", d.Name)
	fmt.Fprintf(&sb, "- 性別：%s\n", d.Gender)
	fmt.Fprintf(&sb, "- 年齡：%s\n", d.AgeLabel())
	fmt.Fprintf(&sb, "- 籍貫：%s\n", d.Birthplace)
	fmt.Fprintf(&sb, "- 省份：%s\n", d.Province)
	fmt.Fprintf(&sb, "- 單位：%s\n", d.Unit)

	domains := models.Missing
	if len(d.Domains) > 0 {
		domains = strings.Join(d.Domains, "、")
	}

	fmt.Fprintf(&sb, "- 領域：%s\n", domains)
	fmt.Fprintf(&sb, "\n**學歷：**\n\n%s\n", bulletList(d.Education))
	fmt.Fprintf(&sb, "\n**經歷：**\n\n%s\n", bulletList(d.Experience))

	if d.Photo != "" {
		fmt.Fprintf(&sb, "\n![%s](%s)\n", d.Name, d.Photo)
	}

	return sb.String()
}

func tallyTable(header string, t *models.Tally) []string {
	keys := t.Keys()

	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, []string{key, strconv.Itoa(t.Get(key))})
	}

	return renderTable([]string{header, "人數"}, rows)
}

func rosterTable(groups []models.ProvinceGroup) []string {
	rows := make([][]string, 0, len(groups))

	for _, g := range groups {
		names := make([]string, 0, len(g.Delegates))
		for _, d := range g.Delegates {
			names = append(names, d.Name)
		}

		rows = append(rows, []string{GroupLabel(g), strings.Join(names, nameSeparator)})
	}

	return renderTable([]string{"省份", "代表名單"}, rows)
}

func bulletList(list models.TextList) string {
	if len(list) == 0 {
		return list.Join("")
	}

	return "- " + strings.Join(list, "\n- ")
}
