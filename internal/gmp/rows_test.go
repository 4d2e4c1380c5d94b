package gmp

import (
	"slices"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shanehull/gmpwatch/internal/types"
)

func parseTable(t *testing.T, markup string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	table := doc.Find("table").First()
	require.Equal(t, 1, table.Length())
	return table
}

const gmpTable = `<html><body><table>
<tr><th>IPO</th><th>Price</th><th>GMP</th><th>Gain</th><th>Date</th></tr>
<tr><td>Short Ltd</td><td>100</td><td>10</td><td>10%</td></tr>
<tr><td><a href="/acme">Acme <b>IPO</b></a></td><td>₹120</td><td>₹24</td><td> 20% </td><td>1-3&nbsp;Sept</td></tr>
<tr><th>Header Cell Co</th><td>50</td><td>-</td><td>N/A</td><td>5 Sept</td><td>extra</td></tr>
</table></body></html>`

func TestSchemaRecords(t *testing.T) {
	table := parseTable(t, gmpTable)

	got := slices.Collect(DefaultSchema.Records(table))
	want := []types.OfferingRecord{
		{Name: "Acme IPO", PremiumText: "20%", ClosingDateText: "1-3 Sept"},
		{Name: "Header Cell Co", PremiumText: "N/A", ClosingDateText: "5 Sept"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Records() mismatch (-want +got):\n%s", diff)
	}
}

func TestSchemaRecordsStopsEarly(t *testing.T) {
	table := parseTable(t, gmpTable)

	var names []string
	for rec := range DefaultSchema.Records(table) {
		names = append(names, rec.Name)
		break
	}
	assert.Equal(t, []string{"Acme IPO"}, names)
}

func TestSchemaRecordsHeaderOnly(t *testing.T) {
	table := parseTable(t, `<table><tr><td>a</td><td>b</td><td>c</td><td>1%</td><td>3 Sept</td></tr></table>`)
	assert.Empty(t, slices.Collect(DefaultSchema.Records(table)))
}

func TestSchemaRecord(t *testing.T) {
	_, ok := DefaultSchema.Record([]string{"a", "b", "c", "12%"})
	assert.False(t, ok, "four cells cannot reach the closing date column")

	rec, ok := DefaultSchema.Record([]string{"Acme IPO", "x", "y", "20%", "3 Sept"})
	require.True(t, ok)
	assert.Equal(t, types.OfferingRecord{Name: "Acme IPO", PremiumText: "20%", ClosingDateText: "3 Sept"}, rec)
}

func TestSchemaMinCells(t *testing.T) {
	assert.Equal(t, 5, DefaultSchema.MinCells())

	custom := Schema{Name: 1, Premium: 0, ClosingDate: 2}
	assert.Equal(t, 3, custom.MinCells())

	rec, ok := custom.Record([]string{"15%", "Beta IPO", "2 Oct"})
	require.True(t, ok)
	assert.Equal(t, "Beta IPO", rec.Name)
	assert.Equal(t, "15%", rec.PremiumText)
}

func TestCellTexts(t *testing.T) {
	table := parseTable(t, `<table>
<tr><th>h</th></tr>
<tr><td>
  Multi
  line</td><td><span>a</span><span>b</span></td><td></td></tr>
</table>`)

	rows := table.Find("tr")
	assert.Equal(t, []string{"Multi line", "ab", ""}, CellTexts(rows.Eq(1)))
}
