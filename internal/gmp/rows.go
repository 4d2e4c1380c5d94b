package gmp

import (
	"iter"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/shanehull/gmpwatch/internal/types"
)

var whitespacePattern = regexp.MustCompile(`[\n\t\r\s\xA0]+`)

// Schema names the table columns an OfferingRecord is read from.
type Schema struct {
	Name        int
	Premium     int
	ClosingDate int
}

// DefaultSchema matches the ipowatch.in GMP table:
// name, price, GMP, premium %, subscription dates.
var DefaultSchema = Schema{Name: 0, Premium: 3, ClosingDate: 4}

// MinCells is the shortest row the schema can address.
func (s Schema) MinCells() int {
	return max(s.Name, s.Premium, s.ClosingDate) + 1
}

// Record maps a row's cells onto the schema. Rows too short to reach every
// column are rejected whole.
func (s Schema) Record(cells []string) (types.OfferingRecord, bool) {
	if len(cells) < s.MinCells() {
		return types.OfferingRecord{}, false
	}
	return types.OfferingRecord{
		Name:            cells[s.Name],
		PremiumText:     cells[s.Premium],
		ClosingDateText: cells[s.ClosingDate],
	}, true
}

// Records yields one record per data row of table. The first row is the
// header. Short rows are dropped without notice.
func (s Schema) Records(table *goquery.Selection) iter.Seq[types.OfferingRecord] {
	return func(yield func(types.OfferingRecord) bool) {
		rows := table.Find("tr")
		for i := 1; i < rows.Length(); i++ {
			rec, ok := s.Record(CellTexts(rows.Eq(i)))
			if !ok {
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// CellTexts returns the text of each td/th in row with whitespace collapsed.
func CellTexts(row *goquery.Selection) []string {
	cells := row.Find("td, th")
	texts := make([]string, 0, cells.Length())
	cells.Each(func(_ int, cell *goquery.Selection) {
		texts = append(texts, cleanText(cell.Text()))
	})
	return texts
}

func cleanText(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}
