package compare

import (
	"fmt"

	"packport/internal/catalog/models"
	dErrors "packport/pkg/domain-errors"
)

// Header identifies one product column in the table.
type Header struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
}

// Row is one rendered attribute across all selected products. Values and
// DiffersFromFocus are indexed by product column. The focus column's own
// flag is always false.
type Row struct {
	Label            string   `json:"label"`
	Category         string   `json:"category"`
	Values           []string `json:"values"`
	DiffersFromFocus []bool   `json:"differsFromFocus"`
}

// Table is the full comparison result.
type Table struct {
	Headers    []Header `json:"headers"`
	Rows       []Row    `json:"rows"`
	FocusIndex int      `json:"focusIndex"`
}

// Builder renders comparison tables. Dates controls expiry formatting and
// must match the formatter used by the detail view.
type Builder struct {
	dates models.DateFormatter
}

func NewBuilder(dates models.DateFormatter) *Builder {
	if dates == nil {
		dates = models.DefaultDateFormatter
	}
	return &Builder{dates: dates}
}

// BuildTable renders the configured rows for the given products. An empty
// product list yields an empty table. The focus index must address one of
// the given products; difference flags compare each cell's rendered text
// against the focus column's text in the same row.
func (b *Builder) BuildTable(products []models.Product, focusIndex int) (Table, error) {
	if len(products) == 0 {
		return Table{}, nil
	}
	if focusIndex < 0 || focusIndex >= len(products) {
		return Table{}, dErrors.New(dErrors.CodeOutOfRange,
			fmt.Sprintf("focus index %d outside selection of %d products", focusIndex, len(products)))
	}

	headers := make([]Header, len(products))
	for i, p := range products {
		headers[i] = Header{ID: p.ID.String(), Name: p.Name, Brand: p.Brand}
	}

	specs := rowSpecs()
	rows := make([]Row, len(specs))
	for ri, spec := range specs {
		values := make([]string, len(products))
		for ci, p := range products {
			values[ci] = spec.render(p, b.dates)
		}
		diffs := make([]bool, len(products))
		for ci := range products {
			diffs[ci] = values[ci] != values[focusIndex]
		}
		rows[ri] = Row{Label: spec.label, Category: spec.category, Values: values, DiffersFromFocus: diffs}
	}

	return Table{Headers: headers, Rows: rows, FocusIndex: focusIndex}, nil
}
