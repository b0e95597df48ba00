// Package compare builds the side-by-side comparison table for the products
// the user has scanned. The row set is a fixed configuration, not derived
// from data: every catalog product renders the same nine rows.
package compare

import (
	"fmt"

	"packport/internal/catalog/models"
	"packport/internal/eco"
)

// rowSpec is one configured comparison attribute. The render funcs reuse the
// exact display helpers the detail view uses, so a product shows identical
// text on both surfaces.
type rowSpec struct {
	label    string
	category string
	render   func(p models.Product, dates models.DateFormatter) string
}

func rowSpecs() []rowSpec {
	return []rowSpec{
		{"Origin", "origin", func(p models.Product, _ models.DateFormatter) string {
			return p.OriginLabel()
		}},
		{"Producer", "origin", func(p models.Product, _ models.DateFormatter) string {
			return p.Origin.Producer
		}},
		{"Organic", "label", func(p models.Product, _ models.DateFormatter) string {
			return p.OrganicLabel()
		}},
		{"Fat", "nutrition", func(p models.Product, _ models.DateFormatter) string {
			return p.Nutrition.Fat
		}},
		{"Sugar", "nutrition", func(p models.Product, _ models.DateFormatter) string {
			return p.Nutrition.Sugar
		}},
		{"Protein", "nutrition", func(p models.Product, _ models.DateFormatter) string {
			return p.Nutrition.Protein
		}},
		{"Eco Score", "eco", func(p models.Product, _ models.DateFormatter) string {
			return eco.ScoreLabel(p.Sustainability)
		}},
		{"Recyclability", "eco", func(p models.Product, _ models.DateFormatter) string {
			return fmt.Sprintf("%d%%", p.Sustainability.Recyclability)
		}},
		{"Expiry", "temporal", func(p models.Product, dates models.DateFormatter) string {
			return p.ExpiryLabel(dates)
		}},
	}
}

// RowCount is the fixed number of comparison rows, independent of how many
// products are selected.
func RowCount() int {
	return len(rowSpecs())
}
