package models

import "time"

// DateFormatter renders a calendar date for display. It is the one
// collaborator the core depends on but does not own; the default mirrors the
// mobile client's locale formatting (month/day/year, no leading zeros).
type DateFormatter func(time.Time) string

// DefaultDateFormatter formats dates the way the app's comparison and detail
// views show them, e.g. "2/15/2026".
func DefaultDateFormatter(t time.Time) string {
	return t.Format("1/2/2006")
}

// Display helpers shared by the detail view and the comparison table. Both
// surfaces must show identical text for the same product, so the formatting
// lives here and nowhere else.

// OriginLabel renders origin as "Region, Country".
func (p Product) OriginLabel() string {
	return p.Origin.Region + ", " + p.Origin.Country
}

// OrganicLabel renders the organic flag the way the comparison table shows it.
func (p Product) OrganicLabel() string {
	if p.Organic {
		return "✅ Yes"
	}
	return "❌ No"
}

// ExpiryLabel renders the expiry date through the injected formatter.
func (p Product) ExpiryLabel(dates DateFormatter) string {
	if dates == nil {
		dates = DefaultDateFormatter
	}
	return dates(p.Expiry)
}
