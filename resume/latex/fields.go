package latex

import "strconv"

// Fallback literals for absent optional fields.
const (
	NotAvailable = "N/A"
	Present      = "Present"
	AnchorTarget = "#"
)

// Field returns the escaped value, or fallback when value is absent.
// A present empty string is kept as-is.
func Field(value *string, fallback string) string {
	if value == nil {
		return Escape(fallback)
	}
	return Escape(*value)
}

// text returns the escaped value of a required field. Validated records never
// carry nil here; it renders as "" rather than a fallback.
func text(value *string) string {
	return Field(value, "")
}

// Link returns an escaped hyperlink target, or the placeholder anchor when the
// link is absent so the surrounding \href stays well-formed.
func Link(value *string) string {
	if value == nil {
		return AnchorTarget
	}
	target := EscapeURL(*value)
	if target == "" {
		return AnchorTarget
	}
	return target
}

func formatGPA(gpa float64) string {
	return strconv.FormatFloat(gpa, 'f', -1, 64)
}
