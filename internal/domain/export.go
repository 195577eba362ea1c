package domain

// Export sections.
const (
	ExportSectionLineItem = "line_item"
	ExportSectionSummary  = "summary"
)

// ExportRow is a single row in the flat export of a quote. Line item rows
// carry the full pricing columns; summary rows carry only a label and total.
type ExportRow struct {
	Section      string  `json:"section"`
	Description  string  `json:"description"`
	Code         string  `json:"code,omitempty"`
	Rate         float64 `json:"rate,omitempty"`
	Quantity     float64 `json:"quantity,omitempty"`
	Unit         string  `json:"unit,omitempty"`
	Total        float64 `json:"total"`
	FundingLabel string  `json:"funding_label,omitempty"`
}
