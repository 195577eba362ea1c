package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/pkordes/respite-booking/backend/internal/domain"
	"github.com/pkordes/respite-booking/backend/internal/service"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"section", "description", "code", "rate", "quantity", "unit", "total", "funding",
}

// writeCSV encodes a quote's export rows as CSV.
func writeCSV(w http.ResponseWriter, q domain.Quote) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, row := range service.ExportRows(q) {
		//nolint:errcheck
		cw.Write(rowToCSVRecord(row))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="quote.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(buf.Bytes())
}

// rowToCSVRecord encodes a domain.ExportRow as a flat string slice.
// Summary rows leave the pricing columns empty.
func rowToCSVRecord(r domain.ExportRow) []string {
	rec := []string{r.Section, r.Description, r.Code, "", "", r.Unit, formatMoney(r.Total), r.FundingLabel}
	if r.Section == domain.ExportSectionLineItem {
		rec[3] = formatMoney(r.Rate)
		rec[4] = strconv.FormatFloat(r.Quantity, 'f', -1, 64)
	}
	return rec
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
