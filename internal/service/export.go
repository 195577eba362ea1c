package service

import "github.com/pkordes/respite-booking/backend/internal/domain"

// Summary row labels of a quote export.
const (
	ExportPackageTotal       = "Package total"
	ExportRoomUpgradeTotal   = "Room upgrades"
	ExportAdditionalRooms    = "Additional rooms"
	ExportOceanViewTotal     = "Ocean view room"
	ExportAccommodationTotal = "Accommodation"
	ExportOutOfPocketTotal   = "Out of pocket"
	ExportGrandTotal         = "Grand total"
)

// ExportRows flattens a quote into one row per priced line item followed by
// the non-zero cost summary rows. The grand total is always present.
func ExportRows(q domain.Quote) []domain.ExportRow {
	rows := make([]domain.ExportRow, 0, len(q.LineItems)+7)
	for _, item := range q.LineItems {
		rows = append(rows, domain.ExportRow{
			Section:      domain.ExportSectionLineItem,
			Description:  item.Description,
			Code:         item.Code,
			Rate:         item.Rate,
			Quantity:     item.Quantity,
			Unit:         item.UnitLabel,
			Total:        item.Total,
			FundingLabel: item.FundingLabel,
		})
	}

	s := q.Summary
	for _, r := range []struct {
		label string
		total float64
	}{
		{ExportPackageTotal, s.PackageTotal},
		{ExportRoomUpgradeTotal, s.RoomUpgradeTotal},
		{ExportAdditionalRooms, s.AdditionalRoomsTotal},
		{ExportOceanViewTotal, s.OceanViewTotal},
		{ExportAccommodationTotal, s.AccommodationTotal},
		{ExportOutOfPocketTotal, s.OutOfPocketTotal},
	} {
		if r.total == 0 {
			continue
		}
		rows = append(rows, domain.ExportRow{Section: domain.ExportSectionSummary, Description: r.label, Total: r.total})
	}
	return append(rows, domain.ExportRow{Section: domain.ExportSectionSummary, Description: ExportGrandTotal, Total: s.GrandTotal})
}
