package pricing

import "github.com/pkordes/respite-booking/backend/internal/domain"

// AggregateCosts combines the priced package with the room costs of a stay.
//
// Holiday-support packages charge every selected room in full. Otherwise the
// guest pays the primary room upgrade plus any additional rooms, except that
// an NDIS-STA guest in an ocean-view room pays that room in full in place of
// the upgrade. Custom-quote packages are not charged here.
func AggregateCosts(items []domain.PricedLineItem, rooms domain.RoomCosts, customQuote bool) domain.CostSummary {
	var s domain.CostSummary
	if customQuote {
		s.IsQuoteOnly = true
	} else {
		for _, it := range items {
			s.PackageTotal += it.Total
		}
	}

	nights := float64(rooms.Nights)
	if nights < 0 {
		nights = 0
	}
	primary := primaryRoom(rooms.Rooms)
	for i, r := range rooms.Rooms {
		s.AccommodationTotal += r.PricePerNight * nights
		if i != primary {
			s.AdditionalRoomsTotal += r.PricePerNight * nights
		}
	}
	if primary >= 0 {
		s.RoomUpgradeTotal = rooms.Rooms[primary].UpgradePerNight * nights
	}

	switch {
	case rooms.HolidaySupport:
		s.OutOfPocketTotal = s.AccommodationTotal
	case primary >= 0 && rooms.Funder == domain.FunderNDISSTA && rooms.Rooms[primary].Type == domain.RoomTypeOceanView:
		s.OceanViewTotal = rooms.Rooms[primary].PricePerNight * nights
		s.RoomUpgradeTotal = 0
		s.OutOfPocketTotal = s.OceanViewTotal + s.AdditionalRoomsTotal
	default:
		s.OutOfPocketTotal = s.RoomUpgradeTotal + s.AdditionalRoomsTotal
	}

	if customQuote {
		s.GrandTotal = s.OutOfPocketTotal
	} else {
		s.GrandTotal = s.PackageTotal + s.OutOfPocketTotal
	}
	return s
}

// primaryRoom returns the index of the room flagged primary, falling back to
// the first room. It returns -1 when no room is selected.
func primaryRoom(rooms []domain.SelectedRoom) int {
	for i, r := range rooms {
		if r.Primary {
			return i
		}
	}
	if len(rooms) > 0 {
		return 0
	}
	return -1
}
