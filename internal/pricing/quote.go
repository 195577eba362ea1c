package pricing

import "github.com/pkordes/respite-booking/backend/internal/domain"

// BuildQuote runs the whole derivation for one input snapshot: stay days,
// care resolution, package pricing, and cost aggregation. A stay without
// usable dates prices nothing but still reports room-free totals.
func BuildQuote(in domain.QuoteInput) domain.Quote {
	holidays := NewHolidaySet(in.Holidays)
	days := GenerateStayDates(in.StayDates, in.Nights, holidays)

	nights := in.Nights
	if len(days) == 0 {
		nights = 0
	}

	care := emptyAnalysis(false)
	if resolved := ResolveCare(BookingCareCandidates(in.Care), in.StayDates, in.Nights, holidays); resolved != nil {
		care = *resolved
	}

	pkg := in.Package
	items := []domain.PricedLineItem{}
	if len(days) > 0 {
		items = PricePackage(pkg, domain.PricingInput{
			Days:   days,
			Nights: nights,
			Care:   care,
			Course: in.Course,
		})
	}

	funder := in.Funder
	if funder == "" {
		funder = pkg.Funder
	}
	summary := AggregateCosts(items, domain.RoomCosts{
		Nights:         nights,
		Rooms:          in.Rooms,
		Funder:         funder,
		HolidaySupport: pkg.IsHolidaySupport(),
	}, pkg.CustomQuote)

	return domain.Quote{
		PackageCode: pkg.Code,
		PackageName: pkg.Name,
		Days:        days,
		Care:        care,
		LineItems:   items,
		Summary:     summary,
	}
}
