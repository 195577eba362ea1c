package pricing

import "github.com/pkordes/respite-booking/backend/internal/domain"

type staticRate struct {
	rateType    domain.RateType
	code        string
	description string
	rate        float64
}

// staticRateTables holds the hourly short-term accommodation rates of the
// fixed packages, one row per rate type.
var staticRateTables = map[domain.StaticPackageCode][]staticRate{
	domain.StaticSP: {
		{domain.RateWeekday, "01_058_0115_1_1", "Short Term Accommodation 1:3 - Weekday", 38.04},
		{domain.RateSaturday, "01_054_0115_1_1", "Short Term Accommodation 1:3 - Saturday", 47.72},
		{domain.RateSunday, "01_055_0115_1_1", "Short Term Accommodation 1:3 - Sunday", 57.39},
		{domain.RatePublicHoliday, "01_056_0115_1_1", "Short Term Accommodation 1:3 - Public Holiday", 71.88},
	},
	domain.StaticCSP: {
		{domain.RateWeekday, "01_059_0115_1_1", "Short Term Accommodation 1:2 - Weekday", 52.27},
		{domain.RateSaturday, "01_060_0115_1_1", "Short Term Accommodation 1:2 - Saturday", 65.73},
		{domain.RateSunday, "01_061_0115_1_1", "Short Term Accommodation 1:2 - Sunday", 79.18},
		{domain.RatePublicHoliday, "01_062_0115_1_1", "Short Term Accommodation 1:2 - Public Holiday", 99.36},
	},
	domain.StaticHCSP: {
		{domain.RateWeekday, "01_082_0115_1_1", "Short Term Accommodation 1:1 - Weekday", 95.13},
		{domain.RateSaturday, "01_083_0115_1_1", "Short Term Accommodation 1:1 - Saturday", 119.66},
		{domain.RateSunday, "01_084_0115_1_1", "Short Term Accommodation 1:1 - Sunday", 144.20},
		{domain.RatePublicHoliday, "01_085_0115_1_1", "Short Term Accommodation 1:1 - Public Holiday", 180.98},
	},
}

// IsStaticPackageCode reports whether code selects a fixed rate table.
func IsStaticPackageCode(code domain.StaticPackageCode) bool {
	_, ok := staticRateTables[code]
	return ok
}

// PriceStaticPackage prices a fixed package: each rate type is charged 24
// hours per matching stay day. Rate types with no days are left out, and an
// unknown code prices nothing.
func PriceStaticPackage(code domain.StaticPackageCode, days []domain.DayDescriptor, fundingLabel string) []domain.PricedLineItem {
	table := staticRateTables[code]
	out := make([]domain.PricedLineItem, 0, len(table))
	for _, row := range table {
		n := countDays(days, row.rateType)
		if n == 0 {
			continue
		}
		qty := float64(n * staticDayHours)
		out = append(out, domain.PricedLineItem{
			Description:       row.description,
			Code:              row.code,
			Rate:              row.rate,
			Quantity:          qty,
			Total:             row.rate * qty,
			RateCategoryLabel: rateCategoryLabel(domain.RateCategoryHour),
			UnitLabel:         unitLabel(domain.RateCategoryHour),
			FundingLabel:      fundingLabel,
		})
	}
	return out
}

var staticPackageNames = map[domain.StaticPackageCode]string{
	domain.StaticSP:   "Standard Package",
	domain.StaticCSP:  "Complex Support Package",
	domain.StaticHCSP: "High Complex Support Package",
}

// StaticPackage returns the package record of a fixed package code, funded
// by funder (NDIS when empty). ok is false for an unknown code.
func StaticPackage(code domain.StaticPackageCode, funder domain.Funder) (domain.Package, bool) {
	name, ok := staticPackageNames[code]
	if !ok {
		return domain.Package{}, false
	}
	if funder == "" {
		funder = domain.FunderNDIS
	}
	return domain.Package{
		Code:       string(code),
		Name:       name,
		Funder:     funder,
		StaticCode: code,
		LineItems:  []domain.PackageLineItem{},
	}, true
}
