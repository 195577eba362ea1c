package pricing

import "github.com/pkordes/respite-booking/backend/internal/domain"

const (
	// courseHours is the length of the in-stay course.
	courseHours = 6
	// courseDayIndex is the stay day the course runs on.
	courseDayIndex = 1
	// fullActivityDay and halfActivityDay are group activity hours per day.
	fullActivityDay = 12
	halfActivityDay = 6
	// hourlyDay is the billable hours of a day for hour-rated items.
	hourlyDay = 12
	// staticDayHours is the billable hours of a day in the fixed tables.
	staticDayHours = 24
)

// PriceLineItems prices the line items of a dynamic package. Items with no
// quantity are left out, as are rooms of custom-quote packages and the
// course when the guest has none.
func PriceLineItems(items []domain.PackageLineItem, in domain.PricingInput) []domain.PricedLineItem {
	out := make([]domain.PricedLineItem, 0, len(items))
	for _, item := range items {
		if item.Type == domain.LineItemRoom && in.CustomQuote {
			continue
		}
		if item.Type == domain.LineItemCourse && !in.Course.HasCourse {
			continue
		}
		qty := lineItemQuantity(item, in)
		if qty <= 0 {
			continue
		}
		label := item.FundingLabel
		if label == "" {
			label = in.FundingLabel
		}
		category := effectiveCategory(item)
		out = append(out, domain.PricedLineItem{
			Description:       item.Description,
			Code:              item.Code,
			Rate:              item.PricePerUnit,
			Quantity:          qty,
			Total:             item.PricePerUnit * qty,
			RateCategoryLabel: rateCategoryLabel(category),
			UnitLabel:         unitLabel(category),
			FundingLabel:      label,
		})
	}
	return out
}

func lineItemQuantity(item domain.PackageLineItem, in domain.PricingInput) float64 {
	switch item.Type {
	case domain.LineItemRoom, domain.LineItemSleepOver:
		if in.Nights < 0 {
			return 0
		}
		return float64(in.Nights)
	case domain.LineItemCourse:
		return courseHours
	case domain.LineItemCare:
		return careQuantity(item, in.Care)
	case domain.LineItemGroupActivities:
		return groupActivityHours(item.RateType, in.Days, in.Course)
	}
	days := float64(countDays(in.Days, item.RateType))
	switch item.RateCategory {
	case domain.RateCategoryDay:
		return days
	case domain.RateCategoryHour:
		return days * hourlyDay
	}
	return 0
}

// careQuantity sums applicable care hours over the days matching the item's
// rate type, restricted to the item's care time.
func careQuantity(item domain.PackageLineItem, care domain.CareAnalysis) float64 {
	if !care.RequiresCare {
		return 0
	}
	var hours float64
	for _, d := range care.DailyCareDetails {
		if item.RateType != "" && d.RateType != item.RateType {
			continue
		}
		switch item.CareTime {
		case domain.CareTimeAll:
			hours += d.ApplicableCare.Total()
		case domain.CareTimeDaytime:
			hours += d.ApplicableCare.Afternoon
		case domain.CareTimeMorning, domain.CareTimeAfternoon, domain.CareTimeEvening:
			hours += d.ApplicableCare.Hours(domain.CarePeriod(item.CareTime))
		}
	}
	return hours
}

// groupActivityHours gives half days on arrival, departure, and the course
// day, and full days otherwise.
func groupActivityHours(rateType domain.RateType, days []domain.DayDescriptor, course domain.CourseFlag) float64 {
	var hours float64
	for i, d := range days {
		if rateType != "" && d.RateType != rateType {
			continue
		}
		switch {
		case d.IsCheckIn || d.IsCheckOut:
			hours += halfActivityDay
		case i == courseDayIndex && course.HasCourse:
			hours += halfActivityDay
		default:
			hours += fullActivityDay
		}
	}
	return hours
}

func countDays(days []domain.DayDescriptor, rateType domain.RateType) int {
	if rateType == "" {
		return len(days)
	}
	n := 0
	for _, d := range days {
		if d.RateType == rateType {
			n++
		}
	}
	return n
}

// effectiveCategory fills in a missing rate category from the item type.
func effectiveCategory(item domain.PackageLineItem) domain.RateCategory {
	if item.RateCategory != "" {
		return item.RateCategory
	}
	switch item.Type {
	case domain.LineItemRoom, domain.LineItemSleepOver:
		return domain.RateCategoryNight
	case domain.LineItemCare, domain.LineItemCourse, domain.LineItemGroupActivities:
		return domain.RateCategoryHour
	}
	return domain.RateCategoryDay
}

func rateCategoryLabel(c domain.RateCategory) string {
	switch c {
	case domain.RateCategoryHour:
		return "/hour"
	case domain.RateCategoryNight:
		return "/night"
	}
	return "/day"
}

func unitLabel(c domain.RateCategory) string {
	switch c {
	case domain.RateCategoryHour:
		return "hours"
	case domain.RateCategoryNight:
		return "nights"
	}
	return "days"
}

// PricePackage prices a package for a stay, choosing the fixed table for
// static packages and the line items otherwise.
func PricePackage(pkg domain.Package, in domain.PricingInput) []domain.PricedLineItem {
	in.CustomQuote = in.CustomQuote || pkg.CustomQuote
	if in.FundingLabel == "" {
		in.FundingLabel = pkg.FundingLabel()
	}
	if pkg.IsStatic() {
		return PriceStaticPackage(pkg.StaticCode, in.Days, in.FundingLabel)
	}
	return PriceLineItems(pkg.LineItems, in)
}
