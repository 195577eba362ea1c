package domain

import (
	"time"

	"github.com/google/uuid"
)

// LineItemType drives the quantity rule applied to a package line item.
type LineItemType string

const (
	LineItemRoom            LineItemType = "room"
	LineItemGroupActivities LineItemType = "group_activities"
	LineItemSleepOver       LineItemType = "sleep_over"
	LineItemCourse          LineItemType = "course"
	LineItemCare            LineItemType = "care"
	LineItemOther           LineItemType = "other"
)

// RateCategory is the billing unit of a line item.
type RateCategory string

const (
	RateCategoryDay   RateCategory = "day"
	RateCategoryHour  RateCategory = "hour"
	RateCategoryNight RateCategory = "night"
)

// CareTime narrows a care line item to part of the day.
// The empty value means all three periods.
type CareTime string

const (
	CareTimeAll       CareTime = ""
	CareTimeMorning   CareTime = "morning"
	CareTimeAfternoon CareTime = "afternoon"
	CareTimeEvening   CareTime = "evening"
	CareTimeDaytime   CareTime = "daytime"
)

// StaticPackageCode selects one of the fixed hourly rate tables.
type StaticPackageCode string

const (
	StaticSP   StaticPackageCode = "SP"
	StaticCSP  StaticPackageCode = "CSP"
	StaticHCSP StaticPackageCode = "HCSP"
)

// Funder is who pays for the package part of a stay.
type Funder string

const (
	FunderNDIS       Funder = "ndis"
	FunderNDISSTA    Funder = "ndis_sta"
	FunderSelf       Funder = "self"
	FunderFoundation Funder = "foundation"
)

// IsNDIS reports whether the funder is any NDIS variant.
func (f Funder) IsNDIS() bool {
	return f == FunderNDIS || f == FunderNDISSTA
}

// FamilyHolidaySupport is the package family priced by manual quotation
// where only accommodation is charged directly.
const FamilyHolidaySupport = "holiday_support"

// Funding labels shown against priced line items.
const (
	FundingLabelNDIS = "NDIS"
	FundingLabelSelf = "Self/Foundation"
)

// PackageLineItem is one priced component of a dynamic package.
// An empty RateType means the item applies to every day.
type PackageLineItem struct {
	ID           uuid.UUID    `json:"id"`
	Type         LineItemType `json:"line_item_type"`
	RateType     RateType     `json:"rate_type,omitempty"`
	RateCategory RateCategory `json:"rate_category"`
	CareTime     CareTime     `json:"care_time,omitempty"`
	PricePerUnit float64      `json:"price_per_unit"`
	Code         string       `json:"code"`
	Description  string       `json:"description"`
	FundingLabel string       `json:"funding_label,omitempty"`
}

// Package is an accommodation package. A package with a StaticCode is priced
// from a fixed hourly table; otherwise from its LineItems.
type Package struct {
	ID          uuid.UUID         `json:"id"`
	Code        string            `json:"code"`
	Name        string            `json:"name"`
	Funder      Funder            `json:"funder"`
	Family      string            `json:"family,omitempty"`
	CustomQuote bool              `json:"custom_quote"`
	StaticCode  StaticPackageCode `json:"static_code,omitempty"`
	LineItems   []PackageLineItem `json:"line_items"`
	CreatedAt   time.Time         `json:"created_at"`
}

// IsStatic reports whether the package is priced from a fixed rate table.
func (p Package) IsStatic() bool {
	return p.StaticCode != ""
}

// IsHolidaySupport reports whether the package belongs to the holiday-support family.
func (p Package) IsHolidaySupport() bool {
	return p.Family == FamilyHolidaySupport
}

// FundingLabel returns the default funding label for the package's items.
func (p Package) FundingLabel() string {
	if p.Funder.IsNDIS() {
		return FundingLabelNDIS
	}
	return FundingLabelSelf
}

// CourseFlag records whether the guest attends the in-stay course.
type CourseFlag struct {
	HasCourse bool `json:"has_course"`
}

// PricingInput is everything the line-item pricer reads besides the items.
type PricingInput struct {
	Days         []DayDescriptor
	Nights       int
	Care         CareAnalysis
	Course       CourseFlag
	CustomQuote  bool
	FundingLabel string
}

// PricedLineItem is one row of the pricing table. Total = Rate × Quantity.
type PricedLineItem struct {
	Description       string  `json:"description"`
	Code              string  `json:"code"`
	Rate              float64 `json:"rate"`
	Quantity          float64 `json:"quantity"`
	Total             float64 `json:"total"`
	RateCategoryLabel string  `json:"rate_category_label"`
	UnitLabel         string  `json:"unit_label"`
	FundingLabel      string  `json:"funding_label"`
}
