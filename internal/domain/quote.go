package domain

import (
	"encoding/json"

	"github.com/google/uuid"
)

// QuoteInput is a full input snapshot for one quote computation.
// Every field is read; nothing is cached between computations.
type QuoteInput struct {
	StayDates string
	Nights    int
	Holidays  []Holiday
	Care      CareSnapshot
	Package   Package
	Course    CourseFlag
	Rooms     []SelectedRoom
	Funder    Funder
}

// Quote is the derived care schedule, pricing table, and totals of a stay.
type Quote struct {
	PackageCode string           `json:"package_code"`
	PackageName string           `json:"package_name"`
	Days        []DayDescriptor  `json:"days"`
	Care        CareAnalysis     `json:"care"`
	LineItems   []PricedLineItem `json:"line_items"`
	Summary     CostSummary      `json:"summary"`
}

// QuoteRequest is a caller-supplied snapshot to be quoted by the service.
// Exactly one of PackageID, PackageCode, or StaticPackage selects the package.
type QuoteRequest struct {
	StayDates     string
	Nights        int
	PackageID     *uuid.UUID
	PackageCode   string
	StaticPackage StaticPackageCode
	Funder        Funder
	HasCourse     bool
	Care          json.RawMessage
	CareAnalysis  *CareAnalysis
	FormPages     []FormPage
	Answers       []QAPair
	Rooms         []SelectedRoom
}
