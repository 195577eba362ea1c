package domain

// RoomTypeOceanView marks the ocean-view room, which NDIS-STA guests pay for in full.
const RoomTypeOceanView = "ocean_view"

// SelectedRoom is a room chosen for the stay.
// UpgradePerNight is the difference over the room included in the package.
type SelectedRoom struct {
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	PricePerNight   float64 `json:"price_per_night"`
	UpgradePerNight float64 `json:"upgrade_per_night"`
	Primary         bool    `json:"primary"`
}

// RoomCosts is the accommodation side of a stay.
type RoomCosts struct {
	Nights         int            `json:"nights"`
	Rooms          []SelectedRoom `json:"rooms"`
	Funder         Funder         `json:"funder"`
	HolidaySupport bool           `json:"holiday_support"`
}

// CostSummary is the final cost breakdown of a stay.
// When IsQuoteOnly is set the package is priced by manual quotation and
// PackageTotal is not charged.
type CostSummary struct {
	PackageTotal         float64 `json:"package_total"`
	RoomUpgradeTotal     float64 `json:"room_upgrade_total"`
	AdditionalRoomsTotal float64 `json:"additional_rooms_total"`
	OceanViewTotal       float64 `json:"ocean_view_total"`
	AccommodationTotal   float64 `json:"accommodation_total"`
	OutOfPocketTotal     float64 `json:"out_of_pocket_total"`
	GrandTotal           float64 `json:"grand_total"`
	IsQuoteOnly          bool    `json:"is_quote_only"`
}
