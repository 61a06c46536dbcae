// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package flight

// Leg is one flown segment of an itinerary.
type Leg struct {
	DepartureAirport string `json:"DepartureAirport"`
	ArrivalAirport   string `json:"ArrivalAirport"`
	DepartureTime    string `json:"DepartureTime"`
	ArrivalTime      string `json:"ArrivalTime"`
	FlightNumber     string `json:"FlightNumber"`
	AirlineName      string `json:"AirlineName"`
	AircraftType     string `json:"AircraftType"`
}

// Offer is a purchasable itinerary. Field names follow the catalog
// data so that catalog files decode without a mapping layer.
type Offer struct {
	TravelClass string `json:"TravelClass"`

	Origin            string `json:"Origin"`
	OriginAirportName string `json:"OriginAirportName"`
	OriginCityName    string `json:"OriginCityName"`
	OriginCountry     string `json:"OriginCountry"`
	OriginTimeZone    string `json:"OriginTimeZone"`

	Destination            string `json:"Destination"`
	DestinationAirportName string `json:"DestinationAirportName"`
	DestinationCityName    string `json:"DestinationCityName"`
	DestinationCountry     string `json:"DestinationCountry"`
	DestinationTimeZone    string `json:"DestinationTimeZone"`

	IsDirect bool `json:"IsDirect"`

	// DepartureTime and ArrivalTime are ISO 8601 date-times for the
	// whole itinerary.
	DepartureTime string `json:"DepartureTime"`
	ArrivalTime   string `json:"ArrivalTime"`

	// TotalTravelTimeMinutes is a decimal integer carried as text.
	TotalTravelTimeMinutes string   `json:"TotalTravelTimeMinutes"`
	FlightNumbers          []string `json:"FlightNumbers"`

	BaggageAmount string `json:"BaggageAmount"`
	BaggageType   string `json:"BaggageType"`

	// Cost is the formatted display price. Use CostFloat for any
	// comparison.
	Cost      string  `json:"Cost"`
	CostFloat float64 `json:"CostFloat"`

	// PurchasingId uniquely identifies the offer within a catalog and
	// is the identifier carried in share references.
	PurchasingId string `json:"PurchasingId"`

	Legs []Leg `json:"Legs"`

	CostBelowAverage    float64 `json:"CostBelowAverage"`
	PercentBelowAverage float64 `json:"PercentBelowAverage"`
	SeatsAvailable      int     `json:"SeatsAvailable"`
}

// StopCount returns the number of intermediate stops: one less than
// the number of legs.
func (offer Offer) StopCount() int {
	return len(offer.Legs) - 1
}

// Airline returns the airline operating the first leg, or "" for an
// offer with no legs.
func (offer Offer) Airline() string {
	if len(offer.Legs) == 0 {
		return ""
	}
	return offer.Legs[0].AirlineName
}

// DepartureHour returns the itinerary departure as a decimal hour in
// [0, 24). The second result is false when the timestamp cannot be
// parsed.
func (offer Offer) DepartureHour() (float64, bool) {
	return DecimalHour(offer.DepartureTime)
}

// ArrivalHour returns the itinerary arrival as a decimal hour in
// [0, 24). The second result is false when the timestamp cannot be
// parsed.
func (offer Offer) ArrivalHour() (float64, bool) {
	return DecimalHour(offer.ArrivalTime)
}

// Route returns "ORIGIN → DESTINATION".
func (offer Offer) Route() string {
	return offer.Origin + " → " + offer.Destination
}
