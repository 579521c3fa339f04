package plan_models

// Itinerary is the document the planner model returns after JSON parsing.
// It is owned by a single validation pass; every pipeline stage clones it
// before mutating so composing stages in either order stays safe.
type Itinerary struct {
	TripName         string            `json:"tripName"`
	Destination      string            `json:"destination"`
	DurationDays     int               `json:"durationDays"`
	Hotels           []Hotel           `json:"hotels"`
	Itinerary        []Day             `json:"itinerary"`
	PlacesToVisit    []Place           `json:"placesToVisit"`
	DailyCosts       []DailyCost       `json:"dailyCosts,omitempty"`
	GrandTotal       float64           `json:"grandTotal,omitempty"`
	BudgetCompliance *BudgetCompliance `json:"budgetCompliance,omitempty"`
	MissingPrices    []string          `json:"missingPrices,omitempty"`
}

type Hotel struct {
	HotelName      string    `json:"hotelName"`
	HotelAddress   string    `json:"hotelAddress,omitempty"`
	Price          string    `json:"price,omitempty"`
	Rating         float64   `json:"rating,omitempty"`
	Description    string    `json:"description,omitempty"`
	GeoCoordinates *GeoPoint `json:"geoCoordinates,omitempty"`
}

// Day holds one day of the trip. Plan is expected non-empty and
// time-ordered ascending; the validator flags days that are not.
type Day struct {
	Day   int        `json:"day"`
	Theme string     `json:"theme,omitempty"`
	Plan  []PlanItem `json:"plan"`
}

// PlanItem is a single scheduled entry. Whether it is an attraction or a
// logistics entry (meal, transit, hotel op, rest) is derived at read time
// by the classifier, never stored.
type PlanItem struct {
	Time           string    `json:"time"`
	PlaceName      string    `json:"placeName"`
	PlaceDetails   string    `json:"placeDetails,omitempty"`
	TicketPricing  string    `json:"ticketPricing,omitempty"`
	TimeTravel     string    `json:"timeTravel,omitempty"`
	GeoCoordinates *GeoPoint `json:"geoCoordinates,omitempty"`
}

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Place struct {
	PlaceName      string    `json:"placeName"`
	PlaceDetails   string    `json:"placeDetails,omitempty"`
	TicketPricing  string    `json:"ticketPricing,omitempty"`
	TimeToTravel   string    `json:"timeToTravel,omitempty"`
	GeoCoordinates *GeoPoint `json:"geoCoordinates,omitempty"`
}

type DailyCost struct {
	Day       int           `json:"day"`
	Breakdown CostBreakdown `json:"breakdown"`
}

// CostBreakdown must satisfy Subtotal = Accommodation+Meals+Activities+Transport
// within one currency unit; the budget reconciler enforces it.
type CostBreakdown struct {
	Accommodation float64 `json:"accommodation"`
	Meals         float64 `json:"meals"`
	Activities    float64 `json:"activities"`
	Transport     float64 `json:"transport"`
	Subtotal      float64 `json:"subtotal"`
}

type BudgetCompliance struct {
	UserBudget   float64 `json:"userBudget"`
	TotalCost    float64 `json:"totalCost"`
	Remaining    float64 `json:"remaining"`
	WithinBudget bool    `json:"withinBudget"`
}

// Clone returns a deep copy of the document.
func (it Itinerary) Clone() Itinerary {
	out := it

	if it.Hotels != nil {
		out.Hotels = make([]Hotel, len(it.Hotels))
		for i, h := range it.Hotels {
			out.Hotels[i] = h
			out.Hotels[i].GeoCoordinates = cloneGeo(h.GeoCoordinates)
		}
	}

	if it.Itinerary != nil {
		out.Itinerary = make([]Day, len(it.Itinerary))
		for i, d := range it.Itinerary {
			out.Itinerary[i] = d
			out.Itinerary[i].Plan = ClonePlan(d.Plan)
		}
	}

	if it.PlacesToVisit != nil {
		out.PlacesToVisit = make([]Place, len(it.PlacesToVisit))
		for i, p := range it.PlacesToVisit {
			out.PlacesToVisit[i] = p
			out.PlacesToVisit[i].GeoCoordinates = cloneGeo(p.GeoCoordinates)
		}
	}

	if it.DailyCosts != nil {
		out.DailyCosts = make([]DailyCost, len(it.DailyCosts))
		copy(out.DailyCosts, it.DailyCosts)
	}

	if it.BudgetCompliance != nil {
		bc := *it.BudgetCompliance
		out.BudgetCompliance = &bc
	}

	if it.MissingPrices != nil {
		out.MissingPrices = make([]string, len(it.MissingPrices))
		copy(out.MissingPrices, it.MissingPrices)
	}

	return out
}

// ClonePlan returns a deep copy of one day's plan list.
func ClonePlan(plan []PlanItem) []PlanItem {
	if plan == nil {
		return nil
	}
	out := make([]PlanItem, len(plan))
	for i, item := range plan {
		out[i] = item
		out[i].GeoCoordinates = cloneGeo(item.GeoCoordinates)
	}
	return out
}

func cloneGeo(g *GeoPoint) *GeoPoint {
	if g == nil {
		return nil
	}
	c := *g
	return &c
}
