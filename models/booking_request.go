package models

// BookingRequest is the payload accepted by the booking endpoint. End time,
// status and priest assignment are computed by the engine and never trusted
// from the client.
type BookingRequest struct {
	PoojaID           string `json:"poojaId" binding:"required"`
	ZoneID            string `json:"zoneId" binding:"required"`
	CustomerName      string `json:"customerName" binding:"required"`
	CustomerPhone     string `json:"customerPhone" binding:"required"`
	CustomerEmail     string `json:"customerEmail"`
	AddressLine1      string `json:"addressLine1" binding:"required"`
	AddressLine2      string `json:"addressLine2"`
	Landmark          string `json:"landmark"`
	Pincode           string `json:"pincode" binding:"required"`
	PreferredLanguage string `json:"preferredLanguage"`
	WithKit           bool   `json:"withKit"`
	BookingDate       string `json:"bookingDate" binding:"required"`      // "YYYY-MM-DD"
	BookingStartTime  string `json:"bookingStartTime" binding:"required"` // "HH:MM"
}

// BookingUpdate is the payload for administrative booking updates. Both
// fields are optional; a nil field is left untouched.
type BookingUpdate struct {
	Status           *BookingStatus `json:"status"`
	AssignedPriestID *string        `json:"assignedPriestId"`
}
