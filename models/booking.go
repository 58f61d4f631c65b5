package models

import "time"

// BookingStatus is the closed set of booking states.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending_confirmation"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid reports whether s is one of the recognized statuses. Administrative
// updates reject anything else.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is a customer's request/outcome record. BookingEndTime is always
// derived server-side from the start time and the pooja duration.
type Booking struct {
	ID                string        `bson:"id" json:"id"`
	PoojaID           string        `bson:"poojaId" json:"poojaId"`
	ZoneID            string        `bson:"zoneId" json:"zoneId"`
	CustomerName      string        `bson:"customerName" json:"customerName"`
	CustomerPhone     string        `bson:"customerPhone" json:"customerPhone"`
	CustomerEmail     string        `bson:"customerEmail,omitempty" json:"customerEmail,omitempty"`
	AddressLine1      string        `bson:"addressLine1" json:"addressLine1"`
	AddressLine2      string        `bson:"addressLine2,omitempty" json:"addressLine2,omitempty"`
	Landmark          string        `bson:"landmark,omitempty" json:"landmark,omitempty"`
	Pincode           string        `bson:"pincode" json:"pincode"`
	PreferredLanguage string        `bson:"preferredLanguage,omitempty" json:"preferredLanguage,omitempty"`
	WithKit           bool          `bson:"withKit" json:"withKit"`
	BookingDate       string        `bson:"bookingDate" json:"bookingDate"`           // "YYYY-MM-DD"
	BookingStartTime  string        `bson:"bookingStartTime" json:"bookingStartTime"` // "HH:MM"
	BookingEndTime    string        `bson:"bookingEndTime" json:"bookingEndTime"`     // "HH:MM"
	Status            BookingStatus `bson:"status" json:"status"`
	AssignedPriestID  string        `bson:"assignedPriestId,omitempty" json:"assignedPriestId,omitempty"`
	CreatedAt         time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// BookingDetail bundles a booking with its resolved pooja and zone for the
// booking-status endpoint.
type BookingDetail struct {
	Booking
	Pooja *Pooja `json:"pooja,omitempty"`
	Zone  *Zone  `json:"zone,omitempty"`
}
