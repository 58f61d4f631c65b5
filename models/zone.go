package models

// Zone represents a geographic service area. Zones are reference data and do
// not change after seeding.
type Zone struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	IsActive bool   `bson:"isActive" json:"isActive"`
}
