package models

// Pooja is a bookable ritual service with a fixed duration and two pricing
// tiers (priest only, or priest plus samagri kit). Prices are quoted as a
// range in rupees.
type Pooja struct {
	ID                     string `bson:"id" json:"id"`
	Name                   string `bson:"name" json:"name"`
	Slug                   string `bson:"slug" json:"slug"`
	Description            string `bson:"description" json:"description"`
	DurationMinutes        int    `bson:"durationMinutes" json:"durationMinutes"`
	BasePricePriestOnlyMin int    `bson:"basePricePriestOnlyMin" json:"basePricePriestOnlyMin"`
	BasePricePriestOnlyMax int    `bson:"basePricePriestOnlyMax" json:"basePricePriestOnlyMax"`
	BasePriceWithKitMin    int    `bson:"basePriceWithKitMin" json:"basePriceWithKitMin"`
	BasePriceWithKitMax    int    `bson:"basePriceWithKitMax" json:"basePriceWithKitMax"`
	IsActive               bool   `bson:"isActive" json:"isActive"`
}
