package models

// Launch languages. SupportedLanguages is an open set; these constants cover
// the languages offered at launch.
const (
	LanguageKannada = "kannada"
	LanguageHindi   = "hindi"
	LanguageTelugu  = "telugu"
)

// Priest is a service provider. A priest has one optional primary zone and
// may cover further zones through PriestZone links.
type Priest struct {
	ID                 string   `bson:"id" json:"id"`
	FullName           string   `bson:"fullName" json:"fullName"`
	Phone              string   `bson:"phone" json:"phone"`
	PrimaryZoneID      string   `bson:"primaryZoneId,omitempty" json:"primaryZoneId,omitempty"`
	SupportedLanguages []string `bson:"supportedLanguages" json:"supportedLanguages"`
	IsActive           bool     `bson:"isActive" json:"isActive"`
}

// SpeaksLanguage reports whether the priest supports the given language.
func (p *Priest) SpeaksLanguage(lang string) bool {
	for _, l := range p.SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// PriestZone records that a priest serves a zone, independent of the
// primary-zone designation. Duplicate links are harmless and not deduplicated.
type PriestZone struct {
	ID       string `bson:"id" json:"id"`
	PriestID string `bson:"priestId" json:"priestId"`
	ZoneID   string `bson:"zoneId" json:"zoneId"`
}
