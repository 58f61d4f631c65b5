package booking

import (
	"testing"

	"poojaconnect/models"
)

func TestFilterEligiblePriests_ZoneAndLanguage(t *testing.T) {
	priests := []models.Priest{
		{ID: "p1", PrimaryZoneID: "z1", SupportedLanguages: []string{"kannada", "hindi"}, IsActive: true},
		{ID: "p2", PrimaryZoneID: "z2", SupportedLanguages: []string{"telugu"}, IsActive: true},
		{ID: "p3", PrimaryZoneID: "z2", SupportedLanguages: []string{"hindi"}, IsActive: true},
	}
	links := map[string][]models.PriestZone{
		"p3": {{PriestID: "p3", ZoneID: "z1"}},
	}

	eligible := FilterEligiblePriests(priests, links, "z1", "hindi")
	if len(eligible) != 2 {
		t.Fatalf("expected 2 eligible priests, got %d", len(eligible))
	}
	// Stable filter: input order is preserved.
	if eligible[0].ID != "p1" || eligible[1].ID != "p3" {
		t.Fatalf("unexpected order: %s, %s", eligible[0].ID, eligible[1].ID)
	}
}

func TestFilterEligiblePriests_NoLanguagePreference(t *testing.T) {
	priests := []models.Priest{
		{ID: "p1", PrimaryZoneID: "z1", SupportedLanguages: []string{"telugu"}, IsActive: true},
	}

	eligible := FilterEligiblePriests(priests, nil, "z1", "")
	if len(eligible) != 1 {
		t.Fatalf("expected language check skipped, got %d eligible", len(eligible))
	}
}

func TestFilterEligiblePriests_InactiveExcluded(t *testing.T) {
	priests := []models.Priest{
		{ID: "p1", PrimaryZoneID: "z1", SupportedLanguages: []string{"hindi"}, IsActive: false},
	}

	if eligible := FilterEligiblePriests(priests, nil, "z1", ""); len(eligible) != 0 {
		t.Fatalf("expected inactive priest excluded, got %d", len(eligible))
	}
}

func TestFilterEligiblePriests_WrongZone(t *testing.T) {
	priests := []models.Priest{
		{ID: "p1", PrimaryZoneID: "z2", SupportedLanguages: []string{"hindi"}, IsActive: true},
	}

	if eligible := FilterEligiblePriests(priests, nil, "z1", ""); len(eligible) != 0 {
		t.Fatalf("expected no eligible priests, got %d", len(eligible))
	}
}

func TestFilterEligiblePriests_EmptyResultIsNotError(t *testing.T) {
	if eligible := FilterEligiblePriests(nil, nil, "z1", "hindi"); len(eligible) != 0 {
		t.Fatalf("expected empty result, got %d", len(eligible))
	}
}
