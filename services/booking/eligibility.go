package booking

import (
	"context"
	"sync"

	"poojaconnect/models"
)

// FilterEligiblePriests narrows priests to those serving the zone (primary
// zone or a coverage link) that speak the preferred language when one is
// given. The filter is stable: candidates keep their input order, and the
// engine takes the first fit rather than ranking. An empty result is a valid
// "no eligible priest" outcome, not an error.
func FilterEligiblePriests(priests []models.Priest, linksByPriest map[string][]models.PriestZone, zoneID, preferredLanguage string) []models.Priest {
	var eligible []models.Priest
	for _, p := range priests {
		if !p.IsActive {
			continue
		}
		if !servesZone(&p, linksByPriest[p.ID], zoneID) {
			continue
		}
		if preferredLanguage != "" && !p.SpeaksLanguage(preferredLanguage) {
			continue
		}
		eligible = append(eligible, p)
	}
	return eligible
}

func servesZone(p *models.Priest, links []models.PriestZone, zoneID string) bool {
	if p.PrimaryZoneID == zoneID {
		return true
	}
	for _, link := range links {
		if link.ZoneID == zoneID {
			return true
		}
	}
	return false
}

// loadZoneLinks fetches every priest's zone links concurrently. The reads
// have no side effects, so the fan-out is safe; results land in a map keyed
// by priest ID and the caller keeps its own ordering.
func (s *DefaultBookingService) loadZoneLinks(ctx context.Context, priests []models.Priest) (map[string][]models.PriestZone, error) {
	type result struct {
		priestID string
		links    []models.PriestZone
		err      error
	}

	resultsCh := make(chan result, len(priests))
	var wg sync.WaitGroup
	for _, p := range priests {
		wg.Add(1)
		go func(priestID string) {
			defer wg.Done()
			links, err := s.Priests.GetZoneLinks(ctx, priestID)
			resultsCh <- result{priestID: priestID, links: links, err: err}
		}(p.ID)
	}
	wg.Wait()
	close(resultsCh)

	linksByPriest := make(map[string][]models.PriestZone, len(priests))
	for r := range resultsCh {
		if r.err != nil {
			return nil, r.err
		}
		linksByPriest[r.priestID] = r.links
	}
	return linksByPriest, nil
}
