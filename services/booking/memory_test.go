package booking

import (
	"context"
	"sync"
	"time"

	bookingRepo "poojaconnect/database/repository/booking"
	poojaRepo "poojaconnect/database/repository/pooja"
	priestRepo "poojaconnect/database/repository/priest"
	slotRepo "poojaconnect/database/repository/slot"
	zoneRepo "poojaconnect/database/repository/zone"
	"poojaconnect/models"
)

// In-memory repositories used by the engine tests. The slot fake guards its
// reserve with a mutex so the compare-and-set contract holds under the race
// detector.

type memPoojaRepo struct {
	poojas []models.Pooja
}

func (m *memPoojaRepo) GetAllActive(ctx context.Context) ([]models.Pooja, error) {
	var out []models.Pooja
	for _, p := range m.poojas {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPoojaRepo) GetByID(ctx context.Context, id string) (*models.Pooja, error) {
	for i := range m.poojas {
		if m.poojas[i].ID == id {
			p := m.poojas[i]
			return &p, nil
		}
	}
	return nil, poojaRepo.ErrNotFound
}

func (m *memPoojaRepo) GetBySlug(ctx context.Context, slug string) (*models.Pooja, error) {
	for i := range m.poojas {
		if m.poojas[i].Slug == slug {
			p := m.poojas[i]
			return &p, nil
		}
	}
	return nil, poojaRepo.ErrNotFound
}

func (m *memPoojaRepo) Create(ctx context.Context, pooja *models.Pooja) error {
	m.poojas = append(m.poojas, *pooja)
	return nil
}

type memZoneRepo struct {
	zones []models.Zone
}

func (m *memZoneRepo) GetAllActive(ctx context.Context) ([]models.Zone, error) {
	var out []models.Zone
	for _, z := range m.zones {
		if z.IsActive {
			out = append(out, z)
		}
	}
	return out, nil
}

func (m *memZoneRepo) GetByID(ctx context.Context, id string) (*models.Zone, error) {
	for i := range m.zones {
		if m.zones[i].ID == id {
			z := m.zones[i]
			return &z, nil
		}
	}
	return nil, zoneRepo.ErrNotFound
}

func (m *memZoneRepo) Create(ctx context.Context, zone *models.Zone) error {
	m.zones = append(m.zones, *zone)
	return nil
}

func (m *memZoneRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.zones)), nil
}

type memPriestRepo struct {
	priests []models.Priest
	links   map[string][]models.PriestZone
}

func (m *memPriestRepo) GetActive(ctx context.Context) ([]models.Priest, error) {
	var out []models.Priest
	for _, p := range m.priests {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPriestRepo) GetAll(ctx context.Context) ([]models.Priest, error) {
	return append([]models.Priest(nil), m.priests...), nil
}

func (m *memPriestRepo) GetByID(ctx context.Context, id string) (*models.Priest, error) {
	for i := range m.priests {
		if m.priests[i].ID == id {
			p := m.priests[i]
			return &p, nil
		}
	}
	return nil, priestRepo.ErrNotFound
}

func (m *memPriestRepo) Create(ctx context.Context, priest *models.Priest) error {
	m.priests = append(m.priests, *priest)
	return nil
}

func (m *memPriestRepo) CreateZoneLink(ctx context.Context, link *models.PriestZone) error {
	if m.links == nil {
		m.links = make(map[string][]models.PriestZone)
	}
	m.links[link.PriestID] = append(m.links[link.PriestID], *link)
	return nil
}

func (m *memPriestRepo) GetZoneLinks(ctx context.Context, priestID string) ([]models.PriestZone, error) {
	return m.links[priestID], nil
}

type memSlotRepo struct {
	mu       sync.Mutex
	slots    []models.AvailabilitySlot
	reserves int
}

func (m *memSlotRepo) GetByPriestID(ctx context.Context, priestID string) ([]models.AvailabilitySlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.AvailabilitySlot
	for _, s := range m.slots {
		if s.PriestID == priestID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSlotRepo) CreateMany(ctx context.Context, slots []models.AvailabilitySlot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots = append(m.slots, slots...)
	return nil
}

func (m *memSlotRepo) Reserve(ctx context.Context, slotID string) (*models.AvailabilitySlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.slots {
		if m.slots[i].ID != slotID {
			continue
		}
		if m.slots[i].IsBooked {
			return nil, slotRepo.ErrSlotAlreadyBooked
		}
		m.slots[i].IsBooked = true
		m.reserves++
		s := m.slots[i]
		return &s, nil
	}
	return nil, slotRepo.ErrSlotNotFound
}

func (m *memSlotRepo) CountUpcoming(ctx context.Context, priestID string, from time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, s := range m.slots {
		if s.PriestID == priestID && !s.StartTime.Before(from) {
			n++
		}
	}
	return n, nil
}

func (m *memSlotRepo) bookedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, s := range m.slots {
		if s.IsBooked {
			n++
		}
	}
	return n
}

type memBookingRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func (m *memBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if booking.ID == "" {
		booking.ID = time.Now().Format("20060102150405.000000000")
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	m.bookings = append(m.bookings, *booking)
	return nil
}

func (m *memBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			b := m.bookings[i]
			return &b, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (m *memBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Booking(nil), m.bookings...), nil
}

func (m *memBookingRepo) Update(ctx context.Context, id string, update models.BookingUpdate) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID != id {
			continue
		}
		if update.Status != nil {
			m.bookings[i].Status = *update.Status
		}
		if update.AssignedPriestID != nil {
			m.bookings[i].AssignedPriestID = *update.AssignedPriestID
		}
		m.bookings[i].UpdatedAt = time.Now()
		b := m.bookings[i]
		return &b, nil
	}
	return nil, bookingRepo.ErrNotFound
}
