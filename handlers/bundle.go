package handlers

// HandlerBundle groups the handlers handed to route registration.
type HandlerBundle struct {
	Catalog *CatalogHandler
	Booking *BookingHandler
	Admin   *AdminHandler
}
