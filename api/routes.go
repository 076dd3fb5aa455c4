package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// setupRoutes wires the public booking-directory surface. Numeric id
// parameters are constrained in the pattern so non-numeric ids fall
// through to the router's 404.
func setupRoutes(r chi.Router, handlers *routeHandlers, startupTime time.Time) {
	r.Group(func(r chi.Router) {
		r.Use(RequestLogging)

		r.Get("/", home(startupTime))

		// Venue endpoints
		r.Get("/venues", handlers.venueHandler.listVenues())
		r.Post("/venues/search", handlers.venueHandler.searchVenues())
		r.Get("/venues/create", handlers.venueHandler.newVenueForm())
		r.Post("/venues/create", handlers.venueHandler.createVenue())
		r.Get("/venues/{venueID:[0-9]+}", handlers.venueHandler.getVenue())
		r.Get("/venues/{venueID:[0-9]+}/edit", handlers.venueHandler.editVenueForm())
		r.Post("/venues/{venueID:[0-9]+}/edit", handlers.venueHandler.editVenue())
		r.Get("/venues/{venueID:[0-9]+}/delete", handlers.venueHandler.deleteVenueForm())
		r.Post("/venues/{venueID:[0-9]+}/delete", handlers.venueHandler.deleteVenue())

		// Artist endpoints
		r.Get("/artists", handlers.artistHandler.listArtists())
		r.Post("/artists/search", handlers.artistHandler.searchArtists())
		r.Get("/artists/create", handlers.artistHandler.newArtistForm())
		r.Post("/artists/create", handlers.artistHandler.createArtist())
		r.Get("/artists/{artistID:[0-9]+}", handlers.artistHandler.getArtist())
		r.Get("/artists/{artistID:[0-9]+}/edit", handlers.artistHandler.editArtistForm())
		r.Post("/artists/{artistID:[0-9]+}/edit", handlers.artistHandler.editArtist())
		r.Get("/artists/{artistID:[0-9]+}/delete", handlers.artistHandler.deleteArtistForm())
		r.Post("/artists/{artistID:[0-9]+}/delete", handlers.artistHandler.deleteArtist())

		// Show endpoints
		r.Get("/shows", handlers.showHandler.listShows())
		r.Get("/shows/create", handlers.showHandler.newShowForm())
		r.Post("/shows/create", handlers.showHandler.createShow())
	})
}

// home serves the service banner with uptime.
func home(startupTime time.Time) http.HandlerFunc {
	responder := NewResponder(log.With().Str("handlerName", "home").Logger())
	return func(w http.ResponseWriter, r *http.Request) {
		responder.WriteJSON(w, map[string]any{
			"service": "gigbook-backend",
			"uptime":  time.Since(startupTime).Round(time.Second).String(),
		})
	}
}
