package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gigbook/gigbook-backend/database"
	"github.com/gigbook/gigbook-backend/errs"
	"github.com/go-chi/chi/v5"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	venueHandler  venueHandler
	artistHandler artistHandler
	showHandler   showHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database) *routeHandlers {
	return &routeHandlers{
		venueHandler:  newVenueHandler(database.VenueRepo()),
		artistHandler: newArtistHandler(database.ArtistRepo()),
		showHandler:   newShowHandler(database.ShowRepo()),
	}
}

// urlID reads a numeric id URL parameter. Route patterns already
// constrain these to digits, so a failure here means an overflow.
func urlID(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errs.NewBadRequestError(fmt.Sprintf("invalid %s", name))
	}
	return uint(id), nil
}
