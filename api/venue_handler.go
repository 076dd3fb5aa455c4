package api

import (
	"net/http"
	"time"

	"github.com/gigbook/gigbook-backend/database"
	"github.com/gigbook/gigbook-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type venueHandler struct {
	responder Responder
	logger    zerolog.Logger
	venueRepo *database.VenueRepo
}

func newVenueHandler(venueRepo *database.VenueRepo) venueHandler {
	logger := log.With().Str("handlerName", "venueHandler").Logger()

	return venueHandler{
		responder: NewResponder(logger),
		logger:    logger,
		venueRepo: venueRepo,
	}
}

// listVenues returns all venues grouped by their exact (city, state)
// pair. Groups are ordered by city then state, venues within a group
// by id.
func (h venueHandler) listVenues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locations, err := h.venueRepo.Locations()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("list", "venues", err))
			return
		}

		areas := make([]Area, 0, len(locations))
		for _, location := range locations {
			venues, err := h.venueRepo.FindByLocation(location.City, location.State)
			if err != nil {
				h.responder.WriteError(w, errs.NewDatabaseError("list", "venues", err))
				return
			}
			areas = append(areas, Area{City: location.City, State: location.State, Venues: venues})
		}

		h.responder.WriteJSON(w, areas)
	}
}

// searchVenues matches the submitted term as a case-insensitive
// substring of venue names only.
func (h venueHandler) searchVenues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed form body"))
			return
		}

		term := r.PostForm.Get("search_term")
		data, err := h.venueRepo.SearchByName(term)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("search", "venues", err))
			return
		}

		h.responder.WriteJSON(w, SearchResponse{Count: len(data), Data: data, SearchTerm: term})
	}
}

// getVenue returns the venue's fields plus its shows classified into
// past and upcoming relative to the current instant.
func (h venueHandler) getVenue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueID, err := urlID(r, "venueID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		venue, err := h.venueRepo.FindByID(venueID)
		if err != nil {
			if errs.IsNotFound(err) {
				h.responder.WriteError(w, err)
			} else {
				h.responder.WriteError(w, errs.NewDatabaseError("find", "venue", err))
			}
			return
		}

		shows, err := h.venueRepo.Shows(venueID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("list shows for", "venue", err))
			return
		}

		past, upcoming := partitionVenueShows(shows, time.Now().UTC())
		h.responder.WriteJSON(w, newVenueDetail(venue, past, upcoming))
	}
}

// newVenueForm returns the blank scaffold a venue form needs.
func (h venueHandler) newVenueForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, VenueInput{Genres: []string{}})
	}
}

func (h venueHandler) createVenue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := parseVenueForm(r)
		if err != nil {
			h.logger.Error().Err(err).Msg("rejecting venue submission")
			h.responder.WriteNotice(w, "error", "An error occurred. Venue "+input.Name+" could not be listed.")
			return
		}

		venue := venueFromInput(input)
		if err := h.venueRepo.Add(&venue); err != nil {
			h.logger.Error().Err(errs.NewDatabaseError("create", "venue", err)).Msg("venue insert failed")
			h.responder.WriteNotice(w, "error", "An error occurred. Venue "+input.Name+" could not be listed.")
			return
		}

		h.responder.WriteJSON(w, Notice{
			Status:  "success",
			Message: "Venue " + venue.Name + " was successfully listed!",
			VenueID: venue.ID,
		})
	}
}

// editVenueForm returns the venue prefilled for editing.
func (h venueHandler) editVenueForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueID, err := urlID(r, "venueID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		venue, err := h.venueRepo.FindByID(venueID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, venue)
	}
}

// editVenue overwrites every mutable field with the submitted values.
func (h venueHandler) editVenue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueID, err := urlID(r, "venueID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		venue, err := h.venueRepo.FindByID(venueID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		input, err := parseVenueForm(r)
		if err != nil {
			h.logger.Error().Err(err).Msg("rejecting venue edit submission")
			h.responder.WriteNotice(w, "error", "An error occurred. Venue "+venue.Name+" could not be edited.")
			return
		}

		applyVenueInput(venue, input)
		if err := h.venueRepo.Update(venue); err != nil {
			h.logger.Error().Err(errs.NewDatabaseError("update", "venue", err)).Msg("venue update failed")
			h.responder.WriteNotice(w, "error", "An error occurred. Venue "+venue.Name+" could not be edited.")
			return
		}

		h.responder.WriteJSON(w, Notice{
			Status:  "success",
			Message: "Venue " + venue.Name + " was successfully edited!",
			VenueID: venueID,
		})
	}
}

// deleteVenueForm returns the venue identity for the delete confirm view.
func (h venueHandler) deleteVenueForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueID, err := urlID(r, "venueID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		venue, err := h.venueRepo.FindByID(venueID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, venue)
	}
}

// deleteVenue removes the venue and, via the cascade constraint, its
// shows. A failed delete keeps the venue id in the notice so the
// client can return to the detail view rather than a dead end.
func (h venueHandler) deleteVenue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueID, err := urlID(r, "venueID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.venueRepo.FindByID(venueID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.venueRepo.Delete(venueID); err != nil {
			h.logger.Error().Err(errs.NewDatabaseError("delete", "venue", err)).Msg("venue delete failed")
			h.responder.WriteJSON(w, Notice{
				Status:  "error",
				Message: "An error occurred. Venue could not be deleted.",
				VenueID: venueID,
			})
			return
		}

		h.responder.WriteNotice(w, "success", "Venue deleted successfully!")
	}
}
