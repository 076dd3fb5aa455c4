package api

import (
	"net/http"

	"github.com/gigbook/gigbook-backend/database"
	"github.com/gigbook/gigbook-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type showHandler struct {
	responder Responder
	logger    zerolog.Logger
	showRepo  *database.ShowRepo
}

func newShowHandler(showRepo *database.ShowRepo) showHandler {
	logger := log.With().Str("handlerName", "showHandler").Logger()

	return showHandler{
		responder: NewResponder(logger),
		logger:    logger,
		showRepo:  showRepo,
	}
}

// listShows returns every show joined with its venue and artist.
func (h showHandler) listShows() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listings, err := h.showRepo.All()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("list", "shows", err))
			return
		}

		views := make([]ShowView, 0, len(listings))
		for _, listing := range listings {
			views = append(views, newShowView(listing))
		}

		h.responder.WriteJSON(w, views)
	}
}

// newShowForm returns the blank scaffold a show form needs.
func (h showHandler) newShowForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]string{
			"artist_id":  "",
			"venue_id":   "",
			"start_time": "",
		})
	}
}

// createShow books the artist at the venue. Booking a pair that
// already has a show moves its start time instead of adding a row.
func (h showHandler) createShow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := parseShowForm(r)
		if err != nil {
			// An unparseable timestamp is surfaced, never silently classified
			if errs.IsParse(err) {
				h.responder.WriteError(w, err)
				return
			}
			h.logger.Error().Err(err).Msg("rejecting show submission")
			h.responder.WriteNotice(w, "error", "An error occurred. Show could not be listed.")
			return
		}

		if err := h.showRepo.Book(input.VenueID, input.ArtistID, input.StartTime); err != nil {
			h.logger.Error().Err(errs.NewDatabaseError("create", "show", err)).Msg("show booking failed")
			h.responder.WriteNotice(w, "error", "An error occurred. Show could not be listed.")
			return
		}

		h.responder.WriteNotice(w, "success", "Show was successfully listed!")
	}
}
