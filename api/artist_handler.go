package api

import (
	"net/http"
	"time"

	"github.com/gigbook/gigbook-backend/database"
	"github.com/gigbook/gigbook-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type artistHandler struct {
	responder  Responder
	logger     zerolog.Logger
	artistRepo *database.ArtistRepo
}

func newArtistHandler(artistRepo *database.ArtistRepo) artistHandler {
	logger := log.With().Str("handlerName", "artistHandler").Logger()

	return artistHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		artistRepo: artistRepo,
	}
}

// listArtists returns all artists ordered by ascending id.
func (h artistHandler) listArtists() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artists, err := h.artistRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("list", "artists", err))
			return
		}

		h.responder.WriteJSON(w, artists)
	}
}

// searchArtists matches the submitted term as a case-insensitive
// substring of artist names only.
func (h artistHandler) searchArtists() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed form body"))
			return
		}

		term := r.PostForm.Get("search_term")
		data, err := h.artistRepo.SearchByName(term)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("search", "artists", err))
			return
		}

		h.responder.WriteJSON(w, SearchResponse{Count: len(data), Data: data, SearchTerm: term})
	}
}

// getArtist returns the artist's fields plus its shows classified into
// past and upcoming relative to the current instant.
func (h artistHandler) getArtist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artistID, err := urlID(r, "artistID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		artist, err := h.artistRepo.FindByID(artistID)
		if err != nil {
			if errs.IsNotFound(err) {
				h.responder.WriteError(w, err)
			} else {
				h.responder.WriteError(w, errs.NewDatabaseError("find", "artist", err))
			}
			return
		}

		shows, err := h.artistRepo.Shows(artistID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("list shows for", "artist", err))
			return
		}

		past, upcoming := partitionArtistShows(shows, time.Now().UTC())
		h.responder.WriteJSON(w, newArtistDetail(artist, past, upcoming))
	}
}

// newArtistForm returns the blank scaffold an artist form needs.
func (h artistHandler) newArtistForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, ArtistInput{Genres: []string{}})
	}
}

func (h artistHandler) createArtist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := parseArtistForm(r)
		if err != nil {
			h.logger.Error().Err(err).Msg("rejecting artist submission")
			h.responder.WriteNotice(w, "error", "An error occurred. Artist "+input.Name+" could not be listed.")
			return
		}

		artist := artistFromInput(input)
		if err := h.artistRepo.Add(&artist); err != nil {
			h.logger.Error().Err(errs.NewDatabaseError("create", "artist", err)).Msg("artist insert failed")
			h.responder.WriteNotice(w, "error", "An error occurred. Artist "+input.Name+" could not be listed.")
			return
		}

		h.responder.WriteJSON(w, Notice{
			Status:   "success",
			Message:  "Artist " + artist.Name + " was successfully listed!",
			ArtistID: artist.ID,
		})
	}
}

// editArtistForm returns the artist prefilled for editing.
func (h artistHandler) editArtistForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artistID, err := urlID(r, "artistID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		artist, err := h.artistRepo.FindByID(artistID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, artist)
	}
}

// editArtist overwrites every mutable field with the submitted values.
func (h artistHandler) editArtist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artistID, err := urlID(r, "artistID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		artist, err := h.artistRepo.FindByID(artistID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		input, err := parseArtistForm(r)
		if err != nil {
			h.logger.Error().Err(err).Msg("rejecting artist edit submission")
			h.responder.WriteNotice(w, "error", "An error occurred. Artist "+artist.Name+" could not be edited.")
			return
		}

		applyArtistInput(artist, input)
		if err := h.artistRepo.Update(artist); err != nil {
			h.logger.Error().Err(errs.NewDatabaseError("update", "artist", err)).Msg("artist update failed")
			h.responder.WriteNotice(w, "error", "An error occurred. Artist "+artist.Name+" could not be edited.")
			return
		}

		h.responder.WriteJSON(w, Notice{
			Status:   "success",
			Message:  "Artist " + artist.Name + " was successfully edited!",
			ArtistID: artistID,
		})
	}
}

// deleteArtistForm returns the artist identity for the delete confirm view.
func (h artistHandler) deleteArtistForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artistID, err := urlID(r, "artistID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		artist, err := h.artistRepo.FindByID(artistID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, artist)
	}
}

// deleteArtist removes the artist and, via the cascade constraint, its
// shows. A failed delete keeps the artist id in the notice so the
// client can return to the detail view.
func (h artistHandler) deleteArtist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artistID, err := urlID(r, "artistID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.artistRepo.FindByID(artistID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.artistRepo.Delete(artistID); err != nil {
			h.logger.Error().Err(errs.NewDatabaseError("delete", "artist", err)).Msg("artist delete failed")
			h.responder.WriteJSON(w, Notice{
				Status:   "error",
				Message:  "An error occurred. Artist could not be deleted.",
				ArtistID: artistID,
			})
			return
		}

		h.responder.WriteNotice(w, "success", "Artist deleted successfully!")
	}
}
