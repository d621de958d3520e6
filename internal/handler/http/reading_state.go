package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-kobo-sync/internal/app"
	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/MKhiriev/go-kobo-sync/internal/utils"
	"github.com/MKhiriev/go-kobo-sync/models"
	"github.com/go-chi/chi/v5"
)

// getReadingState returns the reading state of one book for the device.
func (h *Handler) getReadingState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getReadingState").Msg(ErrNoUserID.Error())
		http.Error(w, ErrNoUserID.Error(), http.StatusUnauthorized)
		return
	}

	bookID, err := bookIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getReadingState").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	states, err := h.services.ReadingStateService.GetReadingState(ctx, userID, bookID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getReadingState").Msg(app.MsgGetReadingStateFailed)
		http.Error(w, app.MsgGetReadingStateFailed, statusFromError(err))
		return
	}

	utils.WriteJSON(w, states, http.StatusOK)
}

// updateReadingState merges the reading states the device pushes for the
// book in the path.
func (h *Handler) updateReadingState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.updateReadingState").Msg(ErrNoUserID.Error())
		http.Error(w, ErrNoUserID.Error(), http.StatusUnauthorized)
		return
	}

	bookID, err := bookIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateReadingState").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var request models.ReadingStateUpdateRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.updateReadingState").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	response, err := h.services.ReadingStateService.UpdateReadingStates(ctx, userID, bookID, request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateReadingState").Msg(app.MsgUpdateReadingStateFailed)
		http.Error(w, app.MsgUpdateReadingStateFailed, statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func bookIDFromRequest(r *http.Request) (int64, error) {
	bookID, err := strconv.ParseInt(chi.URLParam(r, bookIDURLParam), 10, 64)
	if err != nil || bookID <= 0 {
		return 0, ErrInvalidBookID
	}
	return bookID, nil
}
