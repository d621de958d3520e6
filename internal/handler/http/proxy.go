package http

import (
	"net/http"

	"github.com/MKhiriev/go-kobo-sync/internal/app"
	"github.com/MKhiriev/go-kobo-sync/internal/logger"
	"github.com/MKhiriev/go-kobo-sync/internal/synctoken"
	"github.com/go-chi/chi/v5"
)

// proxy relays device calls this service does not implement to the vendor
// store API and writes the vendor answer back as is, except for the sync
// token, which is re-wrapped so the device keeps carrying the local state.
func (h *Handler) proxy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token := synctoken.Decode(r.Header.Get(synctoken.HeaderName))

	request, err := h.proxyRequest(r, token)
	if err != nil {
		log.Err(err).Str("func", "*Handler.proxy").Send()
		http.Error(w, ErrReadingBody.Error(), http.StatusBadRequest)
		return
	}

	response, err := h.services.UpstreamProxy.Forward(ctx, request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.proxy").Str("path", request.Path).Msg(app.MsgUpstreamFailed)
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	for name, values := range response.Header {
		for _, value := range values {
			w.Header().Add(name, value)
		}
	}

	if response.Token != token {
		encoded, err := synctoken.Encode(response.Token)
		if err != nil {
			log.Err(err).Str("func", "*Handler.proxy").Msg("error encoding sync token")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
		w.Header().Set(synctoken.HeaderName, encoded)
	}
	if response.Continue {
		w.Header().Set(synctoken.ContinueHeaderName, synctoken.ContinueValue)
	}

	w.WriteHeader(response.StatusCode)
	if _, err = w.Write(response.Body); err != nil {
		log.Err(err).Str("func", "*Handler.proxy").Msg("error writing proxied response")
	}
}

// bookDownload answers download links outside the library file server.
// Book files are not served by the sync API, and forwarding the link to the
// vendor would leak the device token.
func (h *Handler) bookDownload(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Warn().
		Str("func", "*Handler.bookDownload").
		Str("book_id", chi.URLParam(r, bookIDURLParam)).
		Msg(app.MsgBookDownloadNotServed)
	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
