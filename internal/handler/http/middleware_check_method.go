// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// Devices probe many vendor endpoints with methods this service does not
// implement, so a wrong method answers 404 instead of 405, the same as an
// unknown path. A request whose method is registered on the exact route
// pattern is served normally.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if routeHandlesMethod(router.Routes(), r.URL.Path, r.Method) {
			router.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	}
}

func routeHandlesMethod(routes []chi.Route, path, method string) bool {
	for _, route := range routes {
		if route.Pattern != path {
			continue
		}
		_, ok := route.Handlers[method]
		return ok
	}
	return false
}
