// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// routeNotFound answers every unmatched request with a JSON 404.
//
// It is registered both as the router's NotFound and MethodNotAllowed
// handler, so a known path requested with an unsupported method is
// indistinguishable from an unknown path.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.Response{Success: false, Message: msgRouteNotFound}, http.StatusNotFound)
}
