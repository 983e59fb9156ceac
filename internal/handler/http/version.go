package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

type healthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type versionResponse struct {
	Success     bool   `json:"success"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, healthResponse{Success: true, Message: "API is healthy"}, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	utils.WriteJSON(w, versionResponse{
		Success:     true,
		Version:     h.services.AppInfoService.GetAppVersion(ctx),
		Environment: h.services.AppInfoService.GetEnvironment(ctx),
	}, http.StatusOK)
}
