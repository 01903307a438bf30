package http

import (
	"net/http"

	"github.com/MKhiriev/go-stellar-kit/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.appInfo.GetAppInfo(r.Context()), http.StatusOK)
}
