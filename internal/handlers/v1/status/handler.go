package status

import (
	"errors"
	"net/http"

	"github.com/carson-networks/cashier-shifts/internal/logging"
)

// Handler answers liveness probes for one service.
type Handler struct {
	Service string
}

func NewHandler(service string) Handler {
	return Handler{Service: service}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	logData.AddData("service", h.Service)
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
