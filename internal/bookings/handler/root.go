package handler

import (
	"net/http"

	httputil "cleanbook/pkg/http"
	"cleanbook/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type RootHandler struct {
	message string
	log     *logger.Logger
}

func NewRootHandler(serviceTitle string, log *logger.Logger) *RootHandler {
	return &RootHandler{
		message: serviceTitle + " Backend is running",
		log:     log,
	}
}

func (h *RootHandler) Root(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, httputil.MessageResponse{Message: h.message}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Root", "operation", "WriteSuccess", "error", err)
	}
}

func (h *RootHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/", h.Root)
}
