package handler

import (
	"net/http"

	apperrors "cleanbook/pkg/errors"
	httputil "cleanbook/pkg/http"
	"cleanbook/pkg/logger"

	"github.com/invopop/jsonschema"
	"github.com/julienschmidt/httprouter"
)

type schemaSource interface {
	Names() []string
	Dump() (map[string]*jsonschema.Schema, error)
}

type SchemaHandler struct {
	schemas schemaSource
	log     *logger.Logger
}

func NewSchemaHandler(schemas schemaSource, log *logger.Logger) *SchemaHandler {
	log.Info("Schema handler initialized", "schemas", schemas.Names())
	return &SchemaHandler{
		schemas: schemas,
		log:     log,
	}
}

func (h *SchemaHandler) Schema(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	defs, err := h.schemas.Dump()
	if err != nil {
		h.log.Error("Schema introspection failed", "error", err)
		appErr := apperrors.Internal("Schema introspection failed", err).WithDetail(err.Error())
		if writeErr := httputil.WriteError(w, appErr); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Schema", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, defs); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Schema", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SchemaHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/schema", h.Schema)
}
