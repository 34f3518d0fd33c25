package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/osse101/ShopBot_Go/internal/logger"
	"github.com/osse101/ShopBot_Go/internal/middleware"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// When it returns an error the response has already been written.
//
//	var req MoveRequest
//	if err := DecodeAndValidateRequest(r, w, &req, OpMove); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, op string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "op", op, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}
	log.Debug(LogMsgRequestDecoded, "op", op)

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(LogMsgValidationFailed, "op", op, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetQueryParam returns a required query parameter. When ok is false the
// response has already been written.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(LogMsgMissingQueryParam, "param", paramName)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// entityIDFrom reads the id parsed by middleware.EntityID
func entityIDFrom(r *http.Request, w http.ResponseWriter) (int64, bool) {
	id, ok := middleware.GetEntityID(r.Context())
	if !ok {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, middleware.URLParamEntityID))
	}
	return id, ok
}

// locationIDFrom reads the id parsed by middleware.LocationID
func locationIDFrom(r *http.Request, w http.ResponseWriter) (int64, bool) {
	id, ok := middleware.GetLocationID(r.Context())
	if !ok {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, middleware.URLParamLocationID))
	}
	return id, ok
}
