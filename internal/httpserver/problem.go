package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/filmgrid/movies-api/internal/catalog"
)

const maxRequestBody = 1 << 20 // 1 MiB

// problemDetails is the error body for 400- and 500-class responses.
type problemDetails struct {
	Type   string               `json:"type"`
	Title  string               `json:"title"`
	Detail string               `json:"detail"`
	Errors []catalog.FieldError `json:"errors,omitempty"`
}

func validationProblem(detail string, errs []catalog.FieldError) problemDetails {
	return problemDetails{
		Type:   "ValidationFailure",
		Title:  "Validation error",
		Detail: detail,
		Errors: errs,
	}
}

func internalProblem() problemDetails {
	return problemDetails{
		Type:   "InternalServerError",
		Title:  "Internal Server Error",
		Detail: "An error occurred while processing your request",
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			s.logger.Error().Err(err).Msg("encode response")
		}
	}
}

// respondFailure is the single place where pipeline failures become HTTP
// responses: validation errors turn into itemized 400 bodies, everything else
// is logged and surfaced as an opaque 500.
func (s *Server) respondFailure(w http.ResponseWriter, op string, err error) {
	var ve *catalog.ValidationError
	if errors.As(err, &ve) {
		s.respondJSON(w, http.StatusBadRequest,
			validationProblem("One or more validation errors has occurred", ve.Errors))
		return
	}
	s.logger.Error().Err(err).Str("op", op).Msg("request failed")
	s.respondJSON(w, http.StatusInternalServerError, internalProblem())
}

func (s *Server) respondNotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
}

// decodeJSONBody reads a bounded request body. Unknown members are ignored,
// so clients sending extra fields are not rejected.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

func (s *Server) respondDecodeError(w http.ResponseWriter, err error) {
	var syntaxError *json.SyntaxError
	var typeError *json.UnmarshalTypeError

	detail := "Unable to parse request body"
	switch {
	case errors.As(err, &syntaxError):
		detail = "Malformed JSON payload"
	case errors.As(err, &typeError):
		detail = fmt.Sprintf("Invalid value for field %s", typeError.Field)
	case errors.Is(err, io.EOF):
		detail = "Request body cannot be empty"
	}
	s.respondJSON(w, http.StatusBadRequest, validationProblem(detail, nil))
}

// pathID parses the {id} route parameter. Non-UUID values behave like a route
// that matched nothing, mirroring a guid-constrained route.
func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}
