package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/ecosocial/internal/common"
)

const errInternalKind = "internal-error"

var errInvalidJSON = errors.New("invalid-json")

var errorStatuses = []struct {
	err    error
	status int
}{
	{common.ErrUsernameTaken, http.StatusConflict},
	{common.ErrEmailTaken, http.StatusConflict},
	{common.ErrAuthorNotFound, http.StatusNotFound},
	{common.ErrCreatorNotFound, http.StatusNotFound},
	{common.ErrInvalidToken, http.StatusNotFound},
	{common.ErrInvalidCredentials, http.StatusUnauthorized},
	{common.ErrInvalidDatetime, http.StatusBadRequest},
	{common.ErrInvalidInterestsFormat, http.StatusBadRequest},
	{common.ErrMissingRequiredFields, http.StatusBadRequest},
	{common.ErrMissingCredentials, http.StatusBadRequest},
	{common.ErrAuthorTopicContentRequired, http.StatusBadRequest},
	{common.ErrTokenRequired, http.StatusBadRequest},
	{errInvalidJSON, http.StatusBadRequest},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to its status and kind. Errors with no mapping are
// logged and reported as internal.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			writeJSON(w, e.status, errorResponse{Error: e.err.Error()})
			return
		}
	}

	s.logger.Error(r.Context(), "request failed",
		"request_id", RequestIDFromContext(r.Context()),
		"error", err,
	)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errInternalKind})
}
