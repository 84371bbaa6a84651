package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-lists-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-lists-api/internal/domain"
	"github.com/jsamuelsen11/todo-lists-api/internal/ports"
)

// Path parameter names shared with the router.
const (
	ParamListID = "list_id"
	ParamItemID = "item_id"
)

// Resource names used in not-found problem details.
const (
	resourceList = "todo list"
	resourceItem = "todo item"
)

// parseID extracts a positive int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &domain.ValidationError{
			Fields: map[string]string{"path." + param: "must be a positive integer"},
		}
	}
	return id, nil
}

// requireList writes a 404 and returns false when the list does not exist.
// Store failures are written as error responses too.
func requireList(w http.ResponseWriter, r *http.Request, lists ports.ListService, listID int64) bool {
	_, found, err := lists.GetList(r.Context(), listID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	if !found {
		dto.WriteErrorResponse(w, r, &domain.NotFoundError{Resource: resourceList, ID: listID})
		return false
	}
	return true
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// writeEmpty writes the 200 {} body returned by deletes.
func writeEmpty(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, struct{}{})
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeBody validates the request body against schema and decodes it into
// dst. The body is limited to maxJSONBodyBytes. On failure, it writes a 400
// error response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, schema dto.Schema, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := dto.Decode(r.Body, schema, dst); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
