// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-lists-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-lists-api/internal/domain"
	"github.com/jsamuelsen11/todo-lists-api/internal/ports"
)

// ListHandler handles HTTP requests for todo list CRUD.
type ListHandler struct {
	svc ports.ListService
}

// NewListHandler creates a new ListHandler with the given service port.
func NewListHandler(svc ports.ListService) *ListHandler {
	return &ListHandler{svc: svc}
}

// ListLists handles GET /lists.
func (h *ListHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.ListLists(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListResponses(lists))
}

// CreateList handles POST /lists.
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateListRequest
	if !decodeBody(w, r, dto.SchemaCreateList, &req) {
		return
	}

	created, err := h.svc.CreateList(r.Context(), req.ToDraft())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToListResponse(&created))
}

// GetList handles GET /lists/{list_id}.
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, ParamListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	list, found, err := h.svc.GetList(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !found {
		dto.WriteErrorResponse(w, r, &domain.NotFoundError{Resource: resourceList, ID: id})
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListResponse(&list))
}

// UpdateList handles PUT /lists/{list_id}. Only the supplied fields change.
// The list must exist before the body is looked at.
func (h *ListHandler) UpdateList(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, ParamListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !requireList(w, r, h.svc, id) {
		return
	}

	var req dto.UpdateListRequest
	if !decodeBody(w, r, dto.SchemaUpdateList, &req) {
		return
	}

	updated, found, err := h.svc.UpdateList(r.Context(), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !found {
		dto.WriteErrorResponse(w, r, &domain.NotFoundError{Resource: resourceList, ID: id})
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListResponse(&updated))
}

// DeleteList handles DELETE /lists/{list_id}. The list's items go with it.
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, ParamListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !requireList(w, r, h.svc, id) {
		return
	}

	if _, err := h.svc.DeleteList(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeEmpty(w)
}
