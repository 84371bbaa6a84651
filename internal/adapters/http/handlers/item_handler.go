package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-lists-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-lists-api/internal/domain"
	"github.com/jsamuelsen11/todo-lists-api/internal/ports"
)

// ItemHandler handles HTTP requests for the items nested under a todo list.
// Every handler that addresses a list checks it exists first, then checks
// the item belongs to it, before touching the body or mutating anything.
type ItemHandler struct {
	lists ports.ListService
	items ports.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(lists ports.ListService, items ports.ItemService) *ItemHandler {
	return &ItemHandler{lists: lists, items: items}
}

// ListItems handles GET /lists/{list_id}/items. An unknown list yields [].
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	listID, err := parseID(r, ParamListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	items, err := h.items.ListItems(r.Context(), listID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToItemResponses(items))
}

// CreateItem handles POST /lists/{list_id}/items.
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	listID, err := parseID(r, ParamListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !requireList(w, r, h.lists, listID) {
		return
	}

	var req dto.CreateItemRequest
	if !decodeBody(w, r, dto.SchemaCreateItem, &req) {
		return
	}

	created, err := h.items.CreateItem(r.Context(), listID, req.ToDraft())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToItemResponse(&created))
}

// GetItem handles GET /lists/{list_id}/items/{item_id}.
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	listID, itemID, ok := h.parseItemPath(w, r)
	if !ok || !requireList(w, r, h.lists, listID) {
		return
	}

	item, found, err := h.items.GetItem(r.Context(), listID, itemID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !found {
		dto.WriteErrorResponse(w, r, &domain.NotFoundError{Resource: resourceItem, ID: itemID})
		return
	}

	writeJSON(w, http.StatusOK, dto.ToItemResponse(&item))
}

// UpdateItem handles PUT /lists/{list_id}/items/{item_id}. A complete flag
// in the body moves the item between NOT_COMPLETED and COMPLETED.
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	listID, itemID, ok := h.parseItemPath(w, r)
	if !ok || !requireList(w, r, h.lists, listID) || !h.requireItem(w, r, listID, itemID) {
		return
	}

	var req dto.UpdateItemRequest
	if !decodeBody(w, r, dto.SchemaUpdateItem, &req) {
		return
	}

	updated, found, err := h.items.UpdateItem(r.Context(), listID, itemID, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if !found {
		dto.WriteErrorResponse(w, r, &domain.NotFoundError{Resource: resourceItem, ID: itemID})
		return
	}

	writeJSON(w, http.StatusOK, dto.ToItemResponse(&updated))
}

// DeleteItem handles DELETE /lists/{list_id}/items/{item_id}.
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	listID, itemID, ok := h.parseItemPath(w, r)
	if !ok || !requireList(w, r, h.lists, listID) || !h.requireItem(w, r, listID, itemID) {
		return
	}

	if _, err := h.items.DeleteItem(r.Context(), listID, itemID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeEmpty(w)
}

func (h *ItemHandler) parseItemPath(w http.ResponseWriter, r *http.Request) (listID, itemID int64, ok bool) {
	listID, err := parseID(r, ParamListID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return 0, 0, false
	}
	itemID, err = parseID(r, ParamItemID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return 0, 0, false
	}
	return listID, itemID, true
}

func (h *ItemHandler) requireItem(w http.ResponseWriter, r *http.Request, listID, itemID int64) bool {
	_, found, err := h.items.GetItem(r.Context(), listID, itemID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	if !found {
		dto.WriteErrorResponse(w, r, &domain.NotFoundError{Resource: resourceItem, ID: itemID})
		return false
	}
	return true
}
