package handlers

import (
	"net/http"

	"github.com/ghuser/itemservice/pkg/errhttp"
	pkgvalidator "github.com/ghuser/itemservice/pkg/validator"
	appsvcs "github.com/ghuser/itemservice/services/item/application/services"
	"github.com/ghuser/itemservice/services/item/domain/models"
)

// UpdateItemRequest is the request body for PUT /items/{id}.
// Every field is required; partial updates are not supported.
type UpdateItemRequest struct {
	Name     string `json:"item_name" validate:"required,min=1,max=255,trimmed" example:"green apple"`
	Price    *int   `json:"price"     validate:"required,gte=0"                 example:"650"`
	Quantity *int   `json:"quantity"  validate:"required,gte=0"                 example:"4"`
} // @name UpdateItemRequest

// PutItemHandler handles PUT /items/{id} requests.
type PutItemHandler struct {
	svc *appsvcs.Services
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute overwrites an item's name, price and quantity.
// An id that matches no item is accepted and changes nothing.
//
//	@Summary		Update item
//	@Description	Overwrites all mutable fields. Unknown ids are a no-op.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			id		path	int					true	"Item id"
//	@Param			request	body	UpdateItemRequest	true	"New field values"
//	@Success		204	"No Content"
//	@Failure		400	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/items/{id} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := itemIDParam(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	fields := models.UpdateFields{Name: req.Name, Price: *req.Price, Quantity: *req.Quantity}
	if err := h.svc.Item.Update(r.Context(), id, fields); err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
