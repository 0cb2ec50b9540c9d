package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/itemservice/pkg/errhttp"
	"github.com/ghuser/itemservice/pkg/httpx"
	pkgvalidator "github.com/ghuser/itemservice/pkg/validator"
	appsvcs "github.com/ghuser/itemservice/services/item/application/services"
)

// CreateItemRequest is the request body for POST /items.
// Price and quantity are pointers so an explicit 0 is accepted and a missing
// field is not.
type CreateItemRequest struct {
	Name     string `json:"item_name" validate:"required,min=1,max=255,trimmed" example:"apple"`
	Price    *int   `json:"price"     validate:"required,gte=0"                 example:"500"`
	Quantity *int   `json:"quantity"  validate:"required,gte=0"                 example:"10"`
} // @name CreateItemRequest

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new item.
//
//	@Summary		Create item
//	@Description	Saves a new item; the id is generated by the store
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item to create"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Create(r.Context(), req.Name, *req.Price, *req.Quantity)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/items/"+strconv.FormatInt(item.ID, 10))
	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}
