package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/itemservice/pkg/errhttp"
	"github.com/ghuser/itemservice/pkg/httpx"
	pkgvalidator "github.com/ghuser/itemservice/pkg/validator"
	appsvcs "github.com/ghuser/itemservice/services/item/application/services"
	"github.com/ghuser/itemservice/services/item/domain/models"
)

// ListItemsQuery holds the optional search filters for GET /items.
type ListItemsQuery struct {
	ItemName string `json:"itemName" validate:"max=255"`
	MaxPrice *int   `json:"maxPrice" validate:"omitempty,gte=0"`
}

// ListItemsResponse wraps the matching items.
type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
} // @name ListItemsResponse

// ListItemsHandler handles GET /items requests.
type ListItemsHandler struct {
	svc *appsvcs.Services
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services) *ListItemsHandler {
	return &ListItemsHandler{svc: svc}
}

// Execute searches items. Both filters are optional; a blank itemName is
// ignored.
//
//	@Summary		Search items
//	@Description	Substring match on item name and inclusive ceiling on price
//	@Tags			items
//	@Produce		json
//	@Param			itemName	query		string	false	"Name contains"
//	@Param			maxPrice	query		int		false	"Maximum price (inclusive)"
//	@Success		200			{object}	ListItemsResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := ListItemsQuery{ItemName: r.URL.Query().Get("itemName")}
	if raw := r.URL.Query().Get("maxPrice"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "maxPrice must be an integer"})
			return
		}
		q.MaxPrice = &v
	}
	if err := pkgvalidator.Validate(&q); err != nil {
		pkgvalidator.WriteValidationError(w, err)
		return
	}

	items, err := h.svc.Item.List(r.Context(), models.SearchCondition{
		NameContains: q.ItemName,
		MaxPrice:     q.MaxPrice,
	})
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	resp := ListItemsResponse{Items: make([]ItemResponse, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, toItemResponse(item))
	}
	httpx.JSON(w, http.StatusOK, resp)
}
