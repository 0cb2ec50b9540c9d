package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemservice/pkg/httpx"
	"github.com/ghuser/itemservice/services/item/domain/models"
)

// ItemResponse is the JSON representation of an Item.
type ItemResponse struct {
	ID       int64  `json:"id"        example:"1"`
	Name     string `json:"item_name" example:"apple"`
	Price    int    `json:"price"     example:"500"`
	Quantity int    `json:"quantity"  example:"10"`
} // @name ItemResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

func toItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: item.Quantity,
	}
}

// itemIDParam parses the {id} path segment. On failure it writes a 400 and
// returns ok=false.
func itemIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "id must be a positive integer"})
		return 0, false
	}
	return id, true
}
