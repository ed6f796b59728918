package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/devansh742005/under-the-hoodies/app/services"
	"github.com/devansh742005/under-the-hoodies/app/store"
	"github.com/devansh742005/under-the-hoodies/pkg/response"
)

type CatalogController struct {
	service *services.CatalogService
}

func NewCatalogController(service *services.CatalogService) *CatalogController {
	return &CatalogController{service: service}
}

// Home is the public storefront landing page.
func (c *CatalogController) Home(w http.ResponseWriter, r *http.Request) {
	response.Success(w, page(r, map[string]string{
		"title":   "Under the Hoodies",
		"tagline": "Premium hoodies, built for comfort",
	}))
}

// List shows the full catalogue, newest first.
func (c *CatalogController) List(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.All(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(w, page(r, products))
}

// Detail shows one product. Unknown ids are a plain 404, not a failure.
func (c *CatalogController) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	product, err := c.service.Find(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.NotFound(w)
			return
		}
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(w, page(r, product))
}

// OrderNow starts the checkout flow for a product. The RequireUser guard
// has already bounced guests to /auth; here only the size choice is
// checked, and the visitor is sent on to checkout carrying the intent.
func (c *CatalogController) OrderNow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	size := r.FormValue("size")
	if size == "" {
		response.ValidationError(w, map[string]string{"size": "Please select a size"})
		return
	}

	to := fmt.Sprintf("/checkout?product=%d&size=%s", id, url.QueryEscape(size))
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
