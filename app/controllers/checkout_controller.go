package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/devansh742005/under-the-hoodies/app/models"
	"github.com/devansh742005/under-the-hoodies/app/services"
	"github.com/devansh742005/under-the-hoodies/app/store"
	"github.com/devansh742005/under-the-hoodies/pkg/bind"
	"github.com/devansh742005/under-the-hoodies/pkg/middleware"
	"github.com/devansh742005/under-the-hoodies/pkg/response"
)

// ShippingForm is the address block captured at checkout. Every field is
// required free text; no format rules beyond presence.
type ShippingForm struct {
	Address    string `json:"address"     validate:"required"`
	City       string `json:"city"        validate:"required"`
	State      string `json:"state"       validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country"     validate:"required"`
}

func (f ShippingForm) address() models.Address {
	return models.Address{
		Address:    f.Address,
		City:       f.City,
		State:      f.State,
		PostalCode: f.PostalCode,
		Country:    f.Country,
	}
}

type CheckoutController struct {
	service *services.CheckoutService
}

func NewCheckoutController(service *services.CheckoutService) *CheckoutController {
	return &CheckoutController{service: service}
}

// Show renders the order summary for the intent carried in the query
// string. Guards have already verified the visitor and the intent shape.
func (c *CheckoutController) Show(w http.ResponseWriter, r *http.Request) {
	productID, size := intent(r)

	summary, err := c.service.Summary(r.Context(), productID, size)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.NotFound(w)
			return
		}
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(w, page(r, summary))
}

// Place confirms the order: validates the shipping form, then runs the
// two-step write. A failed order insert surfaces the store's message while
// the already-saved address stays put.
func (c *CheckoutController) Place(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.FromCtx(r.Context())
	productID, size := intent(r)

	var form ShippingForm
	errs, err := bind.Form(r, &form)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if _, err := c.service.Place(r.Context(), p.UserID, productID, size, form.address()); err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Dashboard lists the caller's own orders, newest first, joined with the
// product name and price. Orders for deleted products still appear.
func (c *CheckoutController) Dashboard(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.FromCtx(r.Context())

	orders, err := c.service.History(r.Context(), p.UserID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(w, page(r, orders))
}

// intent reads the order intent the guard already validated.
func intent(r *http.Request) (uint, string) {
	id, _ := strconv.ParseUint(r.FormValue("product"), 10, 32)
	return uint(id), r.FormValue("size")
}
