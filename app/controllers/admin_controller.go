package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/devansh742005/under-the-hoodies/app/models"
	"github.com/devansh742005/under-the-hoodies/app/services"
	"github.com/devansh742005/under-the-hoodies/app/store"
	"github.com/devansh742005/under-the-hoodies/pkg/bind"
	"github.com/devansh742005/under-the-hoodies/pkg/response"
)

// ProductForm is the admin product form. Price arrives as form text and is
// validated as numeric before parsing, so a bad value is a 422 instead of
// a silently corrupted row.
type ProductForm struct {
	Name        string `json:"name"        validate:"required,max=255"`
	Description string `json:"description" validate:"nullable,max=5000"`
	Price       string `json:"price"       validate:"required,numeric"`
	Sizes       string `json:"sizes"       validate:"required"`
	ImageURL    string `json:"image_url"   validate:"nullable,url"`
	InStock     string `json:"in_stock"    validate:"nullable"`
}

type AdminController struct {
	service *services.AdminService
}

func NewAdminController(service *services.AdminService) *AdminController {
	return &AdminController{service: service}
}

// Landing is the admin home page.
func (c *AdminController) Landing(w http.ResponseWriter, r *http.Request) {
	response.Success(w, page(r, []NavLink{
		{Label: "Manage Products", Path: "/admin/products"},
		{Label: "View Orders", Path: "/admin/orders"},
	}))
}

func (c *AdminController) Products(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.Products(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(w, page(r, products))
}

func (c *AdminController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	input, errs, err := c.productInput(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.service.CreateProduct(r.Context(), input)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Created(w, product)
}

func (c *AdminController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	input, errs, err := c.productInput(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.service.UpdateProduct(r.Context(), id, input)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.NotFound(w)
			return
		}
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(w, product)
}

func (c *AdminController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	if err := c.service.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.NotFound(w)
			return
		}
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(w, map[string]uint{"deleted": id})
}

func (c *AdminController) Orders(w http.ResponseWriter, r *http.Request) {
	orders, err := c.service.Orders(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(w, page(r, orders))
}

// productInput validates the multipart form and resolves the image: an
// uploaded file wins over a pasted URL and lands on the storage disk
// before the row is written.
func (c *AdminController) productInput(r *http.Request) (services.ProductInput, map[string]string, error) {
	var form ProductForm
	errs, err := bind.Form(r, &form)
	if err != nil {
		return services.ProductInput{}, nil, err
	}
	if errs != nil {
		return services.ProductInput{}, errs, nil
	}

	// Price passed the numeric rule, so this parse cannot fail.
	price, _ := strconv.ParseFloat(form.Price, 64)

	imageURL := form.ImageURL
	if file, header, ferr := r.FormFile("image"); ferr == nil {
		defer file.Close()
		imageURL, err = c.service.StoreImage(header.Filename, file)
		if err != nil {
			return services.ProductInput{}, nil, err
		}
	}

	inStock := true
	if form.InStock != "" {
		inStock, _ = strconv.ParseBool(form.InStock)
	}

	return services.ProductInput{
		Name:        form.Name,
		Description: form.Description,
		Price:       price,
		Sizes:       models.ParseSizes(form.Sizes),
		ImageURL:    imageURL,
		InStock:     inStock,
	}, nil, nil
}
