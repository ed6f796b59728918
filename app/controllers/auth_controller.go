package controllers

import (
	"errors"
	"net/http"

	"github.com/devansh742005/under-the-hoodies/app/services"
	"github.com/devansh742005/under-the-hoodies/pkg/bind"
	"github.com/devansh742005/under-the-hoodies/pkg/response"
)

// RegisterForm is the sign-up payload.
type RegisterForm struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,max=255"`
}

// LoginForm is the sign-in payload.
type LoginForm struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Prompt is the sign-in page guests are redirected to.
func (c *AuthController) Prompt(w http.ResponseWriter, r *http.Request) {
	response.Success(w, page(r, map[string]string{
		"message": "Sign in to continue",
	}))
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var form RegisterForm
	errs, err := bind.JSON(r, &form)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	profile, token, err := c.service.Register(r.Context(), form.Email, form.Password, form.FullName)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			response.Error(w, http.StatusConflict, err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Created(w, map[string]interface{}{
		"token":   token,
		"profile": profile,
	})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var form LoginForm
	errs, err := bind.JSON(r, &form)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	profile, token, err := c.service.Login(r.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Unauthorized(w)
			return
		}
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(w, map[string]interface{}{
		"token":   token,
		"profile": profile,
	})
}

// Logout exists for navigation symmetry: tokens are stateless, so the
// client discards its copy and lands back on the storefront.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
