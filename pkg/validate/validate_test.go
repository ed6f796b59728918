package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleForm struct {
	Email    string `json:"email"     validate:"required,email"`
	Name     string `json:"name"      validate:"required,max=10"`
	Price    string `json:"price"     validate:"required,numeric"`
	Website  string `json:"website"   validate:"nullable,url"`
	Password string `json:"password"  validate:"required,min=8"`
}

func TestStructValid(t *testing.T) {
	errs := Struct(&sampleForm{
		Email:    "jo@example.com",
		Name:     "Jo",
		Price:    "59.99",
		Password: "supersecret",
	})

	assert.False(t, HasErrors(errs))
}

func TestStructRequired(t *testing.T) {
	errs := Struct(&sampleForm{})

	assert.Equal(t, "The email field is required.", errs["email"])
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "password")
	// nullable field with no value produces no error
	assert.NotContains(t, errs, "website")
}

func TestStructFirstFailingRuleWins(t *testing.T) {
	errs := Struct(&sampleForm{
		Email:    "not-an-email",
		Name:     "Jo",
		Price:    "59",
		Password: "supersecret",
	})

	assert.Equal(t, "The email must be a valid email address.", errs["email"])
}

func TestStructNumeric(t *testing.T) {
	errs := Struct(&sampleForm{
		Email:    "jo@example.com",
		Name:     "Jo",
		Price:    "abc",
		Password: "supersecret",
	})

	assert.Equal(t, "The price field must be a number.", errs["price"])
}

func TestStructNullableSkipsWhenEmptyButValidatesWhenSet(t *testing.T) {
	form := sampleForm{
		Email:    "jo@example.com",
		Name:     "Jo",
		Price:    "10",
		Password: "supersecret",
		Website:  "not a url",
	}

	errs := Struct(&form)
	assert.Equal(t, "The website must be a valid URL.", errs["website"])

	form.Website = "https://example.com/img.png"
	assert.False(t, HasErrors(Struct(&form)))
}

func TestStructMinMaxOnStrings(t *testing.T) {
	errs := Struct(&sampleForm{
		Email:    "jo@example.com",
		Name:     "a very long product name",
		Price:    "10",
		Password: "short",
	})

	assert.Contains(t, errs["name"], "must not exceed 10 characters")
	assert.Contains(t, errs["password"], "at least 8 characters")
}
