package handlers

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

const maxTitleLength = 120

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// validateProduct checks a catalog entry before it reaches the stock repository. The image is
// optional, but the storefront renders it as-is, so when present it must be an absolute
// http(s) URL.
func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	add := func(field, description string) {
		errs = append(errs, ProductValidationError{Field: field, Description: description})
	}

	switch title := strings.TrimSpace(p.Title); {
	case title == "":
		add("Title", "Title is required")
	case utf8.RuneCountInString(title) > maxTitleLength:
		add("Title", "Title must have at most 120 characters")
	}
	if p.Price <= 0 {
		add("Price", "Price must be greater than zero")
	}
	if p.Image != "" && !validImageURL(p.Image) {
		add("Image", "Image must be an absolute http or https URL")
	}
	if p.Quantity < 0 {
		add("Quantity", "Quantity cannot be negative")
	}
	return errs
}

func validImageURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
