package handler

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"platra/internal/media"
	"platra/internal/model"

	"github.com/shopspring/decimal"
)

// MaxRequestBody caps every request body: one image plus the form fields around it.
const MaxRequestBody = media.MaxImageSize + 1<<20

// maxFormMemory bounds the in-memory part of a multipart form.
const maxFormMemory = MaxRequestBody

// bodyTooLarge reports whether err comes from reading past MaxRequestBody.
func bodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// formImage reads the optional image uploaded under field. A missing file is not an error.
func formImage(r *http.Request, field string) (*media.Image, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, model.ErrInvalidImage
	}
	defer file.Close()

	if header.Size > media.MaxImageSize {
		return nil, model.ErrImageTooLarge
	}
	return media.Read(header.Filename, file)
}

func parseMultipart(r *http.Request) error {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		if bodyTooLarge(err) {
			return model.ErrImageTooLarge
		}
		return model.NewDomainError(model.ErrCodeInvalidJSON, "Invalid form data")
	}
	return nil
}

// bindOrganization reads an organization request from JSON or from a multipart form with
// an optional "logo" file.
func bindOrganization(r *http.Request) (model.OrganizationRequest, *media.Image, error) {
	var req model.OrganizationRequest
	if !isMultipart(r) {
		return req, nil, decodeJSON(r, &req)
	}

	if err := parseMultipart(r); err != nil {
		return req, nil, err
	}
	req.Name = r.FormValue("name")
	req.Description = r.FormValue("description")

	logo, err := formImage(r, "logo")
	return req, logo, err
}

// bindMenuItem reads a menu item request from JSON or from the dashboard's multipart form
// with an optional "image" file.
func bindMenuItem(r *http.Request) (model.MenuItemRequest, *media.Image, error) {
	var req model.MenuItemRequest
	if !isMultipart(r) {
		return req, nil, decodeJSON(r, &req)
	}

	if err := parseMultipart(r); err != nil {
		return req, nil, err
	}

	req.CategoryID = r.FormValue("category_id")
	req.Name = r.FormValue("name")
	req.Description = r.FormValue("description")
	req.Ingredients = r.FormValue("ingredients")
	req.Allergens = r.FormValue("allergens")
	req.IsVegetarian = formBool(r, "is_vegetarian")
	req.IsVegan = formBool(r, "is_vegan")
	req.IsSpicy = formBool(r, "is_spicy")
	req.IsAvailable = formBool(r, "is_available")

	if raw := strings.TrimSpace(r.FormValue("price")); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return req, nil, model.ErrInvalidPrice
		}
		req.Price = price
	}
	if raw := strings.TrimSpace(r.FormValue("display_order")); raw != "" {
		order, err := strconv.Atoi(raw)
		if err != nil {
			return req, nil, model.MissingField("Display order must be a number")
		}
		req.DisplayOrder = order
	}
	if raw := strings.TrimSpace(r.FormValue("preparation_time")); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil {
			return req, nil, model.MissingField("Preparation time must be a number")
		}
		req.PreparationTime = &minutes
	}
	if raw := r.FormValue("variations"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Variations); err != nil {
			return req, nil, model.NewDomainError(model.ErrCodeInvalidJSON, "Invalid variations")
		}
	}

	image, err := formImage(r, "image")
	return req, image, err
}

func formBool(r *http.Request, field string) bool {
	v, _ := strconv.ParseBool(r.FormValue(field))
	return v
}
