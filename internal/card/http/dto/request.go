// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
	customValidation "github.com/allisson/cardgen/internal/validation"
)

// GenerateCardsRequest contains the parameters for generating numbers of one brand.
type GenerateCardsRequest struct {
	Brand string `json:"brand"`           // "VISA", "visa", "amex", "american-express", ...
	Count *int   `json:"count,omitempty"` // Defaults to 1
}

// Validate checks if the generate cards request is valid.
func (r *GenerateCardsRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Brand,
			validation.Required,
			customValidation.NotBlank,
			validation.By(validateBrand),
		),
		validation.Field(&r.Count,
			validation.When(r.Count != nil, validation.Required, validation.Min(1)),
		),
	)
}

// CountOrDefault returns the requested count, or 1 when none was given.
func (r *GenerateCardsRequest) CountOrDefault() int {
	if r.Count == nil {
		return 1
	}
	return *r.Count
}

// GenerateBatchRequest contains the parameters for generating numbers of several brands.
type GenerateBatchRequest struct {
	Brands    []string `json:"brands"`
	CountEach int      `json:"count_each"`
}

// Validate checks if the generate batch request is valid.
func (r *GenerateBatchRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Brands,
			validation.Required,
			validation.Each(
				validation.Required,
				customValidation.NotBlank,
				validation.By(validateBrand),
			),
		),
		validation.Field(&r.CountEach,
			validation.Required,
			validation.Min(1),
		),
	)
}

// GeneratePrefixRequest contains the parameters for generating numbers from arbitrary prefixes.
type GeneratePrefixRequest struct {
	Prefixes  []int64 `json:"prefixes"`
	Lengths   []int   `json:"lengths"`
	CountEach int     `json:"count_each"`
}

// Validate checks if the generate prefix request is valid. Whether each prefix fits each
// length is checked by the use case over the whole cross product.
func (r *GeneratePrefixRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Prefixes,
			validation.Required,
			validation.Each(validation.Required, validation.Min(int64(1))),
		),
		validation.Field(&r.Lengths,
			validation.Required,
			validation.Each(
				validation.Required,
				validation.Min(cardDomain.MinNumberLength),
				validation.Max(cardDomain.MaxNumberLength),
			),
		),
		validation.Field(&r.CountEach,
			validation.Required,
			validation.Min(1),
		),
	)
}

// ValidateCardRequest contains the number to check.
type ValidateCardRequest struct {
	Number string `json:"number"`
}

// Validate checks if the validate card request is valid.
func (r *ValidateCardRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Number,
			validation.Required,
			customValidation.NoWhitespace,
			customValidation.Digits,
		),
	)
}

// validateBrand validates that the brand name resolves to a registered brand.
func validateBrand(value interface{}) error {
	name, ok := value.(string)
	if !ok {
		return validation.NewError("validation_brand_type", "must be a string")
	}

	if _, err := cardDomain.ParseBrand(name); err != nil {
		return validation.NewError("validation_brand", "must be one of AMERICAN_EXPRESS, VISA, MASTERCARD, DISCOVER")
	}
	return nil
}
