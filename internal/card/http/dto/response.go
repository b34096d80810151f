package dto

import (
	"strconv"
	"time"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
)

// BrandResponse represents the numbering rules of a brand in API responses.
type BrandResponse struct {
	Brand       string                    `json:"brand"`
	Ranges      []cardDomain.NumericRange `json:"ranges"`
	Lengths     []int                     `json:"lengths"`
	PrefixCount int                       `json:"prefix_count"`
}

// MapIssuerRuleToResponse converts a domain issuer rule to an API response.
func MapIssuerRuleToResponse(rule *cardDomain.IssuerRule) BrandResponse {
	return BrandResponse{
		Brand:       rule.Brand().String(),
		Ranges:      rule.Ranges(),
		Lengths:     rule.Lengths(),
		PrefixCount: rule.PrefixCount(),
	}
}

// ListBrandsResponse represents the list of registered brands in API responses.
type ListBrandsResponse struct {
	Data []BrandResponse `json:"data"`
}

// MapIssuerRulesToListResponse converts domain issuer rules to a list response.
func MapIssuerRulesToListResponse(rules []*cardDomain.IssuerRule) ListBrandsResponse {
	data := make([]BrandResponse, 0, len(rules))
	for _, rule := range rules {
		data = append(data, MapIssuerRuleToResponse(rule))
	}

	return ListBrandsResponse{
		Data: data,
	}
}

// GenerateCardsResponse represents numbers generated for a single brand.
type GenerateCardsResponse struct {
	BatchID     string    `json:"batch_id"`
	Brand       string    `json:"brand"`
	Numbers     []string  `json:"numbers"`
	GeneratedAt time.Time `json:"generated_at"`
}

// GenerateBatchResponse represents numbers generated per brand or per prefix. Keys are
// brand names or decimal prefixes.
type GenerateBatchResponse struct {
	BatchID     string              `json:"batch_id"`
	Cards       map[string][]string `json:"cards"`
	GeneratedAt time.Time           `json:"generated_at"`
}

// MapBrandBatchToResponse converts a brand keyed generation result to an API response.
func MapBrandBatchToResponse(
	batchID string,
	cards map[cardDomain.Brand][]string,
	generatedAt time.Time,
) GenerateBatchResponse {
	out := make(map[string][]string, len(cards))
	for brand, numbers := range cards {
		out[brand.String()] = numbers
	}
	return GenerateBatchResponse{
		BatchID:     batchID,
		Cards:       out,
		GeneratedAt: generatedAt,
	}
}

// MapPrefixBatchToResponse converts a prefix keyed generation result to an API response.
func MapPrefixBatchToResponse(
	batchID string,
	cards map[int64][]string,
	generatedAt time.Time,
) GenerateBatchResponse {
	out := make(map[string][]string, len(cards))
	for prefix, numbers := range cards {
		out[strconv.FormatInt(prefix, 10)] = numbers
	}
	return GenerateBatchResponse{
		BatchID:     batchID,
		Cards:       out,
		GeneratedAt: generatedAt,
	}
}

// ValidateCardResponse represents the result of checking a number.
type ValidateCardResponse struct {
	Number string   `json:"number"`
	Valid  bool     `json:"valid"`
	Brands []string `json:"brands"`
}

// MapInspectionToResponse converts a domain inspection to an API response.
func MapInspectionToResponse(inspection *cardDomain.Inspection) ValidateCardResponse {
	brands := make([]string, 0, len(inspection.Brands))
	for _, brand := range inspection.Brands {
		brands = append(brands, brand.String())
	}

	return ValidateCardResponse{
		Number: inspection.Number,
		Valid:  inspection.Valid,
		Brands: brands,
	}
}
