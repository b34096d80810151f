// Package http provides HTTP handlers for card brand lookup, number generation and
// number validation.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cardDomain "github.com/allisson/cardgen/internal/card/domain"
	"github.com/allisson/cardgen/internal/card/http/dto"
	cardUseCase "github.com/allisson/cardgen/internal/card/usecase"
	apperrors "github.com/allisson/cardgen/internal/errors"
	"github.com/allisson/cardgen/internal/httputil"
	customValidation "github.com/allisson/cardgen/internal/validation"
)

// CardHandler handles HTTP requests for card operations.
// Coordinates brand lookup, generation, and validation with CardUseCase.
type CardHandler struct {
	cardUseCase cardUseCase.CardUseCase
	logger      *slog.Logger
}

// NewCardHandler creates a new card handler with required dependencies.
func NewCardHandler(cardUseCase cardUseCase.CardUseCase, logger *slog.Logger) *CardHandler {
	return &CardHandler{
		cardUseCase: cardUseCase,
		logger:      logger,
	}
}

// ListBrandsHandler lists every registered brand with its ranges and lengths.
// GET /v1/cards/brands
// Returns 200 OK with the brands in registry order.
func (h *CardHandler) ListBrandsHandler(c *gin.Context) {
	rules, err := h.cardUseCase.ListBrands(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapIssuerRulesToListResponse(rules))
}

// GetBrandHandler returns the numbering rules of one brand.
// GET /v1/cards/brands/:brand
// Returns 200 OK, or 404 Not Found for brands outside the registry.
func (h *CardHandler) GetBrandHandler(c *gin.Context) {
	brand, err := cardDomain.ParseBrand(c.Param("brand"))
	if err != nil {
		if apperrors.Is(err, cardDomain.ErrUnknownBrand) {
			err = fmt.Errorf("%w: %s", cardDomain.ErrBrandNotFound, c.Param("brand"))
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	rule, err := h.cardUseCase.GetBrand(c.Request.Context(), brand)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapIssuerRuleToResponse(rule))
}

// GenerateHandler generates numbers for a single brand.
// POST /v1/cards/generate
// Returns 201 Created with a batch ID and the generated numbers.
func (h *CardHandler) GenerateHandler(c *gin.Context) {
	var req dto.GenerateCardsRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	brand, err := cardDomain.ParseBrand(req.Brand)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	numbers, err := h.cardUseCase.GenerateListByBrand(c.Request.Context(), req.CountOrDefault(), brand)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	batchID, err := uuid.NewV7()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.GenerateCardsResponse{
		BatchID:     batchID.String(),
		Brand:       brand.String(),
		Numbers:     numbers,
		GeneratedAt: time.Now().UTC(),
	})
}

// GenerateBatchHandler generates the same quantity of numbers for several brands.
// POST /v1/cards/generate/batch
// Repeated brands collapse into one entry. Returns 201 Created.
func (h *CardHandler) GenerateBatchHandler(c *gin.Context) {
	var req dto.GenerateBatchRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	brands, err := cardDomain.ParseBrands(req.Brands)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	cards, err := h.cardUseCase.GenerateMapByBrands(c.Request.Context(), req.CountEach, brands)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	batchID, err := uuid.NewV7()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapBrandBatchToResponse(batchID.String(), cards, time.Now().UTC()))
}

// GeneratePrefixHandler generates numbers from caller supplied prefixes and lengths.
// POST /v1/cards/generate/prefix
// Every prefix must fit every length. Returns 201 Created keyed by decimal prefix.
func (h *CardHandler) GeneratePrefixHandler(c *gin.Context) {
	var req dto.GeneratePrefixRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	cards, err := h.cardUseCase.GenerateByPrefix(c.Request.Context(), req.CountEach, req.Lengths, req.Prefixes)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	batchID, err := uuid.NewV7()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapPrefixBatchToResponse(batchID.String(), cards, time.Now().UTC()))
}

// ValidateHandler runs the Luhn check on a number and lists the brands it matches.
// POST /v1/cards/validate
// Returns 200 OK whether or not the number passes.
func (h *CardHandler) ValidateHandler(c *gin.Context) {
	var req dto.ValidateCardRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	inspection, err := h.cardUseCase.Inspect(c.Request.Context(), req.Number)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapInspectionToResponse(inspection))
}
