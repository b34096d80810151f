// Package integration provides end-to-end tests for the card API, wired through the real
// dependency container.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cardgen/internal/app"
	cardDTO "github.com/allisson/cardgen/internal/card/http/dto"
	cardService "github.com/allisson/cardgen/internal/card/service"
	"github.com/allisson/cardgen/internal/config"
)

// integrationTestContext holds all dependencies and state for integration testing.
type integrationTestContext struct {
	container *app.Container
	server    *httptest.Server
}

// makeRequest performs an HTTP request and returns the response and body.
func (ctx *integrationTestContext) makeRequest(
	t *testing.T,
	method, path string,
	body interface{},
) (*http.Response, []byte) {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, ctx.server.URL+path, bodyReader)
	require.NoError(t, err, "failed to create request")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	//nolint:gosec // controlled test environment with localhost URLs
	resp, err := client.Do(req)
	require.NoError(t, err, "failed to perform request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	if closeErr := resp.Body.Close(); closeErr != nil {
		t.Logf("Warning: failed to close response body: %v", closeErr)
	}

	return resp, respBody
}

// setupIntegrationTest builds the container and serves its router over httptest.
func setupIntegrationTest(t *testing.T, cfg *config.Config) *integrationTestContext {
	t.Helper()

	gin.SetMode(gin.TestMode)

	container := app.NewContainer(cfg)

	httpSrv, err := container.HTTPServer()
	require.NoError(t, err, "failed to get HTTP server")

	handler := httpSrv.GetHandler()
	require.NotNil(t, handler, "handler should not be nil after SetupRouter")

	ctx := &integrationTestContext{
		container: container,
		server:    httptest.NewServer(handler),
	}
	t.Cleanup(func() { teardownIntegrationTest(t, ctx) })
	return ctx
}

// teardownIntegrationTest cleans up all resources.
func teardownIntegrationTest(t *testing.T, ctx *integrationTestContext) {
	t.Helper()

	if ctx.server != nil {
		ctx.server.Close()
	}

	if ctx.container != nil {
		if err := ctx.container.Shutdown(context.Background()); err != nil {
			t.Logf("Warning: container shutdown error: %v", err)
		}
	}
}

func defaultTestConfig() *config.Config {
	return &config.Config{
		ServerHost:        "localhost",
		ServerPort:        8080,
		LogLevel:          "error",
		MetricsEnabled:    true,
		MetricsNamespace:  "cardgen_test",
		GeneratorWorkers:  4,
		GeneratorMaxCount: 500,
	}
}

func assertLuhnValid(t *testing.T, number string) {
	t.Helper()

	ok, err := cardService.PassesLuhnCheck(number)
	require.NoError(t, err)
	assert.True(t, ok, "number %s should pass the Luhn check", number)
}

func TestIntegration_CardAPI(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := setupIntegrationTest(t, defaultTestConfig())

	t.Run("01_Health", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"status":"healthy"}`, string(body))
	})

	t.Run("02_ListBrands", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/cards/brands", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var response cardDTO.ListBrandsResponse
		require.NoError(t, json.Unmarshal(body, &response))
		require.Len(t, response.Data, 4)

		names := make([]string, 0, len(response.Data))
		for _, b := range response.Data {
			names = append(names, b.Brand)
		}
		assert.Equal(t, []string{"AMERICAN_EXPRESS", "VISA", "MASTERCARD", "DISCOVER"}, names)
	})

	t.Run("03_GetBrand", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/cards/brands/amex", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var response cardDTO.BrandResponse
		require.NoError(t, json.Unmarshal(body, &response))
		assert.Equal(t, "AMERICAN_EXPRESS", response.Brand)
		assert.Equal(t, []int{15}, response.Lengths)
		assert.Equal(t, 2, response.PrefixCount)
	})

	t.Run("04_GetUnknownBrand", func(t *testing.T) {
		resp, _ := ctx.makeRequest(t, http.MethodGet, "/v1/cards/brands/diners", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("05_GenerateMastercard", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/cards/generate", map[string]interface{}{
			"brand": "mastercard",
			"count": 25,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var response cardDTO.GenerateCardsResponse
		require.NoError(t, json.Unmarshal(body, &response))
		assert.Equal(t, "MASTERCARD", response.Brand)
		require.Len(t, response.Numbers, 25)

		batchID, err := uuid.Parse(response.BatchID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), batchID.Version())

		for _, number := range response.Numbers {
			assert.Len(t, number, 16)
			assertLuhnValid(t, number)

			two, _ := strconv.Atoi(number[:2])
			four, _ := strconv.Atoi(number[:4])
			assert.True(t, (two >= 51 && two <= 55) || (four >= 2221 && four <= 2720),
				"unexpected mastercard prefix in %s", number)
		}
	})

	t.Run("06_GenerateDefaultCount", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/cards/generate", map[string]interface{}{
			"brand": "visa",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var response cardDTO.GenerateCardsResponse
		require.NoError(t, json.Unmarshal(body, &response))
		require.Len(t, response.Numbers, 1)
		assert.True(t, strings.HasPrefix(response.Numbers[0], "4"))
		assert.Contains(t, []int{13, 16, 19}, len(response.Numbers[0]))
		assertLuhnValid(t, response.Numbers[0])
	})

	t.Run("07_GenerateCountAboveCeiling", func(t *testing.T) {
		resp, _ := ctx.makeRequest(t, http.MethodPost, "/v1/cards/generate", map[string]interface{}{
			"brand": "visa",
			"count": 501,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("08_GenerateBatch", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/cards/generate/batch", map[string]interface{}{
			"brands":     []string{"visa", "discover", "VISA"},
			"count_each": 3,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var response cardDTO.GenerateBatchResponse
		require.NoError(t, json.Unmarshal(body, &response))
		require.Len(t, response.Cards, 2)
		assert.Len(t, response.Cards["VISA"], 3)
		require.Len(t, response.Cards["DISCOVER"], 3)
		for _, number := range response.Cards["DISCOVER"] {
			assert.True(t, strings.HasPrefix(number, "6"))
			assertLuhnValid(t, number)
		}
	})

	t.Run("09_GeneratePrefix", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/cards/generate/prefix", map[string]interface{}{
			"prefixes":   []int64{123456, 987},
			"lengths":    []int{12, 20},
			"count_each": 4,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var response cardDTO.GenerateBatchResponse
		require.NoError(t, json.Unmarshal(body, &response))
		require.Len(t, response.Cards, 2)
		for prefix, numbers := range response.Cards {
			require.Len(t, numbers, 4)
			for _, number := range numbers {
				assert.True(t, strings.HasPrefix(number, prefix))
				assert.Contains(t, []int{12, 20}, len(number))
				assertLuhnValid(t, number)
			}
		}
	})

	t.Run("10_GeneratePrefixTooLong", func(t *testing.T) {
		resp, _ := ctx.makeRequest(t, http.MethodPost, "/v1/cards/generate/prefix", map[string]interface{}{
			"prefixes":   []int64{123456789012},
			"lengths":    []int{12},
			"count_each": 1,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("11_ValidateRoundTrip", func(t *testing.T) {
		_, body := ctx.makeRequest(t, http.MethodPost, "/v1/cards/generate", map[string]interface{}{
			"brand": "amex",
			"count": 1,
		})
		var generated cardDTO.GenerateCardsResponse
		require.NoError(t, json.Unmarshal(body, &generated))
		require.Len(t, generated.Numbers, 1)

		resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/cards/validate", map[string]interface{}{
			"number": generated.Numbers[0],
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var response cardDTO.ValidateCardResponse
		require.NoError(t, json.Unmarshal(body, &response))
		assert.True(t, response.Valid)
		assert.Equal(t, []string{"AMERICAN_EXPRESS"}, response.Brands)
	})

	t.Run("12_ValidateFailingNumber", func(t *testing.T) {
		resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/cards/validate", map[string]interface{}{
			"number": "4111111111111112",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var response cardDTO.ValidateCardResponse
		require.NoError(t, json.Unmarshal(body, &response))
		assert.False(t, response.Valid)
	})

	t.Run("13_ValidateMalformedNumber", func(t *testing.T) {
		resp, _ := ctx.makeRequest(t, http.MethodPost, "/v1/cards/validate", map[string]interface{}{
			"number": "4111-1111",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("14_MalformedJSON", func(t *testing.T) {
		req, err := http.NewRequest(
			http.MethodPost,
			ctx.server.URL+"/v1/cards/generate",
			strings.NewReader("{"),
		)
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		//nolint:gosec // controlled test environment with localhost URLs
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestIntegration_SeededGenerationIsReproducible(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	generate := func() []string {
		cfg := defaultTestConfig()
		cfg.GeneratorSeed = 42
		cfg.GeneratorWorkers = 1

		ctx := setupIntegrationTest(t, cfg)
		resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/cards/generate", map[string]interface{}{
			"brand": "discover",
			"count": 10,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var response cardDTO.GenerateCardsResponse
		require.NoError(t, json.Unmarshal(body, &response))
		return response.Numbers
	}

	assert.Equal(t, generate(), generate())
}

func TestIntegration_RateLimit(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	cfg := defaultTestConfig()
	cfg.RateLimitEnabled = true
	cfg.RateLimitRequestsPerSec = 0.001
	cfg.RateLimitBurst = 2

	ctx := setupIntegrationTest(t, cfg)

	for i := 0; i < 2; i++ {
		resp, _ := ctx.makeRequest(t, http.MethodGet, "/v1/cards/brands", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, _ := ctx.makeRequest(t, http.MethodGet, "/v1/cards/brands", nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))

	// Health endpoints sit outside the limited group.
	resp, _ = ctx.makeRequest(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
