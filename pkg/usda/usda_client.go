package usda

import (
	"Nutriplan-Backend/domain"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://api.nal.usda.gov/fdc/v1"

type (
	Config struct {
		BaseURL string
		APIKey  string
		// RequestsPerHour throttles outbound calls for the shared key. Zero disables it.
		RequestsPerHour int
		// Timeout bounds a single call. Zero means no timeout.
		Timeout time.Duration
	}

	USDAClient interface {
		GetFood(ctx context.Context, fdcID string) (*Food, error)
		SearchFoods(ctx context.Context, params SearchParams) (*SearchResult, error)
		GetNutrients(ctx context.Context) ([]Nutrient, error)
	}

	usdaClient struct {
		baseURL    string
		apiKey     string
		httpClient *http.Client
		limiter    *rate.Limiter
	}
)

func NewUSDAClient(cfg Config) USDAClient {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerHour > 0 {
		burst := cfg.RequestsPerHour / 60
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerHour)/3600), burst)
	}

	return &usdaClient{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    limiter,
	}
}

func (c *usdaClient) GetFood(ctx context.Context, fdcID string) (*Food, error) {
	var food Food
	path := "/food/" + url.PathEscape(fdcID)
	if err := c.get(ctx, domain.OpFetchFood, path, nil, &food); err != nil {
		return nil, err
	}
	return &food, nil
}

func (c *usdaClient) SearchFoods(ctx context.Context, params SearchParams) (*SearchResult, error) {
	q := url.Values{}
	q.Set("query", params.Query)
	q.Set("pageSize", strconv.Itoa(params.PageSize))
	q.Set("pageNumber", strconv.Itoa(params.PageNumber))
	if len(params.DataTypes) > 0 {
		q.Set("dataType", strings.Join(params.DataTypes, ","))
	}

	var result SearchResult
	if err := c.get(ctx, domain.OpSearchFoods, "/foods/search", q, &result); err != nil {
		return nil, err
	}
	if result.Foods == nil {
		result.Foods = []SearchFood{}
	}
	return &result, nil
}

func (c *usdaClient) GetNutrients(ctx context.Context) ([]Nutrient, error) {
	var nutrients []Nutrient
	if err := c.get(ctx, domain.OpFetchNutrients, "/nutrients", nil, &nutrients); err != nil {
		return nil, err
	}
	return nutrients, nil
}

// get issues one GET request and decodes a 2xx JSON body into out. Every
// failure comes back as *domain.UpstreamError; nothing is retried.
func (c *usdaClient) get(ctx context.Context, op, path string, query url.Values, out any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	reqURL := c.baseURL + path + "?" + query.Encode()

	if err := c.limiter.Wait(ctx); err != nil {
		return &domain.UpstreamError{Op: op, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &domain.UpstreamError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.UpstreamError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.UpstreamError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warnf("usda %s: status %d", op, resp.StatusCode)
		return &domain.UpstreamError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Detail:     strings.TrimSpace(string(body)),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &domain.UpstreamError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}
	return nil
}
