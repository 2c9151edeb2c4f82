package fdc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the public FoodData Central v1 API.
const DefaultBaseURL = "https://api.nal.usda.gov/fdc/v1"

// API is the subset of FoodData Central the nutrition lookup needs.
type API interface {
	SearchFoods(ctx context.Context, params SearchParams) ([]SearchFood, error)
	GetFood(ctx context.Context, fdcID int) (Food, error)
}

// SearchParams are the query options for /foods/search.
type SearchParams struct {
	Query     string
	PageSize  int
	DataTypes []string
}

// SearchFood is one hit from /foods/search. Only the fields the lookup reads
// are decoded.
type SearchFood struct {
	FDCID       int    `json:"fdcId"`
	Description string `json:"description"`
	DataType    string `json:"dataType"`
}

// Food is the detail record from /food/{fdcId}.
type Food struct {
	FDCID         int            `json:"fdcId"`
	Description   string         `json:"description"`
	DataType      string         `json:"dataType"`
	FoodNutrients []FoodNutrient `json:"foodNutrients"`
}

// FoodNutrient covers both the full format (nested nutrient + amount) and the
// abridged format (flat name/unit + value). Pointers distinguish absent from zero.
type FoodNutrient struct {
	Nutrient     *Nutrient `json:"nutrient,omitempty"`
	Amount       *float64  `json:"amount,omitempty"`
	Value        *float64  `json:"value,omitempty"`
	NutrientID   *int      `json:"nutrientId,omitempty"`
	NutrientName string    `json:"nutrientName,omitempty"`
	UnitName     string    `json:"unitName,omitempty"`
}

// Nutrient is the nested nutrient descriptor in full-format records.
type Nutrient struct {
	ID       int    `json:"id"`
	Number   string `json:"number,omitempty"`
	Name     string `json:"name"`
	UnitName string `json:"unitName"`
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("fdc API error %d: %s", e.StatusCode, e.Message)
}

// Client calls FoodData Central over HTTP.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient returns a Client. An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type searchResponse struct {
	Foods []SearchFood `json:"foods"`
}

// SearchFoods calls GET /foods/search.
func (c *Client) SearchFoods(ctx context.Context, params SearchParams) ([]SearchFood, error) {
	q := url.Values{}
	q.Set("query", params.Query)
	if params.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(params.PageSize))
	}
	if len(params.DataTypes) > 0 {
		q.Set("dataType", strings.Join(params.DataTypes, ","))
	}

	var sr searchResponse
	if err := c.get(ctx, "/foods/search", q, &sr); err != nil {
		return nil, fmt.Errorf("search foods: %w", err)
	}
	return sr.Foods, nil
}

// GetFood calls GET /food/{fdcId}.
func (c *Client) GetFood(ctx context.Context, fdcID int) (Food, error) {
	var f Food
	if err := c.get(ctx, "/food/"+strconv.Itoa(fdcID), url.Values{}, &f); err != nil {
		return Food{}, fmt.Errorf("get food %d: %w", fdcID, err)
	}
	return f, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	q.Set("api_key", c.apiKey)
	u := c.baseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call fdc: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage pulls the upstream message out of an error body. FDC (and the
// api.data.gov gateway in front of it) use either {"message": ...} or
// {"error": {"message": ...}}.
func errorMessage(body []byte) string {
	var e struct {
		Message string `json:"message"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &e) == nil {
		if e.Message != "" {
			return e.Message
		}
		if e.Error.Message != "" {
			return e.Error.Message
		}
	}
	return strings.TrimSpace(string(body))
}
