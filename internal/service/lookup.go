package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mwhite7112/woodpantry-nutrition/internal/config"
	"github.com/mwhite7112/woodpantry-nutrition/internal/fdc"
)

const (
	// maxNutrients caps the nutrient list returned for a match.
	maxNutrients = 15

	vagueLookupMessage = "Prediction result was too vague or empty for nutrition lookup. Try a clearer image."
	upstreamMessage    = "External Nutrition API failed to respond."
)

// ErrMissingAPIKey is reported when no FoodData Central credential is configured.
var ErrMissingAPIKey = errors.New(config.APIKeyEnv + " is missing in " + config.EnvFile + " file.") //nolint:stylecheck // user-facing text

// searchDataTypes restricts search to generic foods; branded products are excluded.
var searchDataTypes = []string{"Survey (FNDDS)", "Foundation", "SR Legacy"}

// Lookup finds the best FoodData Central match for label and reshapes its
// nutrients. Every expected failure comes back as a NotFound or Failure result.
func (s *Service) Lookup(ctx context.Context, label string) Result {
	if s.apiKey == "" {
		return Failure{Error: ErrMissingAPIKey.Error()}
	}

	query, ok := Normalize(label)
	if !ok {
		return NotFound{Message: vagueLookupMessage}
	}

	match, err := s.fetch(ctx, query)
	if err != nil {
		if errors.Is(err, errNoMatch) {
			return NotFound{Message: `No USDA nutrition data found for "` + query + `"`}
		}
		slog.Error("nutrition lookup failed", "query", query, "error", upstreamDetail(err))
		return Failure{Error: upstreamMessage}
	}
	return match
}

var errNoMatch = errors.New("no search hits")

func (s *Service) fetch(ctx context.Context, query string) (Match, error) {
	foods, err := s.api.SearchFoods(ctx, fdc.SearchParams{
		Query:     query,
		PageSize:  1,
		DataTypes: searchDataTypes,
	})
	if err != nil {
		return Match{}, err
	}
	if len(foods) == 0 {
		return Match{}, errNoMatch
	}

	fdcID := foods[0].FDCID
	food, err := s.api.GetFood(ctx, fdcID)
	if err != nil {
		return Match{}, err
	}

	return Match{
		FDCID:       fdcID,
		Description: food.Description,
		DataType:    food.DataType,
		Nutrients:   nutrientEntries(food.FoodNutrients),
	}, nil
}

// nutrientEntries keeps positive-valued nutrients in source order, at most
// maxNutrients of them.
func nutrientEntries(in []fdc.FoodNutrient) []NutrientEntry {
	out := make([]NutrientEntry, 0, min(len(in), maxNutrients))
	for _, n := range in {
		e := toEntry(n)
		if e.Value <= 0 {
			continue
		}
		out = append(out, e)
		if len(out) == maxNutrients {
			break
		}
	}
	return out
}

func toEntry(n fdc.FoodNutrient) NutrientEntry {
	e := NutrientEntry{
		NutrientName: n.NutrientName,
		UnitName:     n.UnitName,
	}
	if n.NutrientID != nil && *n.NutrientID != 0 {
		id := *n.NutrientID
		e.NutrientID = &id
	}
	if nested := n.Nutrient; nested != nil {
		if nested.ID != 0 {
			id := nested.ID
			e.NutrientID = &id
		}
		if nested.Name != "" {
			e.NutrientName = nested.Name
		}
		if nested.UnitName != "" {
			e.UnitName = nested.UnitName
		}
	}

	switch {
	case n.Amount != nil:
		e.Value = *n.Amount
	case n.Value != nil:
		e.Value = *n.Value
	}
	return e
}

// upstreamDetail prefers the message FoodData Central sent over the wrapped error text.
func upstreamDetail(err error) string {
	var apiErr *fdc.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
