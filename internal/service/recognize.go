package service

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoClassifier is returned by Recognize when no classifier is configured.
var ErrNoClassifier = errors.New("no image classifier configured")

// RecognizeResult pairs the classifier's label with the lookup outcome.
type RecognizeResult struct {
	Label     string
	Nutrition Result
}

// Recognize classifies image and looks up nutrition for the resulting label.
// Classifier errors are returned as-is; everything after classification is
// reported through the Result, the same as Lookup.
func (s *Service) Recognize(ctx context.Context, image []byte) (RecognizeResult, error) {
	if s.classifier == nil {
		return RecognizeResult{}, ErrNoClassifier
	}

	raw, err := s.classifier.Classify(ctx, image)
	if err != nil {
		return RecognizeResult{}, fmt.Errorf("classify image: %w", err)
	}

	label, rejected, ok := Gate(raw)
	if !ok {
		return RecognizeResult{Label: raw, Nutrition: rejected}, nil
	}
	return RecognizeResult{Label: label, Nutrition: s.Lookup(ctx, label)}, nil
}

// Classify runs the configured classifier without a nutrition lookup.
func (s *Service) Classify(ctx context.Context, image []byte) (string, error) {
	if s.classifier == nil {
		return "", ErrNoClassifier
	}
	label, err := s.classifier.Classify(ctx, image)
	if err != nil {
		return "", fmt.Errorf("classify image: %w", err)
	}
	return label, nil
}
