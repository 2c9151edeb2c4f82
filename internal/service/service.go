package service

import (
	"github.com/mwhite7112/woodpantry-nutrition/internal/classifier"
	"github.com/mwhite7112/woodpantry-nutrition/internal/fdc"
)

// Service holds all dependencies for the nutrition service layer.
type Service struct {
	api        fdc.API
	apiKey     string
	classifier classifier.Classifier
}

// New creates a new Service. cls may be nil when no image classifier is
// configured; Recognize then returns ErrNoClassifier.
func New(api fdc.API, apiKey string, cls classifier.Classifier) *Service {
	return &Service{api: api, apiKey: apiKey, classifier: cls}
}

// CanClassify reports whether an image classifier is configured.
func (s *Service) CanClassify() bool {
	return s.classifier != nil
}
