package classifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// Unknown is returned when the model finds nothing usable in the image.
const Unknown = "unknown"

// ErrEmptyImage is returned for a zero-length image.
var ErrEmptyImage = errors.New("empty image")

// Classifier turns an image into a single food label.
type Classifier interface {
	Classify(ctx context.Context, image []byte) (string, error)
}

// DetectLabelsAPI is the Rekognition call the classifier depends on.
type DetectLabelsAPI interface {
	DetectLabels(ctx context.Context, params *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
}

const (
	maxLabels     = 5
	minConfidence = 75
)

// Rekognition classifies images with AWS Rekognition DetectLabels.
type Rekognition struct {
	api DetectLabelsAPI
}

// NewRekognition wraps an existing Rekognition client.
func NewRekognition(api DetectLabelsAPI) *Rekognition {
	return &Rekognition{api: api}
}

// NewRekognitionFromEnv loads the default AWS config for region and builds a
// Rekognition classifier from it.
func NewRekognitionFromEnv(ctx context.Context, region string) (*Rekognition, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewRekognition(rekognition.NewFromConfig(cfg)), nil
}

// Classify returns the highest-confidence label, or Unknown if none clear the
// confidence floor.
func (r *Rekognition) Classify(ctx context.Context, image []byte) (string, error) {
	if len(image) == 0 {
		return "", ErrEmptyImage
	}

	out, err := r.api.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: image},
		MaxLabels:     aws.Int32(maxLabels),
		MinConfidence: aws.Float32(minConfidence),
	})
	if err != nil {
		return "", fmt.Errorf("detect labels: %w", err)
	}

	// Rekognition orders labels by confidence; the first named one wins.
	for _, l := range out.Labels {
		if name := aws.ToString(l.Name); name != "" {
			return name, nil
		}
	}
	return Unknown, nil
}
