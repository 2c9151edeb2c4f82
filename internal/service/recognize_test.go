package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mwhite7112/woodpantry-nutrition/internal/classifier"
	"github.com/mwhite7112/woodpantry-nutrition/internal/fdc"
	"github.com/mwhite7112/woodpantry-nutrition/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var jpeg = []byte{0xff, 0xd8, 0xff}

func TestRecognize_ClassifiesThenLooksUp(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockAPI(t)
	cls := mocks.NewMockClassifier(t)
	svc := New(api, "key", cls)

	cls.EXPECT().Classify(mock.Anything, jpeg).Return(" banana ", nil)
	bananaSearch(api)
	api.EXPECT().GetFood(mock.Anything, 1105314).Return(fdc.Food{
		Description:   "Bananas, raw",
		FoodNutrients: []fdc.FoodNutrient{nutrient(1008, "Energy", "kcal", 89)},
	}, nil)

	got, err := svc.Recognize(context.Background(), jpeg)
	require.NoError(t, err)
	assert.Equal(t, "banana", got.Label)
	require.IsType(t, Match{}, got.Nutrition)
	assert.Len(t, got.Nutrition.(Match).Nutrients, 1)
}

func TestRecognize_SentinelLabelSkipsLookup(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockAPI(t)
	cls := mocks.NewMockClassifier(t)
	svc := New(api, "key", cls)

	cls.EXPECT().Classify(mock.Anything, jpeg).Return(classifier.Unknown, nil)

	got, err := svc.Recognize(context.Background(), jpeg)
	require.NoError(t, err)
	assert.Equal(t, "unknown", got.Label)
	assert.Equal(t, NotFound{Message: VagueLabelMessage}, got.Nutrition)
	assert.Empty(t, api.Calls)
}

func TestRecognize_ClassifierError(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockAPI(t)
	cls := mocks.NewMockClassifier(t)
	svc := New(api, "key", cls)

	boom := errors.New("model unavailable")
	cls.EXPECT().Classify(mock.Anything, jpeg).Return("", boom)

	_, err := svc.Recognize(context.Background(), jpeg)
	require.ErrorIs(t, err, boom)
}

func TestRecognize_NoClassifier(t *testing.T) {
	t.Parallel()

	svc := New(mocks.NewMockAPI(t), "key", nil)
	assert.False(t, svc.CanClassify())

	_, err := svc.Recognize(context.Background(), jpeg)
	require.ErrorIs(t, err, ErrNoClassifier)

	_, err = svc.Classify(context.Background(), jpeg)
	require.ErrorIs(t, err, ErrNoClassifier)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	cls := mocks.NewMockClassifier(t)
	svc := New(mocks.NewMockAPI(t), "key", cls)
	assert.True(t, svc.CanClassify())

	cls.EXPECT().Classify(mock.Anything, jpeg).Return("Pizza", nil)

	label, err := svc.Classify(context.Background(), jpeg)
	require.NoError(t, err)
	assert.Equal(t, "Pizza", label)
}
