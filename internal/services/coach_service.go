package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/terraincognita07/nutritrack/internal/models"
)

type FruitLookup interface {
	FruitByName(ctx context.Context, name string) (models.Fruit, bool, error)
}

type ImageSource interface {
	RandomImageURL(ctx context.Context) (string, error)
}

// CoachService backs the coaching screen's fruit search and motivational image.
type CoachService struct {
	fruits FruitLookup
	images ImageSource
}

func NewCoachService(fruits FruitLookup, images ImageSource) *CoachService {
	return &CoachService{fruits: fruits, images: images}
}

func (service *CoachService) LookupFruit(ctx context.Context, name string) (models.Fruit, error) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return models.Fruit{}, ErrFruitNameRequired
	}
	fruit, found, err := service.fruits.FruitByName(ctx, query)
	if err != nil {
		return models.Fruit{}, &ActionError{
			Kind:    ErrUpstream,
			Message: ErrFruitNotFound.Message,
			Details: []string{fmt.Sprintf("fruit lookup %q: %v", query, err)},
		}
	}
	if !found {
		return models.Fruit{}, ErrFruitNotFound
	}
	return fruit, nil
}

func (service *CoachService) RandomImage(ctx context.Context) (string, error) {
	url, err := service.images.RandomImageURL(ctx)
	if err != nil || strings.TrimSpace(url) == "" {
		return "", ErrImageUnavailable
	}
	return url, nil
}
