package services

import (
	"context"
	"errors"
	"testing"

	"github.com/terraincognita07/nutritrack/internal/models"
)

type stubFruitLookup struct {
	fruits  map[string]models.Fruit
	err     error
	queries []string
}

func (stub *stubFruitLookup) FruitByName(_ context.Context, name string) (models.Fruit, bool, error) {
	stub.queries = append(stub.queries, name)
	if stub.err != nil {
		return models.Fruit{}, false, stub.err
	}
	fruit, ok := stub.fruits[name]
	return fruit, ok, nil
}

type stubImageSource struct {
	url string
	err error
}

func (stub stubImageSource) RandomImageURL(context.Context) (string, error) {
	return stub.url, stub.err
}

func TestLookupFruitNormalizesQuery(t *testing.T) {
	t.Parallel()

	lookup := &stubFruitLookup{fruits: map[string]models.Fruit{
		"banana": {Name: "Banana", Family: "Musaceae", Nutritions: models.Nutritions{Sugar: 17.2}},
	}}
	service := NewCoachService(lookup, stubImageSource{})

	fruit, err := service.LookupFruit(context.Background(), "  BaNaNa ")
	if err != nil {
		t.Fatalf("LookupFruit() unexpected error: %v", err)
	}
	if fruit.Family != "Musaceae" || fruit.Nutritions.Sugar != 17.2 {
		t.Fatalf("unexpected fruit %+v", fruit)
	}
	if len(lookup.queries) != 1 || lookup.queries[0] != "banana" {
		t.Fatalf("expected normalized query, got %v", lookup.queries)
	}
}

func TestLookupFruitFailures(t *testing.T) {
	t.Parallel()

	service := NewCoachService(&stubFruitLookup{}, stubImageSource{})
	if _, err := service.LookupFruit(context.Background(), " "); !errors.Is(err, ErrFruitNameRequired) {
		t.Fatalf("expected ErrFruitNameRequired, got %v", err)
	}
	if _, err := service.LookupFruit(context.Background(), "dragonberry"); !errors.Is(err, ErrFruitNotFound) {
		t.Fatalf("expected ErrFruitNotFound, got %v", err)
	}

	broken := NewCoachService(&stubFruitLookup{err: errors.New("dial tcp: timeout")}, stubImageSource{})
	_, err := broken.LookupFruit(context.Background(), "apple")
	if !errors.Is(err, ErrUpstream) || !errors.Is(err, ErrFruitNotFound) {
		t.Fatalf("expected upstream fruit-not-found error, got %v", err)
	}
}

func TestRandomImage(t *testing.T) {
	t.Parallel()

	service := NewCoachService(&stubFruitLookup{}, stubImageSource{url: "https://fastly.picsum.photos/id/1/1000/1000.jpg"})
	url, err := service.RandomImage(context.Background())
	if err != nil || url == "" {
		t.Fatalf("RandomImage() = %q, %v", url, err)
	}

	failing := NewCoachService(&stubFruitLookup{}, stubImageSource{err: errors.New("offline")})
	if _, err := failing.RandomImage(context.Background()); !errors.Is(err, ErrImageUnavailable) {
		t.Fatalf("expected ErrImageUnavailable, got %v", err)
	}
}
