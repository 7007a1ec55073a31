package models

// Fruit is the nutrition record returned by the fruit lookup service.
type Fruit struct {
	Name       string     `json:"name"`
	Family     string     `json:"family"`
	Nutritions Nutritions `json:"nutritions"`
}

type Nutritions struct {
	Carbohydrates float64 `json:"carbohydrates"`
	Protein       float64 `json:"protein"`
	Fat           float64 `json:"fat"`
	Calories      float64 `json:"calories"`
	Sugar         float64 `json:"sugar"`
}
