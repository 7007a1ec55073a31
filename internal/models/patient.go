package models

const (
	SexMale   = "Male"
	SexFemale = "Female"
)

// ComponentScores holds the thirteen dietary component sub-scores of a patient.
type ComponentScores struct {
	Vegetables          float64 `gorm:"column:vegetable_score;not null;default:0" json:"vegetables"`
	Fruits              float64 `gorm:"column:fruits_score;not null;default:0" json:"fruits"`
	GrainsAndCereals    float64 `gorm:"column:grains_and_cereal_score;not null;default:0" json:"grains_and_cereals"`
	WholeGrains         float64 `gorm:"column:whole_grains_score;not null;default:0" json:"whole_grains"`
	MeatAndAlternatives float64 `gorm:"column:meat_and_alternatives_score;not null;default:0" json:"meat_and_alternatives"`
	Dairy               float64 `gorm:"column:dairy_score;not null;default:0" json:"dairy"`
	Water               float64 `gorm:"column:water_score;not null;default:0" json:"water"`
	SaturatedFats       float64 `gorm:"column:saturated_fat_score;not null;default:0" json:"saturated_fats"`
	UnsaturatedFats     float64 `gorm:"column:unsaturated_fat_score;not null;default:0" json:"unsaturated_fats"`
	Sodium              float64 `gorm:"column:sodium_score;not null;default:0" json:"sodium"`
	Sugar               float64 `gorm:"column:sugar_score;not null;default:0" json:"sugar"`
	Alcohol             float64 `gorm:"column:alcohol_score;not null;default:0" json:"alcohol"`
	DiscretionaryFoods  float64 `gorm:"column:discretionary_foods_score;not null;default:0" json:"discretionary_foods"`
}

type Patient struct {
	UserID              string  `gorm:"column:user_id;primaryKey"`
	PhoneNumber         string  `gorm:"column:phone_number;not null"`
	Name                *string `gorm:"column:name"`
	Sex                 string  `gorm:"column:sex;not null"`
	Password            *string `gorm:"column:password"`
	ComponentScores     `gorm:"embedded"`
	TotalScore          float64 `gorm:"column:total_score;not null;default:0"`
	FruitServeSize      float64 `gorm:"column:fruit_serve_size;not null;default:0"`
	FruitVariationScore float64 `gorm:"column:fruit_variation_score;not null;default:0"`
	PushToken           *string `gorm:"column:push_token"`
}

func (Patient) TableName() string {
	return "patients"
}

// IsRegistered reports whether the patient has claimed the account.
func (patient Patient) IsRegistered() bool {
	return patient.Name != nil
}

// SexScores is the projection used by clinician aggregate queries.
type SexScores struct {
	Sex             string `gorm:"column:sex"`
	ComponentScores `gorm:"embedded"`
}
