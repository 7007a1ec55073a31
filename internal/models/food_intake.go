package models

import (
	"strings"

	"gorm.io/datatypes"
)

type FoodCategory string

const (
	FoodCategoryVegetables FoodCategory = "VEGETABLES"
	FoodCategoryFruits     FoodCategory = "FRUITS"
	FoodCategoryGrains     FoodCategory = "GRAINS"
	FoodCategoryRedMeat    FoodCategory = "RED_MEAT"
	FoodCategorySeafood    FoodCategory = "SEAFOOD"
	FoodCategoryPoultry    FoodCategory = "POULTRY"
	FoodCategoryFish       FoodCategory = "FISH"
	FoodCategoryEggs       FoodCategory = "EGGS"
	FoodCategoryNutsSeeds  FoodCategory = "NUTS_SEEDS"
)

var foodCategoryLabels = map[FoodCategory]string{
	FoodCategoryVegetables: "Vegetables",
	FoodCategoryFruits:     "Fruits",
	FoodCategoryGrains:     "Grains",
	FoodCategoryRedMeat:    "Red Meat",
	FoodCategorySeafood:    "Seafood",
	FoodCategoryPoultry:    "Poultry",
	FoodCategoryFish:       "Fish",
	FoodCategoryEggs:       "Eggs",
	FoodCategoryNutsSeeds:  "Nuts/Seeds",
}

// FoodCategories lists every category in display order.
func FoodCategories() []FoodCategory {
	return []FoodCategory{
		FoodCategoryVegetables,
		FoodCategoryFruits,
		FoodCategoryGrains,
		FoodCategoryRedMeat,
		FoodCategorySeafood,
		FoodCategoryPoultry,
		FoodCategoryFish,
		FoodCategoryEggs,
		FoodCategoryNutsSeeds,
	}
}

func (category FoodCategory) Label() string {
	return foodCategoryLabels[category]
}

func (category FoodCategory) Valid() bool {
	_, ok := foodCategoryLabels[category]
	return ok
}

func ParseFoodCategory(raw string) (FoodCategory, bool) {
	category := FoodCategory(strings.ToUpper(strings.TrimSpace(raw)))
	return category, category.Valid()
}

type Persona string

const (
	PersonaHealthDevotee        Persona = "HEALTH_DEVOTEE"
	PersonaMindfulEater         Persona = "MINDFUL_EATER"
	PersonaWellnessStriver      Persona = "WELLNESS_STRIVER"
	PersonaBalanceSeeker        Persona = "BALANCE_SEEKER"
	PersonaHealthProcrastinator Persona = "HEALTH_PROCRASTINATOR"
	PersonaFoodCarefree         Persona = "FOOD_CAREFREE"
)

type personaInfo struct {
	name        string
	description string
}

var personaCatalog = map[Persona]personaInfo{
	PersonaHealthDevotee: {
		name:        "Health Devotee",
		description: "I’m passionate about healthy eating & health plays a big part in my life. I use social media to follow active lifestyle personalities or get new recipes/exercise ideas. I may even buy superfoods or follow a particular type of diet. I like to think I am super healthy.",
	},
	PersonaMindfulEater: {
		name:        "Mindful Eater",
		description: "I’m health-conscious and being healthy and eating healthy is important to me. Although health means different things to different people, I make conscious lifestyle decisions about eating based on what I believe healthy means. I look for new recipes and healthy eating information on social media.",
	},
	PersonaWellnessStriver: {
		name:        "Wellness Striver",
		description: "I aspire to be healthy (but struggle sometimes). Healthy eating is hard work! I’ve tried to improve my diet, but always find things that make it difficult to stick with the changes. Sometimes I notice recipe ideas or healthy eating hacks, and if it seems easy enough, I’ll give it a go.",
	},
	PersonaBalanceSeeker: {
		name:        "Balance Seeker",
		description: "I try and live a balanced lifestyle, and I think that all foods are okay in moderation. I shouldn’t have to feel guilty about eating a piece of cake now and again. I get all sorts of inspiration from social media like finding out about new restaurants, fun recipes and sometimes healthy eating tips.",
	},
	PersonaHealthProcrastinator: {
		name:        "Health Procrastinator",
		description: "I’m contemplating healthy eating but it’s not a priority for me right now. I know the basics about what it means to be healthy, but it doesn’t seem relevant to me right now. I have taken a few steps to be healthier but I am not motivated to make it a high priority because I have too many other things going on in my life.",
	},
	PersonaFoodCarefree: {
		name:        "Food Carefree",
		description: "I’m not bothered about healthy eating. I don’t really see the point and I don’t think about it. I don’t really notice healthy eating tips or recipes and I don’t care what I eat.",
	},
}

func Personas() []Persona {
	return []Persona{
		PersonaHealthDevotee,
		PersonaMindfulEater,
		PersonaWellnessStriver,
		PersonaBalanceSeeker,
		PersonaHealthProcrastinator,
		PersonaFoodCarefree,
	}
}

func (persona Persona) DisplayName() string {
	return personaCatalog[persona].name
}

func (persona Persona) Description() string {
	return personaCatalog[persona].description
}

func (persona Persona) Valid() bool {
	_, ok := personaCatalog[persona]
	return ok
}

func ParsePersona(raw string) (Persona, bool) {
	persona := Persona(strings.ToUpper(strings.TrimSpace(raw)))
	return persona, persona.Valid()
}

type TimingQuestion string

const (
	TimingSleep       TimingQuestion = "SLEEP_TIME"
	TimingWakeUp      TimingQuestion = "WAKE_UP_TIME"
	TimingBiggestMeal TimingQuestion = "BIGGEST_MEAL_TIME"
)

var timingPrompts = map[TimingQuestion]string{
	TimingSleep:       "What time of day approx, do you go to sleep at night?",
	TimingWakeUp:      "What time of day approx, do you wake up in the morning?",
	TimingBiggestMeal: "What time of day approx, do you normally eat your biggest meal?",
}

// TimingQuestions returns the fixed slot order of the timing list.
func TimingQuestions() []TimingQuestion {
	return []TimingQuestion{TimingSleep, TimingWakeUp, TimingBiggestMeal}
}

func (question TimingQuestion) Prompt() string {
	return timingPrompts[question]
}

func (question TimingQuestion) Valid() bool {
	_, ok := timingPrompts[question]
	return ok
}

func ParseTimingQuestion(raw string) (TimingQuestion, bool) {
	question := TimingQuestion(strings.ToUpper(strings.TrimSpace(raw)))
	return question, question.Valid()
}

// TimingAnswer pairs a question with an "HH:MM" answer; an empty answer means unanswered.
type TimingAnswer struct {
	Question TimingQuestion `json:"question"`
	Answer   string         `json:"answer"`
}

func (answer TimingAnswer) Answered() bool {
	return answer.Answer != ""
}

// EmptyTimingAnswers returns the three unanswered slots in fixed order.
func EmptyTimingAnswers() []TimingAnswer {
	questions := TimingQuestions()
	answers := make([]TimingAnswer, 0, len(questions))
	for _, question := range questions {
		answers = append(answers, TimingAnswer{Question: question})
	}
	return answers
}

type FoodIntake struct {
	PatientID      string                            `gorm:"column:patient_id;primaryKey"`
	FoodCategories []FoodCategory                    `gorm:"column:food_categories;serializer:json;not null"`
	Persona        *Persona                          `gorm:"column:persona"`
	TimingAnswers  datatypes.JSONSlice[TimingAnswer] `gorm:"column:timing_answers;not null"`
}

func (FoodIntake) TableName() string {
	return "food_intakes"
}
