package services

import (
	"fmt"

	"nutriclinic/internal/models"
	"nutriclinic/internal/nutrition"
	"nutriclinic/internal/repository"
)

// Incoming plan structure from the builder UI. Items carry only the
// raw inputs; all totals are recomputed server-side at save time.
type MealItemRequest struct {
	FoodID    uint    `json:"food_id" binding:"required"`
	MeasureID *uint   `json:"measure_id"`
	Quantity  float64 `json:"quantity"`
}

type MealRequest struct {
	Name        string            `json:"name" binding:"required"`
	ScheduledAt string            `json:"scheduled_at"`
	Icon        string            `json:"icon"`
	Custom      bool              `json:"custom"`
	Items       []MealItemRequest `json:"items"`
}

type MealPlanRequest struct {
	ClientID      uint          `json:"client_id" binding:"required"`
	Name          string        `json:"name" binding:"required"`
	StartDate     string        `json:"start_date"`
	EndDate       string        `json:"end_date"`
	TargetKcal    float64       `json:"target_kcal"`
	TargetProtein float64       `json:"target_protein"`
	TargetCarb    float64       `json:"target_carb"`
	TargetFat     float64       `json:"target_fat"`
	Meals         []MealRequest `json:"meals"`
}

// MealTotals pairs a meal's name with its aggregate for the response
// payload shown live in the builder.
type MealTotals struct {
	Name   string           `json:"name"`
	Totals nutrition.Totals `json:"totals"`
}

// PlanCalculator turns raw plan input into meals with snapshotted
// item totals. It is the only place item totals are computed, so the
// builder preview and the persisted rows can never disagree.
type PlanCalculator struct {
	foodRepo    repository.FoodRepository
	measureRepo repository.MeasureRepository
}

func NewPlanCalculator(foodRepo repository.FoodRepository, measureRepo repository.MeasureRepository) *PlanCalculator {
	return &PlanCalculator{foodRepo: foodRepo, measureRepo: measureRepo}
}

// BuildItem resolves the item's measure, scales the food's per-100g
// profile and returns the row with totals snapshotted.
func (pc *PlanCalculator) BuildItem(tenantID uint, req MealItemRequest) (*models.MealItem, error) {
	if req.Quantity < 0 {
		return nil, fmt.Errorf("quantity must not be negative")
	}

	food, err := pc.foodRepo.FindByID(tenantID, req.FoodID)
	if err != nil {
		return nil, fmt.Errorf("food %d not found", req.FoodID)
	}

	measures := food.Measures
	if len(measures) == 0 {
		measures, err = pc.measureRepo.FindByFoodID(food.ID)
		if err != nil {
			return nil, err
		}
	}

	gramsPerUnit := nutrition.ResolveMeasure(models.MeasureOptions(measures), req.MeasureID)
	totals, err := nutrition.Scale(food.Profile(), gramsPerUnit, req.Quantity)
	if err != nil {
		return nil, err
	}

	return &models.MealItem{
		FoodID:       food.ID,
		MeasureID:    req.MeasureID,
		Quantity:     req.Quantity,
		GramsTotal:   totals.Grams,
		KcalTotal:    totals.Calories,
		ProteinTotal: totals.Protein,
		CarbTotal:    totals.Carbs,
		FatTotal:     totals.Fats,
	}, nil
}

// BuildMeals computes every item of every meal. Position follows the
// request ordering.
func (pc *PlanCalculator) BuildMeals(tenantID uint, reqs []MealRequest) ([]models.Meal, error) {
	meals := make([]models.Meal, 0, len(reqs))
	for pos, mr := range reqs {
		meal := models.Meal{
			Name:        mr.Name,
			ScheduledAt: mr.ScheduledAt,
			Icon:        mr.Icon,
			Position:    pos,
			Custom:      mr.Custom,
		}
		for _, ir := range mr.Items {
			item, err := pc.BuildItem(tenantID, ir)
			if err != nil {
				return nil, fmt.Errorf("meal %q: %w", mr.Name, err)
			}
			meal.Items = append(meal.Items, *item)
		}
		meals = append(meals, meal)
	}
	return meals, nil
}

// MealTotalsOf re-sums one meal's item snapshots.
func MealTotalsOf(meal *models.Meal) nutrition.Totals {
	items := make([]nutrition.Totals, 0, len(meal.Items))
	for _, it := range meal.Items {
		items = append(items, nutrition.Totals{
			Grams:    it.GramsTotal,
			Calories: it.KcalTotal,
			Protein:  it.ProteinTotal,
			Carbs:    it.CarbTotal,
			Fats:     it.FatTotal,
		})
	}
	return nutrition.Sum(items)
}

// PlanTotalsOf returns per-meal aggregates and the plan aggregate,
// always from a full re-sum over the current items.
func PlanTotalsOf(meals []models.Meal) ([]MealTotals, nutrition.Totals) {
	perMeal := make([]MealTotals, 0, len(meals))
	subtotals := make([]nutrition.Totals, 0, len(meals))
	for i := range meals {
		t := MealTotalsOf(&meals[i])
		perMeal = append(perMeal, MealTotals{Name: meals[i].Name, Totals: t})
		subtotals = append(subtotals, t)
	}
	return perMeal, nutrition.Sum(subtotals)
}
