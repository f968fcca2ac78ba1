package utils

import (
	"log"

	"gorm.io/gorm"

	"nutriclinic/internal/models"
)

type seedFood struct {
	food     models.Food
	measures []models.Measure
}

// Per-100g values from the Brazilian TACO table (4th edition),
// rounded. Reference foods are global: TenantID stays 0.
var referenceFoods = []seedFood{
	{
		food: models.Food{Name: "Arroz branco cozido", Category: "Cereais", Source: models.FoodSourceReference,
			EnergyKcal: 128, ProteinG: 2.5, CarbohydrateG: 28.1, LipidG: 0.2, FiberG: 1.6, SodiumMg: 1},
		measures: []models.Measure{
			{MeasureName: "100 gramas", Grams: 100},
			{MeasureName: "colher de sopa", Grams: 25, IsDefault: true},
			{MeasureName: "escumadeira", Grams: 80},
		},
	},
	{
		food: models.Food{Name: "Feijão carioca cozido", Category: "Leguminosas", Source: models.FoodSourceReference,
			EnergyKcal: 76, ProteinG: 4.8, CarbohydrateG: 13.6, LipidG: 0.5, FiberG: 8.5, SodiumMg: 2},
		measures: []models.Measure{
			{MeasureName: "100 gramas", Grams: 100},
			{MeasureName: "concha", Grams: 86, IsDefault: true},
		},
	},
	{
		food: models.Food{Name: "Peito de frango grelhado", Category: "Carnes", Source: models.FoodSourceReference,
			EnergyKcal: 159, ProteinG: 32, CarbohydrateG: 0, LipidG: 2.5, SodiumMg: 51, SaturatedFatG: 0.8},
		measures: []models.Measure{
			{MeasureName: "100 gramas", Grams: 100},
			{MeasureName: "filé médio", Grams: 120, IsDefault: true},
		},
	},
	{
		food: models.Food{Name: "Ovo de galinha cozido", Category: "Ovos", Source: models.FoodSourceReference,
			EnergyKcal: 146, ProteinG: 13.3, CarbohydrateG: 0.6, LipidG: 9.5, SodiumMg: 146, SaturatedFatG: 3.1},
		measures: []models.Measure{
			{MeasureName: "100 gramas", Grams: 100},
			{MeasureName: "unidade", Grams: 50, IsDefault: true},
		},
	},
	{
		food: models.Food{Name: "Pão francês", Category: "Panificados", Source: models.FoodSourceReference,
			EnergyKcal: 300, ProteinG: 8, CarbohydrateG: 58.6, LipidG: 3.1, FiberG: 2.3, SodiumMg: 648},
		measures: []models.Measure{
			{MeasureName: "100 gramas", Grams: 100},
			{MeasureName: "unidade", Grams: 50, IsDefault: true},
			{MeasureName: "fatia", Grams: 25},
		},
	},
	{
		food: models.Food{Name: "Banana prata", Category: "Frutas", Source: models.FoodSourceReference,
			EnergyKcal: 98, ProteinG: 1.3, CarbohydrateG: 26, LipidG: 0.1, FiberG: 2},
		measures: []models.Measure{
			{MeasureName: "100 gramas", Grams: 100},
			{MeasureName: "unidade", Grams: 70, IsDefault: true},
		},
	},
	{
		food: models.Food{Name: "Leite integral", Category: "Laticínios", Source: models.FoodSourceReference,
			EnergyKcal: 61, ProteinG: 2.9, CarbohydrateG: 4.5, LipidG: 3.2, SodiumMg: 45, SaturatedFatG: 1.9},
		measures: []models.Measure{
			{MeasureName: "100 gramas", Grams: 100},
			{MeasureName: "copo", Grams: 200, IsDefault: true},
			{MeasureName: "xícara", Grams: 240},
		},
	},
	{
		food: models.Food{Name: "Azeite de oliva", Category: "Óleos e gorduras", Source: models.FoodSourceReference,
			EnergyKcal: 884, ProteinG: 0, CarbohydrateG: 0, LipidG: 100, SaturatedFatG: 14.2},
		measures: []models.Measure{
			{MeasureName: "100 gramas", Grams: 100},
			{MeasureName: "colher de sopa", Grams: 13, IsDefault: true},
			{MeasureName: "colher de chá", Grams: 4},
		},
	},
	{
		food: models.Food{Name: "Batata doce cozida", Category: "Tubérculos", Source: models.FoodSourceReference,
			EnergyKcal: 77, ProteinG: 0.6, CarbohydrateG: 18.4, LipidG: 0.1, FiberG: 2.2},
		measures: []models.Measure{
			{MeasureName: "100 gramas", Grams: 100},
			{MeasureName: "fatia", Grams: 40, IsDefault: true},
		},
	},
	{
		food: models.Food{Name: "Aveia em flocos", Category: "Cereais", Source: models.FoodSourceReference,
			EnergyKcal: 394, ProteinG: 13.9, CarbohydrateG: 66.6, LipidG: 8.5, FiberG: 9.1},
		measures: []models.Measure{
			{MeasureName: "100 gramas", Grams: 100},
			{MeasureName: "colher de sopa", Grams: 15, IsDefault: true},
		},
	},
}

// SeedReferenceFoods inserts the bundled reference foods, skipping
// any already present by name.
func SeedReferenceFoods(db *gorm.DB) error {
	seeded := 0

	for _, sf := range referenceFoods {
		var count int64
		if err := db.Model(&models.Food{}).
			Where("tenant_id = 0 AND name = ?", sf.food.Name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		food := sf.food
		if err := db.Create(&food).Error; err != nil {
			return err
		}

		for _, m := range sf.measures {
			m.FoodID = food.ID
			if err := db.Create(&m).Error; err != nil {
				return err
			}
		}
		seeded++
	}

	log.Printf("Seeded %d reference foods (%d already present)", seeded, len(referenceFoods)-seeded)
	return nil
}

// ClearReferenceFoods removes every seeded reference food and its
// measures. Custom foods are left alone.
func ClearReferenceFoods(db *gorm.DB) error {
	var foodIDs []uint
	if err := db.Model(&models.Food{}).
		Where("tenant_id = 0 AND source = ?", models.FoodSourceReference).
		Pluck("id", &foodIDs).Error; err != nil {
		return err
	}

	if len(foodIDs) == 0 {
		log.Println("No reference foods to clear")
		return nil
	}

	if err := db.Where("food_id IN ?", foodIDs).Delete(&models.Measure{}).Error; err != nil {
		return err
	}
	if err := db.Delete(&models.Food{}, foodIDs).Error; err != nil {
		return err
	}

	log.Printf("Cleared %d reference foods", len(foodIDs))
	return nil
}
