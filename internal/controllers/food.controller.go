package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"nutriclinic/internal/cache"
	"nutriclinic/internal/models"
	"nutriclinic/internal/nutrition"
	"nutriclinic/internal/repository"
)

const foodSearchCacheTTL = 10 * time.Minute

type FoodController struct {
	repo        repository.FoodRepository
	measureRepo repository.MeasureRepository
	cache       *cache.RedisClient
}

// NewFoodController creates the controller; cache may be nil, in
// which case searches always hit the database.
func NewFoodController(repo repository.FoodRepository, measureRepo repository.MeasureRepository, redis *cache.RedisClient) *FoodController {
	return &FoodController{repo: repo, measureRepo: measureRepo, cache: redis}
}

// CreateFood godoc
// @Summary Create a custom food
// @Description Create a tenant-owned food from manually entered nutrition facts. The energy value is checked against the macro-derived value; an inconsistency is returned as a warning but does not block saving.
// @Tags food
// @Accept json
// @Produce json
// @Param food body models.Food true "Food data (per 100 g)"
// @Success 201 {object} map[string]interface{} "Food created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create food"
// @Router /foods [post]
func (fc *FoodController) CreateFood(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var food models.Food
	if err := c.ShouldBindJSON(&food); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if food.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Food name is required",
			"error":   "Name must not be empty",
		})
		return
	}

	food.ID = 0
	food.TenantID = tenantID
	food.Source = models.FoodSourceCustom

	// Advisory check: stated energy vs the 4/4/9 macro-derived value.
	check := nutrition.ValidateEnergy(food.EnergyKcal, food.ProteinG, food.CarbohydrateG, food.LipidG)

	if err := fc.repo.Create(&food); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create food",
			"error":   err.Error(),
		})
		return
	}

	fc.invalidateSearches(tenantID)

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Food created successfully",
		"data": gin.H{
			"food":         food,
			"energy_check": check,
		},
	})
}

// ValidateFood godoc
// @Summary Check nutrition facts consistency
// @Description Verify that declared energy is plausible given declared macros, without saving anything
// @Tags food
// @Accept json
// @Produce json
// @Param facts body models.Food true "Nutrition facts (per 100 g)"
// @Success 200 {object} map[string]interface{} "Validation result"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /foods/validate [post]
func (fc *FoodController) ValidateFood(c *gin.Context) {
	if _, ok := requireTenant(c); !ok {
		return
	}

	var food models.Food
	if err := c.ShouldBindJSON(&food); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	check := nutrition.ValidateEnergy(food.EnergyKcal, food.ProteinG, food.CarbohydrateG, food.LipidG)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Validation completed",
		"data":    check,
	})
}

// SearchFoods godoc
// @Summary Search foods
// @Description Search reference and custom foods by name and category
// @Tags food
// @Produce json
// @Param q query string false "Name filter"
// @Param category query string false "Category filter"
// @Param limit query int false "Maximum results (default 50)"
// @Success 200 {object} map[string]interface{} "Foods retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to search foods"
// @Router /foods [get]
func (fc *FoodController) SearchFoods(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	query := c.Query("q")
	category := c.Query("category")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	if fc.cache != nil {
		if foods, hit := fc.cache.GetFoodSearch(tenantID, query, category, limit); hit {
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Foods retrieved successfully",
				"data":    foods,
				"cached":  true,
			})
			return
		}
	}

	foods, err := fc.repo.Search(tenantID, query, category, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to search foods",
			"error":   err.Error(),
		})
		return
	}

	if fc.cache != nil {
		// cache failures never fail the request
		_ = fc.cache.StoreFoodSearch(tenantID, query, category, limit, foods, foodSearchCacheTTL)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Foods retrieved successfully",
		"data":    foods,
	})
}

// GetFoodByID godoc
// @Summary Get a food by ID
// @Description Retrieve one food with its measures
// @Tags food
// @Produce json
// @Param id path int true "Food ID"
// @Success 200 {object} map[string]interface{} "Food retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid food ID"
// @Failure 404 {object} map[string]interface{} "Food not found"
// @Router /foods/{id} [get]
func (fc *FoodController) GetFoodByID(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid food ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	food, err := fc.repo.FindByID(tenantID, uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Food not found",
			"error":   "No food exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food retrieved successfully",
		"data":    food,
	})
}

// UpdateFood godoc
// @Summary Update a custom food
// @Description Update a tenant-owned food. Saved meal items keep their snapshotted totals.
// @Tags food
// @Accept json
// @Produce json
// @Param id path int true "Food ID"
// @Param food body models.Food true "Food data"
// @Success 200 {object} map[string]interface{} "Food updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Food not found"
// @Router /foods/{id} [put]
func (fc *FoodController) UpdateFood(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid food ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	existing, err := fc.repo.FindByID(tenantID, uint(id))
	if err != nil || existing.Source != models.FoodSourceCustom || existing.TenantID != tenantID {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Food not found",
			"error":   "No editable food exists with the provided ID",
		})
		return
	}

	var food models.Food
	if err := c.ShouldBindJSON(&food); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	food.ID = uint(id)
	food.TenantID = tenantID
	food.Source = models.FoodSourceCustom

	check := nutrition.ValidateEnergy(food.EnergyKcal, food.ProteinG, food.CarbohydrateG, food.LipidG)

	if err := fc.repo.Update(&food); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update food",
			"error":   err.Error(),
		})
		return
	}

	fc.invalidateSearches(tenantID)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food updated successfully",
		"data": gin.H{
			"food":         food,
			"energy_check": check,
		},
	})
}

// DeleteFood godoc
// @Summary Delete a custom food
// @Description Delete a tenant-owned food; reference foods cannot be deleted
// @Tags food
// @Produce json
// @Param id path int true "Food ID"
// @Success 200 {object} map[string]interface{} "Food deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid food ID"
// @Failure 500 {object} map[string]interface{} "Failed to delete food"
// @Router /foods/{id} [delete]
func (fc *FoodController) DeleteFood(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid food ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := fc.repo.Delete(tenantID, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete food",
			"error":   err.Error(),
		})
		return
	}

	fc.invalidateSearches(tenantID)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food deleted successfully",
		"data":    nil,
	})
}

// GetMeasures godoc
// @Summary List measures for a food
// @Description Retrieve the portion measures defined for a food
// @Tags food
// @Produce json
// @Param id path int true "Food ID"
// @Success 200 {object} map[string]interface{} "Measures retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid food ID"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve measures"
// @Router /foods/{id}/measures [get]
func (fc *FoodController) GetMeasures(c *gin.Context) {
	if _, ok := requireTenant(c); !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid food ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	measures, err := fc.measureRepo.FindByFoodID(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve measures",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Measures retrieved successfully",
		"data":    measures,
	})
}

// CreateMeasure godoc
// @Summary Add a measure to a food
// @Description Create a portion measure with its gram weight. Only the owning tenant's custom foods accept new measures; reference foods are immutable.
// @Tags food
// @Accept json
// @Produce json
// @Param id path int true "Food ID"
// @Param measure body models.Measure true "Measure data"
// @Success 201 {object} map[string]interface{} "Measure created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Food not found"
// @Router /foods/{id}/measures [post]
func (fc *FoodController) CreateMeasure(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid food ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	// Measures on a reference food are shared by every tenant, so
	// writes are restricted to the tenant's own custom foods.
	food, err := fc.repo.FindByID(tenantID, uint(id))
	if err != nil || food.Source != models.FoodSourceCustom || food.TenantID != tenantID {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Food not found",
			"error":   "No editable food exists with the provided ID",
		})
		return
	}

	var measure models.Measure
	if err := c.ShouldBindJSON(&measure); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if measure.Grams <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid measure",
			"error":   "Gram weight must be positive",
		})
		return
	}

	measure.FoodID = uint(id)

	if err := fc.measureRepo.Create(&measure); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create measure",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Measure created successfully",
		"data":    measure,
	})
}

// UpdateMeasure godoc
// @Summary Update a measure
// @Description Change a portion measure's name, gram weight or default flag on a tenant-owned custom food
// @Tags food
// @Accept json
// @Produce json
// @Param id path int true "Food ID"
// @Param measure_id path int true "Measure ID"
// @Param measure body models.Measure true "Measure data"
// @Success 200 {object} map[string]interface{} "Measure updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Measure not found"
// @Router /foods/{id}/measures/{measure_id} [put]
func (fc *FoodController) UpdateMeasure(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	foodID, measureID, ok := fc.ownedMeasureIDs(c, tenantID)
	if !ok {
		return
	}

	existing, err := fc.measureRepo.FindByID(measureID)
	if err != nil || existing.FoodID != foodID {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Measure not found",
			"error":   "No measure exists with the provided ID for this food",
		})
		return
	}

	var measure models.Measure
	if err := c.ShouldBindJSON(&measure); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if measure.Grams <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid measure",
			"error":   "Gram weight must be positive",
		})
		return
	}

	measure.ID = measureID
	measure.FoodID = foodID

	if err := fc.measureRepo.Update(&measure); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update measure",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Measure updated successfully",
		"data":    measure,
	})
}

// DeleteMeasure godoc
// @Summary Delete a measure
// @Description Remove a portion measure from a tenant-owned custom food
// @Tags food
// @Produce json
// @Param id path int true "Food ID"
// @Param measure_id path int true "Measure ID"
// @Success 200 {object} map[string]interface{} "Measure deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid measure ID"
// @Failure 404 {object} map[string]interface{} "Measure not found"
// @Router /foods/{id}/measures/{measure_id} [delete]
func (fc *FoodController) DeleteMeasure(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	foodID, measureID, ok := fc.ownedMeasureIDs(c, tenantID)
	if !ok {
		return
	}

	existing, err := fc.measureRepo.FindByID(measureID)
	if err != nil || existing.FoodID != foodID {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Measure not found",
			"error":   "No measure exists with the provided ID for this food",
		})
		return
	}

	if err := fc.measureRepo.Delete(measureID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete measure",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Measure deleted successfully",
		"data":    nil,
	})
}

// ownedMeasureIDs parses the food and measure path params and checks
// that the food is a custom food owned by the tenant. Writes the error
// response itself on failure.
func (fc *FoodController) ownedMeasureIDs(c *gin.Context, tenantID uint) (uint, uint, bool) {
	foodID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid food ID",
			"error":   "ID must be a valid positive integer",
		})
		return 0, 0, false
	}

	measureID, err := strconv.ParseUint(c.Param("measure_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid measure ID",
			"error":   "ID must be a valid positive integer",
		})
		return 0, 0, false
	}

	food, err := fc.repo.FindByID(tenantID, uint(foodID))
	if err != nil || food.Source != models.FoodSourceCustom || food.TenantID != tenantID {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Food not found",
			"error":   "No editable food exists with the provided ID",
		})
		return 0, 0, false
	}

	return uint(foodID), uint(measureID), true
}

func (fc *FoodController) invalidateSearches(tenantID uint) {
	if fc.cache == nil {
		return
	}
	_ = fc.cache.InvalidateFoodSearches(tenantID)
}
