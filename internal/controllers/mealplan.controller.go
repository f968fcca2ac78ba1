package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"nutriclinic/internal/models"
	"nutriclinic/internal/repository"
	"nutriclinic/internal/services"
)

type MealPlanController struct {
	repo       repository.MealPlanRepository
	calculator *services.PlanCalculator
}

func NewMealPlanController(repo repository.MealPlanRepository, calculator *services.PlanCalculator) *MealPlanController {
	return &MealPlanController{repo: repo, calculator: calculator}
}

// parsePlanDate accepts an empty date (open-ended plan) but rejects
// anything that is not YYYY-MM-DD.
func parsePlanDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}

// planDates parses both plan dates and writes the 400 response itself
// when one is malformed.
func planDates(c *gin.Context, req *services.MealPlanRequest) (time.Time, time.Time, bool) {
	startDate, err := parsePlanDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "start_date must be in YYYY-MM-DD format",
		})
		return time.Time{}, time.Time{}, false
	}

	endDate, err := parsePlanDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "end_date must be in YYYY-MM-DD format",
		})
		return time.Time{}, time.Time{}, false
	}

	return startDate, endDate, true
}

// CalculatePlan godoc
// @Summary Calculate totals for a draft plan
// @Description Compute per-meal and per-plan nutrient totals for an unsaved plan structure. Used by the builder to refresh totals after every edit.
// @Tags mealplan
// @Accept json
// @Produce json
// @Param plan body services.MealPlanRequest true "Draft plan"
// @Success 200 {object} map[string]interface{} "Totals calculated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /mealplans/calculate [post]
func (mc *MealPlanController) CalculatePlan(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var req services.MealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	meals, err := mc.calculator.BuildMeals(tenantID, req.Meals)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to calculate plan",
			"error":   err.Error(),
		})
		return
	}

	perMeal, planTotals := services.PlanTotalsOf(meals)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Totals calculated successfully",
		"data": gin.H{
			"meals":       perMeal,
			"plan_totals": planTotals,
		},
	})
}

// CreateMealPlan godoc
// @Summary Create a meal plan
// @Description Persist a plan with its meals and items. Item totals are computed server-side and snapshotted; later edits to foods do not change them.
// @Tags mealplan
// @Accept json
// @Produce json
// @Param plan body services.MealPlanRequest true "Plan data"
// @Success 201 {object} map[string]interface{} "Meal plan created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create meal plan"
// @Router /mealplans [post]
func (mc *MealPlanController) CreateMealPlan(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var req services.MealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	startDate, endDate, ok := planDates(c, &req)
	if !ok {
		return
	}

	meals, err := mc.calculator.BuildMeals(tenantID, req.Meals)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to calculate plan",
			"error":   err.Error(),
		})
		return
	}

	plan := models.MealPlan{
		TenantID:      tenantID,
		ClientID:      req.ClientID,
		Name:          req.Name,
		StartDate:     startDate,
		EndDate:       endDate,
		Status:        models.PlanStatusDraft,
		TargetKcal:    req.TargetKcal,
		TargetProtein: req.TargetProtein,
		TargetCarb:    req.TargetCarb,
		TargetFat:     req.TargetFat,
		Meals:         meals,
	}

	if err := mc.repo.Create(&plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create meal plan",
			"error":   err.Error(),
		})
		return
	}

	perMeal, planTotals := services.PlanTotalsOf(plan.Meals)

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Meal plan created successfully",
		"data": gin.H{
			"plan":        plan,
			"meal_totals": perMeal,
			"plan_totals": planTotals,
		},
	})
}

// GetMealPlanByID godoc
// @Summary Get a meal plan
// @Description Retrieve a plan with meals, items and totals re-summed from the stored item snapshots
// @Tags mealplan
// @Produce json
// @Param id path int true "Meal plan ID"
// @Success 200 {object} map[string]interface{} "Meal plan retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid meal plan ID"
// @Failure 404 {object} map[string]interface{} "Meal plan not found"
// @Router /mealplans/{id} [get]
func (mc *MealPlanController) GetMealPlanByID(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid meal plan ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	plan, err := mc.repo.FindByID(tenantID, uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Meal plan not found",
			"error":   "No meal plan exists with the provided ID",
		})
		return
	}

	perMeal, planTotals := services.PlanTotalsOf(plan.Meals)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal plan retrieved successfully",
		"data": gin.H{
			"plan":        plan,
			"meal_totals": perMeal,
			"plan_totals": planTotals,
		},
	})
}

// GetMealPlansByClient godoc
// @Summary List a client's meal plans
// @Description Retrieve all plans for one client, newest first
// @Tags mealplan
// @Produce json
// @Param client_id path int true "Client ID"
// @Success 200 {object} map[string]interface{} "Meal plans retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid client ID"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve meal plans"
// @Router /mealplans/client/{client_id} [get]
func (mc *MealPlanController) GetMealPlansByClient(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	clientID, err := strconv.ParseUint(c.Param("client_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid client ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	plans, err := mc.repo.FindByClientID(tenantID, uint(clientID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve meal plans",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal plans retrieved successfully",
		"data":    plans,
	})
}

// UpdateMealPlan godoc
// @Summary Update a meal plan
// @Description Replace a plan's structure; every item total is recomputed from current food data and snapshotted again
// @Tags mealplan
// @Accept json
// @Produce json
// @Param id path int true "Meal plan ID"
// @Param plan body services.MealPlanRequest true "Plan data"
// @Success 200 {object} map[string]interface{} "Meal plan updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Meal plan not found"
// @Router /mealplans/{id} [put]
func (mc *MealPlanController) UpdateMealPlan(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid meal plan ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	existing, err := mc.repo.FindByID(tenantID, uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Meal plan not found",
			"error":   "No meal plan exists with the provided ID",
		})
		return
	}

	var req services.MealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	startDate, endDate, ok := planDates(c, &req)
	if !ok {
		return
	}

	meals, err := mc.calculator.BuildMeals(tenantID, req.Meals)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to calculate plan",
			"error":   err.Error(),
		})
		return
	}
	for i := range meals {
		meals[i].MealPlanID = existing.ID
	}

	plan := models.MealPlan{
		ID:            existing.ID,
		TenantID:      tenantID,
		ClientID:      req.ClientID,
		Name:          req.Name,
		StartDate:     startDate,
		EndDate:       endDate,
		Status:        existing.Status,
		TargetKcal:    req.TargetKcal,
		TargetProtein: req.TargetProtein,
		TargetCarb:    req.TargetCarb,
		TargetFat:     req.TargetFat,
		Meals:         meals,
	}

	if err := mc.repo.Replace(&plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update meal plan",
			"error":   err.Error(),
		})
		return
	}

	perMeal, planTotals := services.PlanTotalsOf(plan.Meals)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal plan updated successfully",
		"data": gin.H{
			"plan":        plan,
			"meal_totals": perMeal,
			"plan_totals": planTotals,
		},
	})
}

// UpdateMealPlanStatus godoc
// @Summary Change a plan's status
// @Description Move a plan between draft, active and archived
// @Tags mealplan
// @Accept json
// @Produce json
// @Param id path int true "Meal plan ID"
// @Param status body object true "New status"
// @Success 200 {object} map[string]interface{} "Status updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /mealplans/{id}/status [patch]
func (mc *MealPlanController) UpdateMealPlanStatus(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid meal plan ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	switch body.Status {
	case models.PlanStatusDraft, models.PlanStatusActive, models.PlanStatusArchived:
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid status",
			"error":   "Status must be draft, active or archived",
		})
		return
	}

	if err := mc.repo.UpdateStatus(tenantID, uint(id), body.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update status",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Status updated successfully",
		"data":    nil,
	})
}

// DeleteMealPlan godoc
// @Summary Delete a meal plan
// @Description Delete a plan and its meals and items
// @Tags mealplan
// @Produce json
// @Param id path int true "Meal plan ID"
// @Success 200 {object} map[string]interface{} "Meal plan deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid meal plan ID"
// @Failure 404 {object} map[string]interface{} "Meal plan not found"
// @Router /mealplans/{id} [delete]
func (mc *MealPlanController) DeleteMealPlan(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid meal plan ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := mc.repo.FindByID(tenantID, uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Meal plan not found",
			"error":   "No meal plan exists with the provided ID",
		})
		return
	}

	if err := mc.repo.Delete(tenantID, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete meal plan",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal plan deleted successfully",
		"data":    nil,
	})
}
