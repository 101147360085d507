package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/devmahbe/crime-reporting-system/internal/models"
	"github.com/devmahbe/crime-reporting-system/internal/services"
)

// ReferenceController serves the reference data the complaint form
// needs: complaint categories and the districts with a registered
// admin.
type ReferenceController struct {
	svc services.ReferenceService
	log *zap.Logger
}

// NewReferenceController creates a new instance of ReferenceController.
func NewReferenceController(svc services.ReferenceService, log *zap.Logger) *ReferenceController {
	return &ReferenceController{svc: svc, log: log}
}

// Register associates the reference-data routes with this controller.
func (ctrl *ReferenceController) Register(g *echo.Group) {
	g.GET("/categories", ctrl.ListCategories)
	g.GET("/districts", ctrl.ListDistricts)
}

// ListCategories handles GET /categories.
func (ctrl *ReferenceController) ListCategories(c echo.Context) error {
	categories, err := ctrl.svc.ListCategories(c.Request().Context())
	if err != nil {
		ctrl.log.Error("list categories failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.FailureResponse{Message: "Database error"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": categories,
	})
}

// ListDistricts handles GET /districts.
func (ctrl *ReferenceController) ListDistricts(c echo.Context) error {
	districts, err := ctrl.svc.ListDistricts(c.Request().Context())
	if err != nil {
		ctrl.log.Error("list districts failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.FailureResponse{Message: "Database error"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":   true,
		"districts": districts,
	})
}
