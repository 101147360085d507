package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/devmahbe/crime-reporting-system/internal/apperrors"
	"github.com/devmahbe/crime-reporting-system/internal/metrics"
	appmw "github.com/devmahbe/crime-reporting-system/internal/middleware"
	"github.com/devmahbe/crime-reporting-system/internal/models"
	"github.com/devmahbe/crime-reporting-system/internal/services"
	"github.com/devmahbe/crime-reporting-system/internal/storage"
)

// ComplaintController handles complaint submission and the submitter's
// own complaint listing. It is the single place where the pipeline's
// error taxonomy is mapped to HTTP status classes.
type ComplaintController struct {
	svc   services.ComplaintService
	files storage.EvidenceStore
	log   *zap.Logger
}

// NewComplaintController creates a new instance of ComplaintController.
func NewComplaintController(svc services.ComplaintService, files storage.EvidenceStore, log *zap.Logger) *ComplaintController {
	return &ComplaintController{svc: svc, files: files, log: log}
}

// Register associates the complaint routes with this controller.
// Extra middleware (the submission rate limiter) applies to the
// submission route only.
func (ctrl *ComplaintController) Register(g *echo.Group, submitMiddleware ...echo.MiddlewareFunc) {
	g.POST("/complaints", ctrl.SubmitComplaint, submitMiddleware...)
	g.GET("/complaints", ctrl.ListMyComplaints)
}

// SubmitComplaint handles POST /complaints, accepting either JSON or a
// multipart form with evidence attachments.
func (ctrl *ComplaintController) SubmitComplaint(c echo.Context) error {
	sess := appmw.SessionFromContext(c)
	// Reject before touching uploads so anonymous callers cannot write
	// files to storage.
	if sess.UserID == "" {
		return ctrl.writeError(c, apperrors.ErrNotAuthenticated)
	}

	req := new(models.ComplaintRequest)
	if err := c.Bind(req); err != nil {
		metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return c.JSON(http.StatusBadRequest, models.FailureResponse{Message: "Invalid request body"})
	}

	var descriptors []storage.EvidenceDescriptor
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, headers := range form.File {
			for _, fh := range headers {
				d, err := ctrl.files.Save(fh)
				if err != nil {
					ctrl.log.Error("evidence upload failed", zap.Error(err))
					metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeError).Inc()
					return c.JSON(http.StatusInternalServerError, models.FailureResponse{Message: "Error submitting complaint"})
				}
				descriptors = append(descriptors, d)
			}
		}
	}

	resp, err := ctrl.svc.SubmitComplaint(c.Request().Context(), sess, req, descriptors)
	if err != nil {
		return ctrl.writeError(c, err)
	}

	metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeAccepted).Inc()
	return c.JSON(http.StatusOK, resp)
}

// ListMyComplaints handles GET /complaints for the authenticated user.
func (ctrl *ComplaintController) ListMyComplaints(c echo.Context) error {
	sess := appmw.SessionFromContext(c)
	if sess.UserID == "" {
		return c.JSON(http.StatusUnauthorized, models.FailureResponse{Message: "Not authenticated"})
	}

	complaints, err := ctrl.svc.ListUserComplaints(c.Request().Context(), sess.Username)
	if err != nil {
		ctrl.log.Error("list complaints failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, models.FailureResponse{Message: "Database error"})
	}

	return c.JSON(http.StatusOK, models.ComplaintListResponse{
		Success:    true,
		Complaints: complaints,
	})
}

// writeError maps the error taxonomy to the response classes:
// authorization failures are 401, validation and business-rule
// rejections 400 with their own message, and everything else a generic
// 500. Internal detail is logged here and never reaches the caller.
func (ctrl *ComplaintController) writeError(c echo.Context, err error) error {
	var (
		authErr *apperrors.AuthorizationError
		valErr  *apperrors.ValidationError
		bizErr  *apperrors.BusinessRuleError
	)
	switch {
	case errors.As(err, &authErr):
		metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeUnauthorized).Inc()
		return c.JSON(http.StatusUnauthorized, models.FailureResponse{Message: authErr.Message})
	case errors.As(err, &valErr):
		metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return c.JSON(http.StatusBadRequest, models.FailureResponse{Message: valErr.Message})
	case errors.As(err, &bizErr):
		metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return c.JSON(http.StatusBadRequest, models.FailureResponse{Message: bizErr.Message})
	default:
		ctrl.log.Error("submit complaint failed", zap.Error(err))
		metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return c.JSON(http.StatusInternalServerError, models.FailureResponse{Message: "Error submitting complaint"})
	}
}
