package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/devmahbe/crime-reporting-system/internal/apperrors"
	"github.com/devmahbe/crime-reporting-system/internal/models"
	"github.com/devmahbe/crime-reporting-system/internal/storage"
	"github.com/devmahbe/crime-reporting-system/internal/validation"
)

// ComplaintService defines the business operations of the complaint
// intake pipeline.
type ComplaintService interface {
	// SubmitComplaint runs one submission through the pipeline:
	// session check, field validation, jurisdiction routing, reference
	// resolution, then the transactional write. Stages run strictly in
	// that order and short-circuit on the first failure.
	SubmitComplaint(ctx context.Context, session models.Session, req *models.ComplaintRequest, evidence []storage.EvidenceDescriptor) (*models.SubmitResponse, error)

	// ListUserComplaints returns the complaints submitted by the given
	// user, newest first, with location, category and evidence loaded.
	ListUserComplaints(ctx context.Context, username string) ([]models.Complaint, error)
}

// complaintService is the concrete implementation of ComplaintService.
// It owns the final write; routing and reference resolution are
// delegated to the injected services.
type complaintService struct {
	db           *gorm.DB
	jurisdiction JurisdictionService
	references   ReferenceService
	log          *zap.Logger
}

// NewComplaintService wires the intake pipeline and returns a
// ComplaintService ready for use.
func NewComplaintService(db *gorm.DB, jurisdiction JurisdictionService, references ReferenceService, log *zap.Logger) ComplaintService {
	return &complaintService{
		db:           db,
		jurisdiction: jurisdiction,
		references:   references,
		log:          log,
	}
}

func (s *complaintService) SubmitComplaint(ctx context.Context, session models.Session, req *models.ComplaintRequest, evidence []storage.EvidenceDescriptor) (*models.SubmitResponse, error) {
	// The session check precedes every other rule; an anonymous caller
	// learns nothing about the submission's validity.
	if session.UserID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}

	input, err := validation.Validate(req)
	if err != nil {
		return nil, err
	}

	assignment, err := s.jurisdiction.ResolveAdmin(ctx, input.Location)
	if err != nil {
		return nil, err
	}

	locationID, err := s.references.ResolveLocation(ctx, input.Location, assignment.DistrictName)
	if err != nil {
		return nil, err
	}

	categoryID, err := s.references.ResolveCategory(ctx, input.ComplaintType)
	if err != nil {
		return nil, err
	}

	complaint, err := s.writeComplaint(ctx, input, assignment, locationID, categoryID, session.Username, evidence)
	if err != nil {
		return nil, err
	}

	s.log.Info("complaint submitted",
		zap.Uint("complaint_id", complaint.ComplaintID),
		zap.String("district", assignment.DistrictName),
		zap.String("admin", assignment.AdminUsername),
		zap.Int("evidence", len(evidence)),
	)

	return &models.SubmitResponse{
		Success:     true,
		Message:     "Complaint submitted successfully!",
		ComplaintID: complaint.ComplaintID,
		Complaint: models.ComplaintSnapshot{
			ID:             complaint.ComplaintID,
			Type:           complaint.ComplaintType,
			Status:         complaint.Status,
			Location:       complaint.LocationAddress,
			Latitude:       complaint.Latitude,
			Longitude:      complaint.Longitude,
			AccuracyRadius: complaint.AccuracyRadiusM,
			CreatedAt:      complaint.CreatedAt.Format("2006-01-02 15:04:05"),
		},
	}, nil
}

// writeComplaint persists the complaint row and its evidence rows as a
// single transactional unit. A failed evidence insert rolls back the
// complaint; no record is ever left referencing missing evidence.
func (s *complaintService) writeComplaint(ctx context.Context, input *validation.ValidatedInput, assignment *AdminAssignment, locationID, categoryID uint, username string, evidence []storage.EvidenceDescriptor) (*models.Complaint, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, apperrors.Storage("begin transaction", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	complaint := &models.Complaint{
		ComplaintType:   input.ComplaintType,
		Description:     input.Description,
		IncidentDate:    input.IncidentDate,
		Status:          models.StatusPending,
		Username:        username,
		AdminUsername:   assignment.AdminUsername,
		LocationID:      locationID,
		LocationAddress: input.Location,
		CategoryID:      categoryID,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		AccuracyRadiusM: input.AccuracyRadius,
	}
	if err := tx.Create(complaint).Error; err != nil {
		tx.Rollback()
		return nil, apperrors.Storage("create complaint", err)
	}

	uploadedAt := time.Now()
	for _, d := range evidence {
		row := models.Evidence{
			ComplaintID: complaint.ComplaintID,
			FileType:    d.Kind,
			FilePath:    d.Path,
			UploadedAt:  uploadedAt,
		}
		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			return nil, apperrors.Storage("create evidence", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.Storage("commit complaint", err)
	}

	return complaint, nil
}

func (s *complaintService) ListUserComplaints(ctx context.Context, username string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.db.WithContext(ctx).
		Preload("Location").
		Preload("Category").
		Preload("Evidence").
		Where("username = ?", username).
		Order("created_at DESC").
		Find(&complaints).Error
	if err != nil {
		return nil, apperrors.Storage("list user complaints", err)
	}
	return complaints, nil
}
