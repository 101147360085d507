package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/devmahbe/crime-reporting-system/internal/apperrors"
	"github.com/devmahbe/crime-reporting-system/internal/models"
	"github.com/devmahbe/crime-reporting-system/internal/storage"
)

func newIntakeService(t *testing.T) (ComplaintService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	svc := NewComplaintService(db, NewJurisdictionService(db), NewReferenceService(db), zap.NewNop())
	return svc, db
}

func seedAdmin(t *testing.T, db *gorm.DB, username, district string) {
	t.Helper()

	if err := db.Create(&models.Admin{Username: username, DistrictName: district}).Error; err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
}

func validRequest() *models.ComplaintRequest {
	return &models.ComplaintRequest{
		ComplaintType: "Theft",
		Description:   "My bike was stolen",
		IncidentDate:  "2026-01-15",
		Location:      "Downtown Mall",
	}
}

var authedSession = models.Session{UserID: "42", Username: "mahbe"}

func complaintCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&models.Complaint{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count complaints: %v", err)
	}
	return count
}

// TestSubmitComplaint_RequiresSession verifies the session check runs
// before any validation: the submission here is also missing every
// field, yet the failure reported is the authorization one.
func TestSubmitComplaint_RequiresSession(t *testing.T) {
	svc, db := newIntakeService(t)

	_, err := svc.SubmitComplaint(context.Background(), models.Session{}, &models.ComplaintRequest{}, nil)
	var authErr *apperrors.AuthorizationError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthorizationError, got: %v", err)
	}
	if authErr.Message != "Not authenticated" {
		t.Errorf("unexpected message: %q", authErr.Message)
	}
	if got := complaintCount(t, db); got != 0 {
		t.Errorf("expected no complaint rows, got %d", got)
	}
}

func TestSubmitComplaint_Success(t *testing.T) {
	svc, db := newIntakeService(t)
	seedAdmin(t, db, "admin_dt", "Downtown Mall")

	resp, err := svc.SubmitComplaint(context.Background(), authedSession, validRequest(), nil)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if !resp.Success {
		t.Error("expected success response")
	}
	if resp.Message != "Complaint submitted successfully!" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
	if resp.Complaint.Status != models.StatusPending {
		t.Errorf("expected pending status, got %q", resp.Complaint.Status)
	}
	if resp.Complaint.Location != "Downtown Mall" {
		t.Errorf("unexpected location: %q", resp.Complaint.Location)
	}
	if resp.Complaint.CreatedAt == "" {
		t.Error("expected formatted createdAt")
	}

	var saved models.Complaint
	if err := db.First(&saved, "complaint_id = ?", resp.ComplaintID).Error; err != nil {
		t.Fatalf("failed to fetch complaint: %v", err)
	}
	if saved.Status != models.StatusPending {
		t.Errorf("stored status: got %q, want pending", saved.Status)
	}
	if saved.AdminUsername != "admin_dt" {
		t.Errorf("stored admin: got %q, want admin_dt", saved.AdminUsername)
	}
	if saved.Username != "mahbe" {
		t.Errorf("stored submitter: got %q, want mahbe", saved.Username)
	}
	if saved.IncidentDate != "2026-01-15 00:00:00" {
		t.Errorf("incident date not normalized: %q", saved.IncidentDate)
	}
	if saved.LocationID == 0 || saved.CategoryID == 0 {
		t.Errorf("reference ids not resolved: location %d, category %d", saved.LocationID, saved.CategoryID)
	}
}

// TestSubmitComplaint_NoAuthority verifies the business-rule rejection
// and that no reference rows were created for the doomed submission.
func TestSubmitComplaint_NoAuthority(t *testing.T) {
	svc, db := newIntakeService(t)

	_, err := svc.SubmitComplaint(context.Background(), authedSession, validRequest(), nil)
	var bizErr *apperrors.BusinessRuleError
	if !errors.As(err, &bizErr) {
		t.Fatalf("expected BusinessRuleError, got: %v", err)
	}
	if bizErr.Message != "No authority from this district is available right now" {
		t.Errorf("unexpected message: %q", bizErr.Message)
	}

	var locations int64
	if err := db.Model(&models.Location{}).Count(&locations).Error; err != nil {
		t.Fatalf("failed to count locations: %v", err)
	}
	if locations != 0 {
		t.Errorf("routing failed but %d location rows were created", locations)
	}
	if got := complaintCount(t, db); got != 0 {
		t.Errorf("expected no complaint rows, got %d", got)
	}
}

func TestSubmitComplaint_InvalidLatitude(t *testing.T) {
	svc, db := newIntakeService(t)
	seedAdmin(t, db, "admin_dt", "Downtown Mall")

	req := validRequest()
	req.Latitude = "95.0"
	req.Longitude = "90.0"

	_, err := svc.SubmitComplaint(context.Background(), authedSession, req, nil)
	var valErr *apperrors.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got: %v", err)
	}
	if valErr.Reason != apperrors.ReasonInvalidCoordinates {
		t.Errorf("unexpected reason: %q", valErr.Reason)
	}
	if valErr.Message != "Invalid coordinate values" {
		t.Errorf("unexpected message: %q", valErr.Message)
	}
	if got := complaintCount(t, db); got != 0 {
		t.Errorf("expected no complaint rows, got %d", got)
	}
}

func TestSubmitComplaint_MissingFields(t *testing.T) {
	svc, db := newIntakeService(t)
	seedAdmin(t, db, "admin_dt", "Downtown Mall")

	req := validRequest()
	req.Description = ""

	_, err := svc.SubmitComplaint(context.Background(), authedSession, req, nil)
	var valErr *apperrors.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got: %v", err)
	}
	if valErr.Reason != apperrors.ReasonMissingRequiredFields {
		t.Errorf("unexpected reason: %q", valErr.Reason)
	}
	if valErr.Message != "All fields are required" {
		t.Errorf("unexpected message: %q", valErr.Message)
	}
	if got := complaintCount(t, db); got != 0 {
		t.Errorf("expected no complaint rows, got %d", got)
	}
}

func TestSubmitComplaint_CoordinatesPersisted(t *testing.T) {
	svc, db := newIntakeService(t)
	seedAdmin(t, db, "admin_dt", "Downtown Mall")

	req := validRequest()
	req.Latitude = "23.8103"
	req.Longitude = "90.4125"
	req.AccuracyRadius = "100"

	resp, err := svc.SubmitComplaint(context.Background(), authedSession, req, nil)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if resp.Complaint.Latitude == nil || *resp.Complaint.Latitude != 23.8103 {
		t.Errorf("latitude not echoed: %v", resp.Complaint.Latitude)
	}
	if resp.Complaint.AccuracyRadius == nil || *resp.Complaint.AccuracyRadius != 100 {
		t.Errorf("accuracy radius not echoed: %v", resp.Complaint.AccuracyRadius)
	}

	var saved models.Complaint
	if err := db.First(&saved, "complaint_id = ?", resp.ComplaintID).Error; err != nil {
		t.Fatalf("failed to fetch complaint: %v", err)
	}
	if saved.Latitude == nil || *saved.Latitude != 23.8103 {
		t.Errorf("latitude not stored: %v", saved.Latitude)
	}
	if saved.Longitude == nil || *saved.Longitude != 90.4125 {
		t.Errorf("longitude not stored: %v", saved.Longitude)
	}
	if saved.AccuracyRadiusM == nil || *saved.AccuracyRadiusM != 100 {
		t.Errorf("accuracy radius not stored: %v", saved.AccuracyRadiusM)
	}
}

// TestSubmitComplaint_IncompletePair verifies that a lone latitude is
// dropped rather than rejected.
func TestSubmitComplaint_IncompletePair(t *testing.T) {
	svc, db := newIntakeService(t)
	seedAdmin(t, db, "admin_dt", "Downtown Mall")

	req := validRequest()
	req.Latitude = "23.8103"

	resp, err := svc.SubmitComplaint(context.Background(), authedSession, req, nil)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	var saved models.Complaint
	if err := db.First(&saved, "complaint_id = ?", resp.ComplaintID).Error; err != nil {
		t.Fatalf("failed to fetch complaint: %v", err)
	}
	if saved.Latitude != nil || saved.Longitude != nil {
		t.Errorf("incomplete pair must not be persisted: lat %v, lng %v", saved.Latitude, saved.Longitude)
	}
}

func TestSubmitComplaint_WithEvidence(t *testing.T) {
	svc, db := newIntakeService(t)
	seedAdmin(t, db, "admin_dt", "Downtown Mall")

	descriptors := []storage.EvidenceDescriptor{
		{Kind: models.MediaImage, Path: "images/a.jpg"},
		{Kind: models.MediaVideo, Path: "videos/b.mp4"},
	}
	resp, err := svc.SubmitComplaint(context.Background(), authedSession, validRequest(), descriptors)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	var rows []models.Evidence
	if err := db.Where("complaint_id = ?", resp.ComplaintID).Find(&rows).Error; err != nil {
		t.Fatalf("failed to fetch evidence: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 evidence rows, got %d", len(rows))
	}
	if rows[0].FileType != models.MediaImage || rows[0].FilePath != "images/a.jpg" {
		t.Errorf("unexpected first evidence row: %+v", rows[0])
	}
}

// TestSubmitComplaint_EvidenceFailureRollsBack verifies the write is
// one transactional unit: if an evidence row cannot be persisted, no
// complaint row survives either.
func TestSubmitComplaint_EvidenceFailureRollsBack(t *testing.T) {
	svc, db := newIntakeService(t)
	seedAdmin(t, db, "admin_dt", "Downtown Mall")
	if err := db.Migrator().DropTable(&models.Evidence{}); err != nil {
		t.Fatalf("failed to drop evidence table: %v", err)
	}

	descriptors := []storage.EvidenceDescriptor{{Kind: models.MediaImage, Path: "images/a.jpg"}}
	_, err := svc.SubmitComplaint(context.Background(), authedSession, validRequest(), descriptors)
	var storageErr *apperrors.StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError, got: %v", err)
	}
	if got := complaintCount(t, db); got != 0 {
		t.Errorf("expected rollback to remove the complaint, found %d rows", got)
	}
}

// TestSubmitComplaint_StoreFailure verifies that an exploding
// jurisdiction lookup surfaces as a StorageError (mapped to a generic
// 500 at the transport) and leaves no partial complaint behind.
func TestSubmitComplaint_StoreFailure(t *testing.T) {
	svc, db := newIntakeService(t)
	if err := db.Migrator().DropTable(&models.Admin{}); err != nil {
		t.Fatalf("failed to drop admins table: %v", err)
	}

	_, err := svc.SubmitComplaint(context.Background(), authedSession, validRequest(), nil)
	var storageErr *apperrors.StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError, got: %v", err)
	}
	if got := complaintCount(t, db); got != 0 {
		t.Errorf("expected no complaint rows, got %d", got)
	}
}

// TestSubmitComplaint_SameAddressReusesLocation verifies resolution
// idempotence across submissions.
func TestSubmitComplaint_SameAddressReusesLocation(t *testing.T) {
	svc, db := newIntakeService(t)
	seedAdmin(t, db, "admin_dt", "Downtown Mall")

	first, err := svc.SubmitComplaint(context.Background(), authedSession, validRequest(), nil)
	if err != nil {
		t.Fatalf("first submission failed: %v", err)
	}
	second, err := svc.SubmitComplaint(context.Background(), authedSession, validRequest(), nil)
	if err != nil {
		t.Fatalf("second submission failed: %v", err)
	}

	var locations int64
	if err := db.Model(&models.Location{}).Count(&locations).Error; err != nil {
		t.Fatalf("failed to count locations: %v", err)
	}
	if locations != 1 {
		t.Errorf("expected 1 location row, got %d", locations)
	}

	var a, b models.Complaint
	if err := db.First(&a, first.ComplaintID).Error; err != nil {
		t.Fatalf("failed to fetch first complaint: %v", err)
	}
	if err := db.First(&b, second.ComplaintID).Error; err != nil {
		t.Fatalf("failed to fetch second complaint: %v", err)
	}
	if a.LocationID != b.LocationID {
		t.Errorf("location ids differ: %d vs %d", a.LocationID, b.LocationID)
	}
}

func TestListUserComplaints(t *testing.T) {
	svc, db := newIntakeService(t)
	seedAdmin(t, db, "admin_dt", "Downtown Mall")

	if _, err := svc.SubmitComplaint(context.Background(), authedSession, validRequest(), []storage.EvidenceDescriptor{
		{Kind: models.MediaImage, Path: "images/a.jpg"},
	}); err != nil {
		t.Fatalf("submission failed: %v", err)
	}
	other := models.Session{UserID: "77", Username: "someone_else"}
	if _, err := svc.SubmitComplaint(context.Background(), other, validRequest(), nil); err != nil {
		t.Fatalf("submission failed: %v", err)
	}

	complaints, err := svc.ListUserComplaints(context.Background(), "mahbe")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(complaints) != 1 {
		t.Fatalf("expected 1 complaint, got %d", len(complaints))
	}
	got := complaints[0]
	if got.Username != "mahbe" {
		t.Errorf("unexpected owner: %q", got.Username)
	}
	if got.Location.Address != "Downtown Mall" {
		t.Errorf("location not preloaded: %+v", got.Location)
	}
	if got.Category.Name != "Theft" {
		t.Errorf("category not preloaded: %+v", got.Category)
	}
	if len(got.Evidence) != 1 {
		t.Errorf("evidence not preloaded: %d rows", len(got.Evidence))
	}
}
