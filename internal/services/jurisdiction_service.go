package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/devmahbe/crime-reporting-system/internal/apperrors"
	"github.com/devmahbe/crime-reporting-system/internal/models"
)

// AdminAssignment is the routing decision for one submission. It is
// derived per request, never stored.
type AdminAssignment struct {
	AdminUsername string
	DistrictName  string
}

// JurisdictionService maps a district name to the administrator
// responsible for it.
type JurisdictionService interface {
	// ResolveAdmin looks up the admin whose jurisdiction matches the
	// given district string. Zero matches is a business-rule rejection,
	// not a system error.
	ResolveAdmin(ctx context.Context, district string) (*AdminAssignment, error)
}

// jurisdictionService is the concrete implementation of
// JurisdictionService backed by the admins reference table.
type jurisdictionService struct {
	db *gorm.DB
}

// NewJurisdictionService injects the *gorm.DB dependency and returns a
// JurisdictionService ready for use.
func NewJurisdictionService(db *gorm.DB) JurisdictionService {
	return &jurisdictionService{db: db}
}

func (s *jurisdictionService) ResolveAdmin(ctx context.Context, district string) (*AdminAssignment, error) {
	var admin models.Admin

	// The data model intends one admin per district, but duplicates are
	// not structurally prevented; ordering by admin_id makes the pick
	// deterministic when they occur.
	err := s.db.WithContext(ctx).
		Where("LOWER(district_name) = LOWER(?)", district).
		Order("admin_id ASC").
		First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperrors.BusinessRuleError{
			Reason:  apperrors.ReasonNoAuthority,
			Message: "No authority from this district is available right now",
		}
	}
	if err != nil {
		return nil, apperrors.Storage("resolve admin by district", err)
	}

	return &AdminAssignment{
		AdminUsername: admin.Username,
		DistrictName:  admin.DistrictName,
	}, nil
}
