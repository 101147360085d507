package services

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/devmahbe/crime-reporting-system/internal/apperrors"
	"github.com/devmahbe/crime-reporting-system/internal/models"
)

// ReferenceService resolves the shared reference entities a complaint
// points at. Both operations are get-or-create: the caller never sees
// a not-found outcome, only the stable id or a storage failure.
type ReferenceService interface {
	// ResolveLocation returns the id of the location with the given
	// address, creating the row with the supplied district if absent.
	// Addresses are matched verbatim.
	ResolveLocation(ctx context.Context, address, district string) (uint, error)

	// ResolveCategory returns the id of the category with the given
	// canonical name, creating it if absent.
	ResolveCategory(ctx context.Context, name string) (uint, error)

	// ListCategories returns all categories ordered by name, for the
	// complaint form dropdown.
	ListCategories(ctx context.Context) ([]models.Category, error)

	// ListDistricts returns the distinct district names that have an
	// admin registered.
	ListDistricts(ctx context.Context) ([]string, error)
}

// referenceService is the concrete implementation of ReferenceService.
type referenceService struct {
	db *gorm.DB
}

// NewReferenceService injects the *gorm.DB dependency and returns a
// ReferenceService ready for use.
func NewReferenceService(db *gorm.DB) ReferenceService {
	return &referenceService{db: db}
}

func (s *referenceService) ResolveLocation(ctx context.Context, address, district string) (uint, error) {
	var existing models.Location
	err := s.db.WithContext(ctx).Where("address = ?", address).First(&existing).Error
	if err == nil {
		return existing.LocationID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, apperrors.Storage("look up location", err)
	}

	// Not found: insert, tolerating a concurrent submission winning the
	// insert first. ON CONFLICT DO NOTHING on the address unique index
	// leaves RowsAffected at zero in that case and the re-select below
	// picks up the winner's row.
	loc := models.Location{Address: address, DistrictName: district}
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address"}},
			DoNothing: true,
		}).
		Create(&loc)
	if res.Error != nil {
		return 0, apperrors.Storage("create location", res.Error)
	}
	if res.RowsAffected == 0 {
		if err := s.db.WithContext(ctx).Where("address = ?", address).First(&loc).Error; err != nil {
			return 0, apperrors.Storage("re-select location after conflict", err)
		}
	}

	return loc.LocationID, nil
}

func (s *referenceService) ResolveCategory(ctx context.Context, name string) (uint, error) {
	var existing models.Category
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error
	if err == nil {
		return existing.CategoryID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, apperrors.Storage("look up category", err)
	}

	cat := models.Category{Name: name}
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&cat)
	if res.Error != nil {
		return 0, apperrors.Storage("create category", res.Error)
	}
	if res.RowsAffected == 0 {
		if err := s.db.WithContext(ctx).Where("name = ?", name).First(&cat).Error; err != nil {
			return 0, apperrors.Storage("re-select category after conflict", err)
		}
	}

	return cat.CategoryID, nil
}

func (s *referenceService) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.Storage("list categories", err)
	}
	return categories, nil
}

func (s *referenceService) ListDistricts(ctx context.Context) ([]string, error) {
	var districts []string
	err := s.db.WithContext(ctx).
		Model(&models.Admin{}).
		Distinct().
		Order("district_name ASC").
		Pluck("district_name", &districts).Error
	if err != nil {
		return nil, apperrors.Storage("list districts", err)
	}
	return districts, nil
}
