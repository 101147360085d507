// Package validation checks raw complaint submissions. It is pure:
// no I/O, deterministic, safe to call repeatedly. Rules run in a fixed
// order and the first violation wins.
package validation

import (
	"math"
	"strconv"
	"time"

	"github.com/devmahbe/crime-reporting-system/internal/apperrors"
	"github.com/devmahbe/crime-reporting-system/internal/models"
)

// ValidatedInput is the normalized outcome of a successful pass.
// Coordinate and radius pointers are nil when the submission did not
// carry a complete coordinate pair.
type ValidatedInput struct {
	ComplaintType  string
	Description    string
	IncidentDate   string
	Location       string
	Latitude       *float64
	Longitude      *float64
	AccuracyRadius *int
}

// dateLayouts are the incident date forms the front-end sends.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// Validate applies the intake rules to a raw submission:
//
//  1. complaintType, description, incidentDate and location must be
//     non-empty (empty string counts as absent).
//  2. When both latitude and longitude are supplied, each must parse as
//     a finite number within [-90,90] / [-180,180], bounds inclusive.
//  3. When accuracyRadius is supplied alongside a complete pair, it
//     must parse as an integer greater than zero.
//
// A single supplied coordinate is treated as an incomplete pair: the
// coordinates are dropped rather than rejected.
func Validate(req *models.ComplaintRequest) (*ValidatedInput, error) {
	if req.ComplaintType == "" || req.Description == "" || req.IncidentDate == "" || req.Location == "" {
		return nil, &apperrors.ValidationError{
			Reason:  apperrors.ReasonMissingRequiredFields,
			Message: "All fields are required",
		}
	}

	out := &ValidatedInput{
		ComplaintType: req.ComplaintType,
		Description:   req.Description,
		IncidentDate:  normalizeDate(req.IncidentDate),
		Location:      req.Location,
	}

	rawLat, rawLng := string(req.Latitude), string(req.Longitude)
	if rawLat != "" && rawLng != "" {
		lat, latErr := strconv.ParseFloat(rawLat, 64)
		lng, lngErr := strconv.ParseFloat(rawLng, 64)
		if latErr != nil || lngErr != nil ||
			math.IsNaN(lat) || math.IsInf(lat, 0) ||
			math.IsNaN(lng) || math.IsInf(lng, 0) ||
			lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			return nil, &apperrors.ValidationError{
				Reason:  apperrors.ReasonInvalidCoordinates,
				Message: "Invalid coordinate values",
			}
		}
		out.Latitude = &lat
		out.Longitude = &lng

		if raw := string(req.AccuracyRadius); raw != "" {
			radius, err := strconv.Atoi(raw)
			if err != nil || radius <= 0 {
				return nil, &apperrors.ValidationError{
					Reason:  apperrors.ReasonInvalidAccuracyRadius,
					Message: "Invalid accuracy radius",
				}
			}
			out.AccuracyRadius = &radius
		}
	}

	return out, nil
}

// normalizeDate rewrites a known date form as "2006-01-02 15:04:05".
// Unrecognized input passes through untouched; date format is not an
// intake rule.
func normalizeDate(raw string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02 15:04:05")
		}
	}
	return raw
}
