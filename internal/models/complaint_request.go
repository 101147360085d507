package models

import "encoding/json"

// FlexString accepts either a JSON string or a JSON number. The
// complaint form sends coordinates as strings, the map widget sends
// them as numbers; both arrive here as the raw text to be parsed by
// the validator.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	// Bare number token: keep its textual form.
	*f = FlexString(data)
	return nil
}

// ComplaintRequest is the raw submission from the front-end, bound
// from JSON or multipart form fields.
type ComplaintRequest struct {
	ComplaintType  string     `json:"complaintType" form:"complaintType"`
	Description    string     `json:"description" form:"description"`
	IncidentDate   string     `json:"incidentDate" form:"incidentDate"`
	Location       string     `json:"location" form:"location"`
	Latitude       FlexString `json:"latitude" form:"latitude"`
	Longitude      FlexString `json:"longitude" form:"longitude"`
	AccuracyRadius FlexString `json:"accuracyRadius" form:"accuracyRadius"`
}
