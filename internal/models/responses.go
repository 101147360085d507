package models

// ComplaintSnapshot is the slice of the new complaint echoed back to
// the submitter.
type ComplaintSnapshot struct {
	ID             uint            `json:"id"`
	Type           string          `json:"type"`
	Status         ComplaintStatus `json:"status"`
	Location       string          `json:"location"`
	Latitude       *float64        `json:"latitude,omitempty"`
	Longitude      *float64        `json:"longitude,omitempty"`
	AccuracyRadius *int            `json:"accuracyRadius,omitempty"`
	CreatedAt      string          `json:"createdAt"`
}

// SubmitResponse is the success payload for a complaint submission.
type SubmitResponse struct {
	Success     bool              `json:"success"`
	Message     string            `json:"message"`
	ComplaintID uint              `json:"complaintId"`
	Complaint   ComplaintSnapshot `json:"complaint"`
}

// FailureResponse is the payload for every failed request.
type FailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ComplaintListResponse wraps the authenticated user's complaints.
type ComplaintListResponse struct {
	Success    bool        `json:"success"`
	Complaints []Complaint `json:"complaints"`
}
