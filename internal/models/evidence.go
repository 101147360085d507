package models

import "time"

// MediaKind classifies an evidence attachment.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
	MediaAudio MediaKind = "audio"
)

// Evidence is the metadata row for one attachment. The bytes live in
// external file storage; FilePath is the reference it handed back.
// Evidence rows are owned by their complaint and are only ever created
// together with it.
type Evidence struct {
	EvidenceID  uint      `json:"evidence_id" gorm:"primaryKey;column:evidence_id"`
	ComplaintID uint      `json:"complaint_id" gorm:"column:complaint_id;not null;index"`
	FileType    MediaKind `json:"file_type" gorm:"column:file_type;size:16;not null"`
	FilePath    string    `json:"file_path" gorm:"column:file_path;size:512;not null"`
	UploadedAt  time.Time `json:"uploaded_at" gorm:"column:uploaded_at;autoCreateTime"`
}

func (Evidence) TableName() string {
	return "evidence"
}
