// Package storage holds the file-storage collaborator for evidence
// attachments. The intake core only ever sees the descriptors it
// returns; the bytes themselves are outside the pipeline.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/devmahbe/crime-reporting-system/internal/models"
)

// EvidenceDescriptor is the metadata recorded for one stored attachment.
type EvidenceDescriptor struct {
	Kind models.MediaKind
	Path string
}

// EvidenceStore persists raw attachment bytes and hands back the
// reference the complaint record will carry.
type EvidenceStore interface {
	Save(fh *multipart.FileHeader) (EvidenceDescriptor, error)
}

// kindDirs maps a media kind to its subdirectory under the upload root.
var kindDirs = map[models.MediaKind]string{
	models.MediaImage: "images",
	models.MediaVideo: "videos",
	models.MediaAudio: "audio",
}

// KindFromContentType classifies an upload by its MIME type prefix.
func KindFromContentType(contentType string) (models.MediaKind, bool) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return models.MediaImage, true
	case strings.HasPrefix(contentType, "video/"):
		return models.MediaVideo, true
	case strings.HasPrefix(contentType, "audio/"):
		return models.MediaAudio, true
	default:
		return "", false
	}
}

// DiskStore writes evidence files below a local root directory.
type DiskStore struct {
	root string
}

// NewDiskStore returns a DiskStore rooted at dir.
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{root: dir}
}

// Save classifies the upload, writes it under the kind's subdirectory
// with a generated name, and returns the descriptor to record. The
// original filename is never trusted for anything but its extension.
func (s *DiskStore) Save(fh *multipart.FileHeader) (EvidenceDescriptor, error) {
	kind, ok := KindFromContentType(fh.Header.Get("Content-Type"))
	if !ok {
		return EvidenceDescriptor{}, fmt.Errorf("unsupported evidence type %q", fh.Header.Get("Content-Type"))
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	rel := path.Join(kindDirs[kind], name)

	if err := os.MkdirAll(filepath.Join(s.root, kindDirs[kind]), 0o755); err != nil {
		return EvidenceDescriptor{}, fmt.Errorf("create upload dir: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return EvidenceDescriptor{}, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.root, rel))
	if err != nil {
		return EvidenceDescriptor{}, fmt.Errorf("create evidence file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return EvidenceDescriptor{}, fmt.Errorf("write evidence file: %w", err)
	}

	return EvidenceDescriptor{Kind: kind, Path: rel}, nil
}
