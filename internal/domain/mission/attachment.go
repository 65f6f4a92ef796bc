package mission

import (
	"strings"

	"github.com/autoexpert/backend/internal/domain/shared"
)

// AttachmentKind separates field photos from claim documents.
type AttachmentKind string

const (
	AttachmentPhoto    AttachmentKind = "photo"
	AttachmentDocument AttachmentKind = "document"
)

// PhotoPhase marks whether a photo was taken before or after repair.
type PhotoPhase string

const (
	PhaseBefore PhotoPhase = "before"
	PhaseAfter  PhotoPhase = "after"
)

// PhotoLabels is the closed list of photo labels accepted on upload.
var PhotoLabels = []string{
	"front", "rear", "left side", "right side",
	"vin plate", "odometer", "damage detail", "other",
}

// IsValidPhotoLabel reports whether label belongs to the fixed label set
func IsValidPhotoLabel(label string) bool {
	for _, known := range PhotoLabels {
		if label == known {
			return true
		}
	}
	return false
}

// Attachment is the metadata row for one stored evidence file. The bytes
// themselves live outside this core; only the relative path is kept here.
// Attachments are cascade-deleted with their mission.
type Attachment struct {
	shared.BaseEntity
	MissionID  uint
	Kind       AttachmentKind
	FilePath   string
	FileName   string
	Label      string
	Phase      PhotoPhase
	UploadedBy uint
}

// NewPhotoAttachment creates photo metadata with a label from the fixed set
func NewPhotoAttachment(missionID uint, filePath, fileName, label string, phase PhotoPhase, uploadedBy uint) (*Attachment, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewValidationError("Photo label is required")
	}
	if !IsValidPhotoLabel(label) {
		return nil, shared.NewValidationError("Unknown photo label")
	}
	if phase != PhaseAfter {
		phase = PhaseBefore
	}
	if filePath == "" {
		return nil, shared.NewValidationError("File path is required")
	}
	return &Attachment{
		BaseEntity: shared.NewBaseEntity(),
		MissionID:  missionID,
		Kind:       AttachmentPhoto,
		FilePath:   filePath,
		FileName:   fileName,
		Label:      label,
		Phase:      phase,
		UploadedBy: uploadedBy,
	}, nil
}

// NewDocumentAttachment creates document metadata
func NewDocumentAttachment(missionID uint, filePath, fileName string, uploadedBy uint) (*Attachment, error) {
	if filePath == "" {
		return nil, shared.NewValidationError("File path is required")
	}
	return &Attachment{
		BaseEntity: shared.NewBaseEntity(),
		MissionID:  missionID,
		Kind:       AttachmentDocument,
		FilePath:   filePath,
		FileName:   fileName,
		UploadedBy: uploadedBy,
	}, nil
}
