package mission

import (
	"context"

	"github.com/autoexpert/backend/internal/domain/identity"
	"github.com/autoexpert/backend/internal/domain/mission"
	"github.com/autoexpert/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// EvidenceService manages photo and document metadata for missions. Uploads
// by a non-privileged actor advance missions still at created or assigned to
// in_progress, since evidence proves field work has started.
type EvidenceService struct {
	missions    mission.MissionRepository
	attachments mission.AttachmentRepository
	tx          shared.Transactor
	logger      *zap.Logger
}

// NewEvidenceService creates an evidence service
func NewEvidenceService(missions mission.MissionRepository, attachments mission.AttachmentRepository, tx shared.Transactor, logger *zap.Logger) *EvidenceService {
	return &EvidenceService{missions: missions, attachments: attachments, tx: tx, logger: logger}
}

// AddPhotos records a batch of photo metadata. The whole batch is validated
// before anything is saved, so one bad label rejects the request entirely;
// the batch and the status promotion commit in one transaction.
func (s *EvidenceService) AddPhotos(ctx context.Context, missionID uint, reqs []AttachmentRequest, actor Actor) ([]AttachmentResponse, error) {
	m, err := s.loadMission(ctx, missionID, actor)
	if err != nil {
		return nil, err
	}
	if len(reqs) == 0 {
		return nil, shared.NewValidationError("At least one photo is required")
	}

	photos := make([]*mission.Attachment, 0, len(reqs))
	for _, req := range reqs {
		photo, err := mission.NewPhotoAttachment(missionID, req.FilePath, req.FileName, req.Label, mission.PhotoPhase(req.Phase), actor.UserID)
		if err != nil {
			return nil, err
		}
		photos = append(photos, photo)
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, photo := range photos {
			if err := s.attachments.Save(ctx, photo); err != nil {
				return err
			}
		}
		return s.registerActivity(ctx, m, actor)
	})
	if err != nil {
		return nil, err
	}

	out := make([]AttachmentResponse, 0, len(photos))
	for _, photo := range photos {
		out = append(out, ToAttachmentResponse(photo))
	}

	s.logger.Info("photos attached",
		zap.Uint("mission_id", missionID),
		zap.Int("count", len(out)),
		zap.Uint("uploaded_by", actor.UserID))
	return out, nil
}

// AddDocument records one claim document's metadata
func (s *EvidenceService) AddDocument(ctx context.Context, missionID uint, req AttachmentRequest, actor Actor) (*AttachmentResponse, error) {
	m, err := s.loadMission(ctx, missionID, actor)
	if err != nil {
		return nil, err
	}
	doc, err := mission.NewDocumentAttachment(missionID, req.FilePath, req.FileName, actor.UserID)
	if err != nil {
		return nil, err
	}
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.attachments.Save(ctx, doc); err != nil {
			return err
		}
		return s.registerActivity(ctx, m, actor)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("document attached", zap.Uint("mission_id", missionID), zap.Uint("uploaded_by", actor.UserID))
	resp := ToAttachmentResponse(doc)
	return &resp, nil
}

// List returns the mission's evidence metadata, optionally narrowed to one
// kind ("photo" or "document").
func (s *EvidenceService) List(ctx context.Context, missionID uint, kind string, actor Actor) ([]AttachmentResponse, error) {
	if _, err := s.loadMission(ctx, missionID, actor); err != nil {
		return nil, err
	}
	switch mission.AttachmentKind(kind) {
	case "", mission.AttachmentPhoto, mission.AttachmentDocument:
	default:
		return nil, shared.NewValidationError("Unknown attachment kind")
	}
	items, err := s.attachments.FindByMission(ctx, missionID, mission.AttachmentKind(kind))
	if err != nil {
		return nil, err
	}
	out := make([]AttachmentResponse, 0, len(items))
	for i := range items {
		out = append(out, ToAttachmentResponse(&items[i]))
	}
	return out, nil
}

// Delete removes one attachment's metadata. Managers may delete any;
// agents only what they uploaded themselves.
func (s *EvidenceService) Delete(ctx context.Context, missionID, attachmentID uint, actor Actor) error {
	if _, err := s.loadMission(ctx, missionID, actor); err != nil {
		return err
	}
	attachment, err := s.attachments.FindByID(ctx, attachmentID)
	if err != nil {
		return err
	}
	if attachment.MissionID != missionID {
		return shared.NewNotFoundError("Attachment not found")
	}
	if !identity.Role(actor.Role).IsPrivileged() && attachment.UploadedBy != actor.UserID {
		return shared.ErrForbidden
	}
	if err := s.attachments.Delete(ctx, attachmentID); err != nil {
		return err
	}
	s.logger.Info("attachment deleted", zap.Uint("mission_id", missionID), zap.Uint("attachment_id", attachmentID))
	return nil
}

// registerActivity applies the evidence-driven promotion. The caller runs it
// in the same transaction as the attachment writes, so a failed status save
// rolls the whole upload back.
func (s *EvidenceService) registerActivity(ctx context.Context, m *mission.Mission, actor Actor) error {
	previous := m.Status
	m.RegisterEvidenceActivity(identity.Role(actor.Role))
	if m.Status == previous {
		return nil
	}
	if err := s.missions.Save(ctx, m); err != nil {
		return err
	}
	s.logger.Info("mission promoted by evidence upload",
		zap.Uint("mission_id", m.ID),
		zap.String("from", previous.String()),
		zap.String("to", m.Status.String()))
	return nil
}

func (s *EvidenceService) loadMission(ctx context.Context, missionID uint, actor Actor) (*mission.Mission, error) {
	m, err := s.missions.FindByID(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if !identity.Role(actor.Role).IsPrivileged() && !m.IsAssignedTo(actor.UserID) {
		return nil, shared.ErrForbidden
	}
	return m, nil
}
