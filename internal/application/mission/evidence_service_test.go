package mission

import (
	"context"
	"testing"

	"github.com/autoexpert/backend/internal/domain/mission"
	"github.com/autoexpert/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newEvidenceFixture() (*MockMissionRepository, *MockAttachmentRepository, *EvidenceService) {
	missions := new(MockMissionRepository)
	attachments := new(MockAttachmentRepository)
	return missions, attachments, NewEvidenceService(missions, attachments, &inlineTransactor{}, zap.NewNop())
}

func TestEvidenceService_AddPhotos_AgentUploadPromotesMission(t *testing.T) {
	missions, attachments, service := newEvidenceFixture()
	ctx := context.Background()

	m := storedMission(10)
	m.Status = mission.StatusAssigned
	agentID := uint(9)
	m.AssignedAgentID = &agentID

	missions.On("FindByID", ctx, uint(10)).Return(m, nil)
	attachments.On("Save", ctx, mock.AnythingOfType("*mission.Attachment")).Return(nil)
	missions.On("Save", ctx, m).Return(nil)

	result, err := service.AddPhotos(ctx, 10, []AttachmentRequest{
		{FilePath: "missions/10/front.jpg", FileName: "front.jpg", Label: "front"},
	}, agentActor(9))

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "photo", result[0].Kind)
	assert.Equal(t, "before", result[0].Phase, "phase defaults to before")
	assert.Equal(t, mission.StatusInProgress, m.Status)
	missions.AssertExpectations(t)
	attachments.AssertExpectations(t)
}

func TestEvidenceService_AddPhotos_ManagerUploadDoesNotPromote(t *testing.T) {
	missions, attachments, service := newEvidenceFixture()
	ctx := context.Background()

	m := storedMission(10)
	m.Status = mission.StatusCreated

	missions.On("FindByID", ctx, uint(10)).Return(m, nil)
	attachments.On("Save", ctx, mock.AnythingOfType("*mission.Attachment")).Return(nil)

	_, err := service.AddPhotos(ctx, 10, []AttachmentRequest{
		{FilePath: "missions/10/rear.jpg", Label: "rear"},
	}, managerActor())

	require.NoError(t, err)
	assert.Equal(t, mission.StatusCreated, m.Status)
	missions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestEvidenceService_AddPhotos_OneBadLabelRejectsBatch(t *testing.T) {
	missions, attachments, service := newEvidenceFixture()
	ctx := context.Background()

	missions.On("FindByID", ctx, uint(10)).Return(storedMission(10), nil)

	result, err := service.AddPhotos(ctx, 10, []AttachmentRequest{
		{FilePath: "missions/10/front.jpg", Label: "front"},
		{FilePath: "missions/10/x.jpg", Label: "not-a-label"},
	}, managerActor())

	assert.Nil(t, result)
	assert.True(t, shared.IsCode(err, shared.CodeValidation))
	attachments.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestEvidenceService_AddPhotos_PromotionFailureFailsUpload(t *testing.T) {
	missions := new(MockMissionRepository)
	attachments := new(MockAttachmentRepository)
	tr := &inlineTransactor{}
	service := NewEvidenceService(missions, attachments, tr, zap.NewNop())
	ctx := context.Background()

	m := storedMission(10)
	m.Status = mission.StatusAssigned
	agentID := uint(9)
	m.AssignedAgentID = &agentID

	missions.On("FindByID", ctx, uint(10)).Return(m, nil)
	attachments.On("Save", ctx, mock.AnythingOfType("*mission.Attachment")).Return(nil)
	missions.On("Save", ctx, m).Return(assert.AnError)

	result, err := service.AddPhotos(ctx, 10, []AttachmentRequest{
		{FilePath: "missions/10/front.jpg", Label: "front"},
	}, agentActor(9))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, tr.calls)
	missions.AssertExpectations(t)
	attachments.AssertExpectations(t)
}

func TestEvidenceService_AddPhotos_BatchSharesOneTransaction(t *testing.T) {
	missions := new(MockMissionRepository)
	attachments := new(MockAttachmentRepository)
	tr := &inlineTransactor{}
	service := NewEvidenceService(missions, attachments, tr, zap.NewNop())
	ctx := context.Background()

	missions.On("FindByID", ctx, uint(10)).Return(storedMission(10), nil)
	attachments.On("Save", ctx, mock.AnythingOfType("*mission.Attachment")).Return(nil)

	result, err := service.AddPhotos(ctx, 10, []AttachmentRequest{
		{FilePath: "missions/10/front.jpg", Label: "front"},
		{FilePath: "missions/10/rear.jpg", Label: "rear"},
	}, managerActor())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, 1, tr.calls, "the whole batch commits in one transaction")
	attachments.AssertNumberOfCalls(t, "Save", 2)
}

func TestEvidenceService_AddDocument_Success(t *testing.T) {
	missions, attachments, service := newEvidenceFixture()
	ctx := context.Background()

	missions.On("FindByID", ctx, uint(10)).Return(storedMission(10), nil)
	attachments.On("Save", ctx, mock.AnythingOfType("*mission.Attachment")).Return(nil)

	result, err := service.AddDocument(ctx, 10, AttachmentRequest{
		FilePath: "missions/10/police-report.pdf",
		FileName: "police-report.pdf",
	}, managerActor())

	require.NoError(t, err)
	assert.Equal(t, "document", result.Kind)
	attachments.AssertExpectations(t)
}

func TestEvidenceService_Delete_AgentCannotDeleteOthersUpload(t *testing.T) {
	missions, attachments, service := newEvidenceFixture()
	ctx := context.Background()

	m := storedMission(10)
	agentID := uint(9)
	m.AssignedAgentID = &agentID

	doc, err := mission.NewDocumentAttachment(10, "missions/10/report.pdf", "report.pdf", 1)
	require.NoError(t, err)
	doc.ID = 3

	missions.On("FindByID", ctx, uint(10)).Return(m, nil)
	attachments.On("FindByID", ctx, uint(3)).Return(doc, nil)

	err = service.Delete(ctx, 10, 3, agentActor(9))

	assert.True(t, shared.IsCode(err, shared.CodeForbidden))
	attachments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestEvidenceService_List_UnknownKindRejected(t *testing.T) {
	missions, _, service := newEvidenceFixture()
	ctx := context.Background()

	missions.On("FindByID", ctx, uint(10)).Return(storedMission(10), nil)

	result, err := service.List(ctx, 10, "video", managerActor())

	assert.Nil(t, result)
	assert.True(t, shared.IsCode(err, shared.CodeValidation))
}
