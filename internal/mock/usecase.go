package mock

import (
	"context"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

// MockUploadAccepter implements port.UploadAccepter for tests.
type MockUploadAccepter struct {
	Out uuid.UUID
	Err error

	Called bool
	In     port.AcceptUploadInput
}

func (m *MockUploadAccepter) AcceptUpload(ctx context.Context, in port.AcceptUploadInput) (uuid.UUID, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockUploadPublisher implements port.UploadPublisher for tests.
type MockUploadPublisher struct {
	Err error

	Called bool
	In     port.PublishUploadInput
}

func (m *MockUploadPublisher) PublishUpload(ctx context.Context, in port.PublishUploadInput) error {
	m.Called = true
	m.In = in
	return m.Err
}

// MockMediaProcessor implements port.MediaProcessor for tests.
type MockMediaProcessor struct {
	Err error

	Called bool
	Env    port.Envelope
}

func (m *MockMediaProcessor) ProcessMedia(ctx context.Context, env port.Envelope) error {
	m.Called = true
	m.Env = env
	return m.Err
}

// MockMediaGetter implements port.MediaGetter for tests.
type MockMediaGetter struct {
	Out *model.MediaAsset
	Err error

	Called bool
	ID     uuid.UUID
}

func (m *MockMediaGetter) GetMedia(ctx context.Context, id uuid.UUID) (*model.MediaAsset, error) {
	m.Called = true
	m.ID = id
	return m.Out, m.Err
}

// MockMediaDeleter implements port.MediaDeleter for tests.
type MockMediaDeleter struct {
	Err error

	Called bool
	ID     uuid.UUID
}

func (m *MockMediaDeleter) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}

// MockApprovalEngine implements port.ApprovalEngine for tests.
type MockApprovalEngine struct {
	ApproveErr error
	RejectErr  error

	ApproveCalled bool
	RejectCalled  bool
	RequestID     uuid.UUID
	ReviewerID    uuid.UUID
	Reason        string
}

func (m *MockApprovalEngine) Approve(ctx context.Context, changeRequestID, reviewerID uuid.UUID) error {
	m.ApproveCalled = true
	m.RequestID = changeRequestID
	m.ReviewerID = reviewerID
	return m.ApproveErr
}

func (m *MockApprovalEngine) Reject(ctx context.Context, changeRequestID, reviewerID uuid.UUID, reason string) error {
	m.RejectCalled = true
	m.RequestID = changeRequestID
	m.ReviewerID = reviewerID
	m.Reason = reason
	return m.RejectErr
}

// MockChangeRequestReader implements port.ChangeRequestReader for tests.
type MockChangeRequestReader struct {
	GetOut  *model.ChangeRequest
	GetErr  error
	ListOut []*model.ChangeRequest
	ListErr error

	GetCalled  bool
	GetID      uuid.UUID
	ListCalled bool
	ListFilter port.ChangeRequestFilter
}

func (m *MockChangeRequestReader) GetChangeRequest(ctx context.Context, id uuid.UUID) (*model.ChangeRequest, error) {
	m.GetCalled = true
	m.GetID = id
	return m.GetOut, m.GetErr
}

func (m *MockChangeRequestReader) ListChangeRequests(ctx context.Context, filter port.ChangeRequestFilter) ([]*model.ChangeRequest, error) {
	m.ListCalled = true
	m.ListFilter = filter
	return m.ListOut, m.ListErr
}
