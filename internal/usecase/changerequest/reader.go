package changerequest

import (
	"context"
	"database/sql"
	"errors"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

// ErrNotFound means no change request exists for the given id.
var ErrNotFound = errors.New("changerequest: not found")

type readerSrv struct {
	repo port.ChangeRequestRepository
}

// compile-time check: *readerSrv must satisfy port.ChangeRequestReader
var _ port.ChangeRequestReader = (*readerSrv)(nil)

func NewReader(repo port.ChangeRequestRepository) port.ChangeRequestReader {
	return &readerSrv{repo: repo}
}

func (s *readerSrv) GetChangeRequest(ctx context.Context, id uuid.UUID) (*model.ChangeRequest, error) {
	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func (s *readerSrv) ListChangeRequests(ctx context.Context, filter port.ChangeRequestFilter) ([]*model.ChangeRequest, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}
	return s.repo.List(ctx, filter)
}
