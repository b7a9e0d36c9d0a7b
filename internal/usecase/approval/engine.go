package approval

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/model"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/uuid"
)

type engine struct {
	uow      port.UnitOfWork
	registry *Registry
	cache    port.Cache
	now      func() time.Time
}

// compile-time check: *engine must satisfy port.ApprovalEngine
var _ port.ApprovalEngine = (*engine)(nil)

func NewEngine(uow port.UnitOfWork, registry *Registry, cache port.Cache) port.ApprovalEngine {
	return &engine{uow: uow, registry: registry, cache: cache, now: time.Now}
}

// Approve loads the change request, dispatches to its synchronizer, and
// finalises the request, all inside one transaction. Any error rolls the
// whole unit back and leaves the request INITIATED. The terminal update is
// conditioned on the row still being INITIATED, so of two racing approvals
// exactly one wins and the loser reports a conflict.
func (e *engine) Approve(ctx context.Context, changeRequestID, reviewerID uuid.UUID) error {
	err := e.uow.WithinTx(ctx, func(s port.SyncStore) error {
		req, err := s.ChangeRequests().GetByID(ctx, changeRequestID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w: #%s", ErrRequestNotFound, changeRequestID)
			}
			return err
		}
		if req.Status != model.ChangeRequestStatusInitiated {
			return fmt.Errorf("%w: #%s is %s", ErrWorkflowConflict, req.ID, req.Status)
		}

		sync, err := e.registry.Lookup(req.EntityName, req.Action)
		if err != nil {
			return err
		}
		if err := sync.Sync(ctx, s, req); err != nil {
			return fmt.Errorf("sync for %s/%s failed: %w", req.EntityName, req.Action, err)
		}

		return e.finalise(ctx, s, req.ID, model.ChangeRequestStatusApproved, reviewerID, nil)
	})
	if err != nil {
		return err
	}

	e.invalidate(ctx, changeRequestID)
	log.Printf("change request #%s approved by %s", changeRequestID, reviewerID)
	return nil
}

// Reject records the terminal rejection with its reason. No synchronizer
// runs; staged data stays as drafts.
func (e *engine) Reject(ctx context.Context, changeRequestID, reviewerID uuid.UUID, reason string) error {
	err := e.uow.WithinTx(ctx, func(s port.SyncStore) error {
		req, err := s.ChangeRequests().GetByID(ctx, changeRequestID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w: #%s", ErrRequestNotFound, changeRequestID)
			}
			return err
		}
		if req.Status != model.ChangeRequestStatusInitiated {
			return fmt.Errorf("%w: #%s is %s", ErrWorkflowConflict, req.ID, req.Status)
		}

		return e.finalise(ctx, s, req.ID, model.ChangeRequestStatusRejected, reviewerID, &reason)
	})
	if err != nil {
		return err
	}

	e.invalidate(ctx, changeRequestID)
	log.Printf("change request #%s rejected by %s", changeRequestID, reviewerID)
	return nil
}

func (e *engine) finalise(ctx context.Context, s port.SyncStore, id uuid.UUID, status model.ChangeRequestStatus, reviewerID uuid.UUID, reason *string) error {
	// Zero rows affected here is the authoritative conflict signal; the
	// status read above is only a fast path.
	won, err := s.ChangeRequests().Finalise(ctx, id, status, reviewerID, e.now(), reason)
	if err != nil {
		return fmt.Errorf("failed finalising change request #%s: %w", id, err)
	}
	if !won {
		return fmt.Errorf("%w: #%s finalised concurrently", ErrWorkflowConflict, id)
	}
	return nil
}

func (e *engine) invalidate(ctx context.Context, id uuid.UUID) {
	if err := e.cache.DeleteChangeRequestDetails(ctx, id); err != nil {
		log.Printf("failed deleting cache for change request #%s: %v", id, err)
	}
}
