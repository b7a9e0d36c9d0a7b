package approval

import "errors"

var (
	// ErrRequestNotFound means no change request exists for the given id.
	ErrRequestNotFound = errors.New("approval: change request not found")

	// ErrWorkflowConflict means the request already reached a terminal
	// status. The caller gets it back unchanged; nothing is retried.
	ErrWorkflowConflict = errors.New("approval: change request already finalised")

	// ErrNoSynchronizer means the (entity, action) pair has no registered
	// synchronizer. Registration is validated at startup, so seeing this at
	// runtime points at a row written by a newer deployment.
	ErrNoSynchronizer = errors.New("approval: no synchronizer registered")

	// ErrStagingNotFound means the staging row the request points at is
	// missing or malformed; the transaction is rolled back and the request
	// stays INITIATED for a later re-attempt.
	ErrStagingNotFound = errors.New("approval: staging record not found")
)
