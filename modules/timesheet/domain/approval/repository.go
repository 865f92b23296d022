package approval

import "context"

// Repository reaches the backend for the approval workflow. Approve and
// Reject return how many reports the backend actually transitioned.
type Repository interface {
	GetSubordinates(ctx context.Context, month string) ([]Employee, error)
	Approve(ctx context.Context, refs []Ref) (int, error)
	Reject(ctx context.Context, refs []Ref, reason string) (int, error)
}
