package colleague

import "context"

type Repository interface {
	GetAll(ctx context.Context) ([]Colleague, error)
}
