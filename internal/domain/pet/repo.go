package pet

import "context"

// Repository is the persistence boundary for pets. The mapping layer
// never touches it; handlers compose the two.
type Repository interface {
	Create(ctx context.Context, p *Pet) error
	GetByID(ctx context.Context, id string) (*Pet, error)
	Update(ctx context.Context, p *Pet) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*Pet, int, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*Pet, int, error)
}
