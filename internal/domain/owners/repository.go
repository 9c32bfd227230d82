package owners

import "context"

type Repository interface {
	Create(ctx context.Context, o Owner) error
	GetByID(ctx context.Context, id string) (Owner, error)

	// List devuelve la página pedida y el total de owners ANTES de paginar.
	// Recibe Page ya normalizada por el service.
	List(ctx context.Context, page Page) ([]Owner, int, error)

	// ListAll trae todos los owners (lo consumen las estadísticas).
	ListAll(ctx context.Context) ([]Owner, error)

	Update(ctx context.Context, o Owner) error
	Delete(ctx context.Context, id string) error
}

// Page es el contrato de paginación por offset.
type Page struct {
	Start int
	Limit int
}
