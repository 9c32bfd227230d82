package pets

import "context"

// ListFilter es el filtro de listado. Species vacío = sin filtro; el match
// es exacto pero case-insensitive. Start/Limit llegan ya normalizados por
// el service.
type ListFilter struct {
	Species string
	Start   int
	Limit   int
}

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)

	// List devuelve la página pedida y el total de registros que matchean
	// el filtro antes de paginar.
	List(ctx context.Context, f ListFilter) ([]Pet, int, error)

	ListByOwner(ctx context.Context, ownerID string) ([]Pet, error)

	// ListAll alimenta las estadísticas, que reducen en memoria.
	ListAll(ctx context.Context) ([]Pet, error)

	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error

	// DeleteByOwner borra todas las mascotas del owner y devuelve cuántas
	// borró. Lo usa la baja en cascada del módulo owners.
	DeleteByOwner(ctx context.Context, ownerID string) (int, error)
}
