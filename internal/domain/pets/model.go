package pets

import "time"

// Pet representa una mascota registrada en el sistema.
//
// La relación con el dueño es unidireccional: la mascota guarda el ID del
// owner y nada más. El camino inverso (las mascotas de un owner) es una
// consulta, no una referencia en memoria.
type Pet struct {
	ID      string
	OwnerID string

	Name    string
	Species string // texto libre (dog, cat, ...); se guarda tal como llega
	Breed   string
	Color   string

	BirthDate time.Time // fecha, medianoche UTC
	Weight    float64   // no negativo

	CreatedAt time.Time
	UpdatedAt time.Time
}
