package owners

import "time"

// Owner representa a una persona registrada como dueña de mascotas.
// La relación es unidireccional: la mascota guarda el owner_id; el listado
// de mascotas de un owner se resuelve por query (ver módulo pets).
type Owner struct {
	ID string

	FirstName string
	LastName  string

	Email string
	Phone string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName compone "FirstName LastName" (se usa en estadísticas y respuestas).
func (o Owner) FullName() string {
	return o.FirstName + " " + o.LastName
}
