package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"pet-registry/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

// Las fechas se guardan en UTC: sqlite las persiste como texto y así el
// ORDER BY created_at queda cronológico.
func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, owner_id,
			name, species, breed, color,
			birth_date, weight,
			created_at, updated_at
		) VALUES (?,?,?,?,?,?,?,?,?,?)
	`,
		p.ID,
		p.OwnerID,
		p.Name,
		p.Species,
		p.Breed,
		p.Color,
		p.BirthDate.UTC(),
		p.Weight,
		p.CreatedAt.UTC(),
		p.UpdatedAt.UTC(),
	)
	return err
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			owner_id = ?,
			name = ?,
			species = ?,
			breed = ?,
			color = ?,
			birth_date = ?,
			weight = ?,
			updated_at = ?
		WHERE id = ?
	`,
		p.OwnerID,
		p.Name,
		p.Species,
		p.Breed,
		p.Color,
		p.BirthDate.UTC(),
		p.Weight,
		p.UpdatedAt.UTC(),
		p.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, owner_id,
			name, species, breed, color,
			birth_date, weight,
			created_at, updated_at
		FROM pets
		WHERE id = ?
	`, id)

	var p pets.Pet
	if err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Species,
		&p.Breed,
		&p.Color,
		&p.BirthDate,
		&p.Weight,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}

	return p, nil
}

// List pagina sobre el filtro; el total se calcula con la misma condición,
// antes de aplicar LIMIT/OFFSET.
func (r *PetsRepo) List(ctx context.Context, f pets.ListFilter) ([]pets.Pet, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM pets
		WHERE (? = '' OR LOWER(species) = LOWER(?))
	`, f.Species, f.Species).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, owner_id,
			name, species, breed, color,
			birth_date, weight,
			created_at, updated_at
		FROM pets
		WHERE (? = '' OR LOWER(species) = LOWER(?))
		ORDER BY created_at ASC, id ASC
		LIMIT ? OFFSET ?
	`, f.Species, f.Species, f.Limit, f.Start)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		if err := rows.Scan(
			&p.ID,
			&p.OwnerID,
			&p.Name,
			&p.Species,
			&p.Breed,
			&p.Color,
			&p.BirthDate,
			&p.Weight,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}

	return out, total, rows.Err()
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID string) ([]pets.Pet, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, owner_id,
			name, species, breed, color,
			birth_date, weight,
			created_at, updated_at
		FROM pets
		WHERE owner_id = ?
		ORDER BY created_at ASC, id ASC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		if err := rows.Scan(
			&p.ID,
			&p.OwnerID,
			&p.Name,
			&p.Species,
			&p.Breed,
			&p.Color,
			&p.BirthDate,
			&p.Weight,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PetsRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, owner_id,
			name, species, breed, color,
			birth_date, weight,
			created_at, updated_at
		FROM pets
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		if err := rows.Scan(
			&p.ID,
			&p.OwnerID,
			&p.Name,
			&p.Species,
			&p.Breed,
			&p.Color,
			&p.BirthDate,
			&p.Weight,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) DeleteByOwner(ctx context.Context, ownerID string) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE owner_id = ?`, ownerID)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
