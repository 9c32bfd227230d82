package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"pet-registry/internal/domain/owners"
)

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO owners (
			id, first_name, last_name, email, phone,
			created_at, updated_at
		) VALUES (?,?,?,?,?,?,?)
	`,
		o.ID,
		o.FirstName,
		o.LastName,
		o.Email,
		o.Phone,
		o.CreatedAt.UTC(),
		o.UpdatedAt.UTC(),
	)
	return err
}

func (r *OwnersRepo) Update(ctx context.Context, o owners.Owner) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE owners
		SET
			first_name = ?,
			last_name = ?,
			email = ?,
			phone = ?,
			updated_at = ?
		WHERE id = ?
	`,
		o.FirstName,
		o.LastName,
		o.Email,
		o.Phone,
		o.UpdatedAt.UTC(),
		o.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return owners.ErrNotFound
	}
	return nil
}

func (r *OwnersRepo) GetByID(ctx context.Context, id string) (owners.Owner, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return owners.Owner{}, owners.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, first_name, last_name, email, phone,
			created_at, updated_at
		FROM owners
		WHERE id = ?
	`, id)

	var o owners.Owner
	if err := row.Scan(
		&o.ID,
		&o.FirstName,
		&o.LastName,
		&o.Email,
		&o.Phone,
		&o.CreatedAt,
		&o.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return owners.Owner{}, owners.ErrNotFound
		}
		return owners.Owner{}, err
	}

	return o, nil
}

// List pagina por offset; el total se cuenta antes de aplicar LIMIT/OFFSET.
func (r *OwnersRepo) List(ctx context.Context, page owners.Page) ([]owners.Owner, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM owners`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, first_name, last_name, email, phone,
			created_at, updated_at
		FROM owners
		ORDER BY created_at ASC, id ASC
		LIMIT ? OFFSET ?
	`, page.Limit, page.Start)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]owners.Owner, 0)
	for rows.Next() {
		var o owners.Owner
		if err := rows.Scan(
			&o.ID,
			&o.FirstName,
			&o.LastName,
			&o.Email,
			&o.Phone,
			&o.CreatedAt,
			&o.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, o)
	}

	return out, total, rows.Err()
}

func (r *OwnersRepo) ListAll(ctx context.Context) ([]owners.Owner, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, first_name, last_name, email, phone,
			created_at, updated_at
		FROM owners
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]owners.Owner, 0)
	for rows.Next() {
		var o owners.Owner
		if err := rows.Scan(
			&o.ID,
			&o.FirstName,
			&o.LastName,
			&o.Email,
			&o.Phone,
			&o.CreatedAt,
			&o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, o)
	}

	return out, rows.Err()
}

func (r *OwnersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM owners WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return owners.ErrNotFound
	}
	return nil
}
