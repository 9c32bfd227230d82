package owners

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

const (
	DefaultPageLimit = 12
	MaxPageLimit     = 100
)

// PetPurger borra todas las mascotas de un owner. Lo implementa el
// repositorio de pets; se define acá para evitar importar el paquete pets
// (rompe ciclos: pets ya importa owners).
type PetPurger interface {
	DeleteByOwner(ctx context.Context, ownerID string) (int, error)
}

type Service struct {
	repo Repository
	pets PetPurger
	now  func() time.Time
}

func NewService(repo Repository, pets PetPurger) *Service {
	return &Service{
		repo: repo,
		pets: pets,
		now:  time.Now,
	}
}

type CreateInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Owner, error) {
	if strings.TrimSpace(in.FirstName) == "" {
		return Owner{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.LastName) == "" {
		return Owner{}, ErrInvalidInput
	}

	now := s.now()
	o := Owner{
		ID:        uuid.NewString(),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Owner, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Owner{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, page Page) ([]Owner, int, error) {
	return s.repo.List(ctx, normalizePage(page))
}

// UpdateInput usa punteros para PATCH real: nil = no tocar.
// FirstName/LastName no aceptan quedar en blanco; Email/Phone sí
// (mandar "" los limpia).
type UpdateInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Owner, error) {
	o, err := s.GetByID(ctx, id)
	if err != nil {
		return Owner{}, err
	}

	if in.FirstName != nil {
		v := strings.TrimSpace(*in.FirstName)
		if v == "" {
			return Owner{}, ErrInvalidInput
		}
		o.FirstName = v
	}
	if in.LastName != nil {
		v := strings.TrimSpace(*in.LastName)
		if v == "" {
			return Owner{}, ErrInvalidInput
		}
		o.LastName = v
	}
	if in.Email != nil {
		o.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		o.Phone = strings.TrimSpace(*in.Phone)
	}

	o.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

// Delete borra solo el owner. Sus mascotas quedan con owner_id colgante:
// decisión deliberada (la integridad se chequea al escribir pets, no acá).
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// DeleteWithPets borra primero las mascotas del owner y después el owner.
// Devuelve cuántas mascotas se borraron. Sin transacción cruzada: un alta
// concurrente puede dejar una mascota colgante, estado que el resto del
// sistema ya tolera.
func (s *Service) DeleteWithPets(ctx context.Context, id string) (int, error) {
	o, err := s.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}

	n, err := s.pets.DeleteByOwner(ctx, o.ID)
	if err != nil {
		return 0, err
	}

	if err := s.repo.Delete(ctx, o.ID); err != nil {
		return n, err
	}
	return n, nil
}

// normalizePage aplica defaults y topes del contrato de paginación.
func normalizePage(p Page) Page {
	if p.Start < 0 {
		p.Start = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}
