package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-registry/internal/domain/owners"
	"pet-registry/internal/ports/translation"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrOwnerNotFound = errors.New("owner not found")
)

const (
	DefaultPageLimit = 12
	MaxPageLimit     = 100
)

// OwnerDirectory es lo mínimo que pets necesita del módulo owners:
// verificar existencia y leer el dueño para las vistas compuestas.
// Lo satisface *owners.Service.
type OwnerDirectory interface {
	GetByID(ctx context.Context, id string) (owners.Owner, error)
}

type Service struct {
	repo   Repository
	owners OwnerDirectory
	now    func() time.Time

	// traducción opcional para la vista with-owner (ver translate.go)
	translator translation.Translator
	trSource   string
	trTarget   string
}

func NewService(repo Repository, owners OwnerDirectory) *Service {
	return &Service{
		repo:   repo,
		owners: owners,
		now:    time.Now,
	}
}

type CreateInput struct {
	Name      string
	Species   string
	Breed     string
	Color     string
	BirthDate time.Time
	Weight    float64
	OwnerID   string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Species) == "" {
		return Pet{}, ErrInvalidInput
	}
	if in.BirthDate.IsZero() {
		return Pet{}, ErrInvalidInput
	}
	if in.Weight < 0 {
		return Pet{}, ErrInvalidInput
	}
	ownerID := strings.TrimSpace(in.OwnerID)
	if ownerID == "" {
		return Pet{}, ErrInvalidInput
	}

	// Integridad referencial por chequeo de existencia, no por constraint:
	// la mascota solo nace si el owner existe en ese momento.
	if _, err := s.owners.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, owners.ErrNotFound) {
			return Pet{}, ErrOwnerNotFound
		}
		return Pet{}, err
	}

	now := s.now()
	p := Pet{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Name:      strings.TrimSpace(in.Name),
		Species:   strings.TrimSpace(in.Species),
		Breed:     strings.TrimSpace(in.Breed),
		Color:     strings.TrimSpace(in.Color),
		BirthDate: in.BirthDate,
		Weight:    in.Weight,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Pet, int, error) {
	return s.repo.List(ctx, normalizeFilter(f))
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// UpdateInput usa punteros para PATCH real: nil = no tocar.
// Name/Species no aceptan quedar en blanco; Breed/Color sí. OwnerID permite
// reasignar la mascota a otro owner existente.
type UpdateInput struct {
	Name      *string
	Species   *string
	Breed     *string
	Color     *string
	BirthDate *time.Time
	Weight    *float64
	OwnerID   *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		if v == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Name = v
	}
	if in.Species != nil {
		v := strings.TrimSpace(*in.Species)
		if v == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Species = v
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Color != nil {
		p.Color = strings.TrimSpace(*in.Color)
	}
	if in.BirthDate != nil {
		if in.BirthDate.IsZero() {
			return Pet{}, ErrInvalidInput
		}
		p.BirthDate = *in.BirthDate
	}
	if in.Weight != nil {
		if *in.Weight < 0 {
			return Pet{}, ErrInvalidInput
		}
		p.Weight = *in.Weight
	}
	if in.OwnerID != nil {
		v := strings.TrimSpace(*in.OwnerID)
		if v == "" {
			return Pet{}, ErrInvalidInput
		}
		// Reasignación: el owner destino tiene que existir.
		if _, err := s.owners.GetByID(ctx, v); err != nil {
			if errors.Is(err, owners.ErrNotFound) {
				return Pet{}, ErrOwnerNotFound
			}
			return Pet{}, err
		}
		p.OwnerID = v
	}

	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// normalizeFilter aplica defaults y topes del contrato de paginación.
func normalizeFilter(f ListFilter) ListFilter {
	f.Species = strings.TrimSpace(f.Species)
	if f.Start < 0 {
		f.Start = 0
	}
	if f.Limit <= 0 {
		f.Limit = DefaultPageLimit
	}
	if f.Limit > MaxPageLimit {
		f.Limit = MaxPageLimit
	}
	return f
}
