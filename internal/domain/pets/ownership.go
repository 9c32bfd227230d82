package pets

import (
	"context"
	"errors"

	"pet-registry/internal/domain/owners"
)

// Vistas compuestas mascota<->dueño. Viven en pets y no en owners para
// evitar ciclos de imports (pets ya importa owners, no al revés).

// WithOwner es una mascota junto con su dueño y los campos traducidos
// de la vista enriquecida (ver translate.go).
type WithOwner struct {
	Pet        Pet
	Owner      owners.Owner
	Translated TranslatedFields
}

// OwnerWithPets es un dueño junto con todas sus mascotas.
type OwnerWithPets struct {
	Owner owners.Owner
	Pets  []Pet
}

// GetWithOwner devuelve la mascota con su dueño y los campos traducidos.
// Si el owner referenciado ya no existe (baja simple, referencia colgante),
// devuelve ErrOwnerNotFound.
func (s *Service) GetWithOwner(ctx context.Context, petID string) (WithOwner, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return WithOwner{}, err
	}

	o, err := s.owners.GetByID(ctx, p.OwnerID)
	if err != nil {
		if errors.Is(err, owners.ErrNotFound) {
			return WithOwner{}, ErrOwnerNotFound
		}
		return WithOwner{}, err
	}

	return WithOwner{
		Pet:        p,
		Owner:      o,
		Translated: s.translateFields(ctx, p),
	}, nil
}

// GetOwnerWithPets devuelve el dueño con todas sus mascotas (puede ser cero).
func (s *Service) GetOwnerWithPets(ctx context.Context, ownerID string) (OwnerWithPets, error) {
	o, err := s.owners.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, owners.ErrNotFound) {
			return OwnerWithPets{}, ErrOwnerNotFound
		}
		return OwnerWithPets{}, err
	}

	ps, err := s.repo.ListByOwner(ctx, o.ID)
	if err != nil {
		return OwnerWithPets{}, err
	}

	return OwnerWithPets{Owner: o, Pets: ps}, nil
}
