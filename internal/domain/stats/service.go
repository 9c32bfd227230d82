package stats

import (
	"context"

	"golang.org/x/sync/errgroup"

	"pet-registry/internal/domain/owners"
	"pet-registry/internal/domain/pets"
)

// PetSource y OwnerSource son lo mínimo que stats necesita de los repos.
// Se definen acá para no atar el módulo a una implementación de storage.
type PetSource interface {
	ListAll(ctx context.Context) ([]pets.Pet, error)
}

type OwnerSource interface {
	ListAll(ctx context.Context) ([]owners.Owner, error)
}

type Service struct {
	pets   PetSource
	owners OwnerSource
}

func NewService(pets PetSource, owners OwnerSource) *Service {
	return &Service{
		pets:   pets,
		owners: owners,
	}
}

func (s *Service) OldestPets(ctx context.Context) ([]pets.Pet, error) {
	ps, err := s.pets.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return OldestPets(ps), nil
}

func (s *Service) MostCommonSpecies(ctx context.Context) ([]SpeciesCount, bool, error) {
	ps, err := s.pets.ListAll(ctx)
	if err != nil {
		return nil, false, err
	}
	out, ok := MostCommonSpecies(ps)
	return out, ok, nil
}

func (s *Service) HeaviestPets(ctx context.Context) ([]HeaviestPet, bool, error) {
	ps, os, err := s.fetchBoth(ctx)
	if err != nil {
		return nil, false, err
	}
	out, ok := HeaviestPets(ps, os)
	return out, ok, nil
}

func (s *Service) TopOwnersByPetCount(ctx context.Context) ([]OwnerPetCount, error) {
	ps, os, err := s.fetchBoth(ctx)
	if err != nil {
		return nil, err
	}
	return TopOwnersByPetCount(os, ps), nil
}

func (s *Service) TopOwnersBySpecies(ctx context.Context, species string) ([]OwnerPetCount, error) {
	ps, os, err := s.fetchBoth(ctx)
	if err != nil {
		return nil, err
	}
	return TopOwnersBySpecies(os, ps, species)
}

func (s *Service) HeaviestOwners(ctx context.Context) ([]OwnerLoad, error) {
	ps, os, err := s.fetchBoth(ctx)
	if err != nil {
		return nil, err
	}
	return HeaviestOwners(os, ps), nil
}

// fetchBoth trae mascotas y dueños en paralelo; las dos consultas son
// independientes y la reducción necesita ambas completas.
func (s *Service) fetchBoth(ctx context.Context) ([]pets.Pet, []owners.Owner, error) {
	var (
		ps []pets.Pet
		os []owners.Owner
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ps, err = s.pets.ListAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		os, err = s.owners.ListAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return ps, os, nil
}
