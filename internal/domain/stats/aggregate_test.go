package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-registry/internal/domain/owners"
	"pet-registry/internal/domain/pets"
)

func mkPet(id, ownerID, species string, weight float64, birth time.Time) pets.Pet {
	return pets.Pet{
		ID:        id,
		OwnerID:   ownerID,
		Name:      "pet-" + id,
		Species:   species,
		Weight:    weight,
		BirthDate: birth,
	}
}

func mkOwner(id, first, last string) owners.Owner {
	return owners.Owner{ID: id, FirstName: first, LastName: last}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOldestPets_IncludesAllTies(t *testing.T) {
	ps := []pets.Pet{
		mkPet("a", "o1", "dog", 10, day(2020, 1, 1)),
		mkPet("b", "o1", "cat", 4, day(2015, 6, 30)),
		mkPet("c", "o2", "dog", 7, day(2018, 3, 15)),
		mkPet("d", "o2", "cat", 5, day(2015, 6, 30)),
	}

	out := OldestPets(ps)

	require.Len(t, out, 2)
	assert.Equal(t, "b", out[0].ID)
	assert.Equal(t, "d", out[1].ID)
	for _, p := range out {
		assert.True(t, p.BirthDate.Equal(day(2015, 6, 30)))
	}
}

func TestOldestPets_AllTied(t *testing.T) {
	ps := []pets.Pet{
		mkPet("a", "o1", "dog", 10, day(2020, 1, 1)),
		mkPet("b", "o1", "cat", 4, day(2020, 1, 1)),
	}

	out := OldestPets(ps)
	assert.Len(t, out, 2)
}

func TestOldestPets_Empty(t *testing.T) {
	out := OldestPets(nil)
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestMostCommonSpecies_TiesAndCounts(t *testing.T) {
	ps := []pets.Pet{
		mkPet("a", "o1", "dog", 10, day(2020, 1, 1)),
		mkPet("b", "o1", "dog", 4, day(2020, 1, 1)),
		mkPet("c", "o2", "cat", 7, day(2020, 1, 1)),
		mkPet("d", "o2", "cat", 5, day(2020, 1, 1)),
		mkPet("e", "o2", "bird", 1, day(2020, 1, 1)),
	}

	out, ok := MostCommonSpecies(ps)

	require.True(t, ok)
	// empate dog/cat con 2; salida ordenada por especie
	require.Len(t, out, 2)
	assert.Equal(t, SpeciesCount{Species: "cat", Count: 2}, out[0])
	assert.Equal(t, SpeciesCount{Species: "dog", Count: 2}, out[1])
}

func TestMostCommonSpecies_CaseSensitiveAsStored(t *testing.T) {
	// "Dog" y "dog" son grupos distintos: se agrupa como está guardado
	ps := []pets.Pet{
		mkPet("a", "o1", "Dog", 10, day(2020, 1, 1)),
		mkPet("b", "o1", "dog", 4, day(2020, 1, 1)),
		mkPet("c", "o1", "dog", 5, day(2020, 1, 1)),
	}

	out, ok := MostCommonSpecies(ps)

	require.True(t, ok)
	require.Len(t, out, 1)
	assert.Equal(t, SpeciesCount{Species: "dog", Count: 2}, out[0])
}

func TestMostCommonSpecies_EmptyIsSentinel(t *testing.T) {
	out, ok := MostCommonSpecies(nil)
	assert.False(t, ok)
	assert.Nil(t, out)
}

func TestHeaviestPets_IncludesAllTies_WithOwnerNames(t *testing.T) {
	os := []owners.Owner{
		mkOwner("o1", "Ana", "Pérez"),
		mkOwner("o2", "Luis", "Gómez"),
	}
	ps := []pets.Pet{
		mkPet("a", "o1", "dog", 30, day(2020, 1, 1)),
		mkPet("b", "o2", "dog", 30, day(2020, 1, 1)),
		mkPet("c", "o1", "cat", 4, day(2020, 1, 1)),
	}

	out, ok := HeaviestPets(ps, os)

	require.True(t, ok)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Pet.ID)
	assert.Equal(t, "Ana Pérez", out[0].OwnerName)
	assert.Equal(t, "b", out[1].Pet.ID)
	assert.Equal(t, "Luis Gómez", out[1].OwnerName)
}

func TestHeaviestPets_DanglingOwnerReference(t *testing.T) {
	// owner borrado con la baja simple: la mascota sigue, el nombre queda vacío
	ps := []pets.Pet{mkPet("a", "ghost", "dog", 30, day(2020, 1, 1))}

	out, ok := HeaviestPets(ps, nil)

	require.True(t, ok)
	require.Len(t, out, 1)
	assert.Equal(t, "", out[0].OwnerName)
}

func TestHeaviestPets_EmptyIsSentinel(t *testing.T) {
	out, ok := HeaviestPets(nil, nil)
	assert.False(t, ok)
	assert.Nil(t, out)
}

func TestTopOwnersByPetCount_TiesIncluded(t *testing.T) {
	os := []owners.Owner{
		mkOwner("o1", "Ana", "Pérez"),
		mkOwner("o2", "Luis", "Gómez"),
		mkOwner("o3", "Eva", "Ruiz"),
	}
	ps := []pets.Pet{
		mkPet("a", "o1", "dog", 10, day(2020, 1, 1)),
		mkPet("b", "o1", "cat", 4, day(2020, 1, 1)),
		mkPet("c", "o2", "dog", 7, day(2020, 1, 1)),
		mkPet("d", "o2", "cat", 5, day(2020, 1, 1)),
	}

	out := TopOwnersByPetCount(os, ps)

	require.Len(t, out, 2)
	assert.Equal(t, "o1", out[0].Owner.ID)
	assert.Equal(t, 2, out[0].Count)
	assert.Equal(t, "o2", out[1].Owner.ID)
	assert.Equal(t, 2, out[1].Count)
}

func TestTopOwnersByPetCount_AllZero_AllTop(t *testing.T) {
	os := []owners.Owner{
		mkOwner("o1", "Ana", "Pérez"),
		mkOwner("o2", "Luis", "Gómez"),
	}

	out := TopOwnersByPetCount(os, nil)

	// sin mascotas, todos empatan en cero y todos son "top"
	require.Len(t, out, 2)
	assert.Equal(t, 0, out[0].Count)
	assert.Equal(t, 0, out[1].Count)
}

func TestTopOwnersBySpecies_CaseInsensitiveMatch(t *testing.T) {
	os := []owners.Owner{
		mkOwner("o1", "Ana", "Pérez"),
		mkOwner("o2", "Luis", "Gómez"),
	}
	ps := []pets.Pet{
		mkPet("a", "o1", "Dog", 10, day(2020, 1, 1)),
		mkPet("b", "o1", "DOG", 4, day(2020, 1, 1)),
		mkPet("c", "o2", "dog", 7, day(2020, 1, 1)),
		mkPet("d", "o2", "cat", 5, day(2020, 1, 1)),
	}

	out, err := TopOwnersBySpecies(os, ps, "dog")

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "o1", out[0].Owner.ID)
	assert.Equal(t, 2, out[0].Count)
}

func TestTopOwnersBySpecies_AbsentSpecies_EmptyNotAllTied(t *testing.T) {
	os := []owners.Owner{
		mkOwner("o1", "Ana", "Pérez"),
		mkOwner("o2", "Luis", "Gómez"),
	}
	ps := []pets.Pet{
		mkPet("a", "o1", "dog", 10, day(2020, 1, 1)),
	}

	out, err := TopOwnersBySpecies(os, ps, "ferret")

	// nadie tiene la especie: lista vacía, no "todos empatados en cero"
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestTopOwnersBySpecies_BlankFilter(t *testing.T) {
	_, err := TopOwnersBySpecies(nil, nil, "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHeaviestOwners_SumsAndTies(t *testing.T) {
	os := []owners.Owner{
		mkOwner("o1", "Ana", "Pérez"),
		mkOwner("o2", "Luis", "Gómez"),
		mkOwner("o3", "Eva", "Ruiz"),
	}
	ps := []pets.Pet{
		mkPet("a", "o1", "dog", 10, day(2020, 1, 1)),
		mkPet("b", "o1", "cat", 5, day(2020, 1, 1)),
		mkPet("c", "o2", "dog", 15, day(2020, 1, 1)),
		mkPet("d", "o3", "cat", 2, day(2020, 1, 1)),
	}

	out := HeaviestOwners(os, ps)

	require.Len(t, out, 2)
	assert.Equal(t, "o1", out[0].Owner.ID)
	assert.Equal(t, 15.0, out[0].TotalWeight)
	assert.Equal(t, "o2", out[1].Owner.ID)
	assert.Equal(t, 15.0, out[1].TotalWeight)
}

func TestHeaviestOwners_NoPets_AllTiedAtZero(t *testing.T) {
	os := []owners.Owner{
		mkOwner("o1", "Ana", "Pérez"),
		mkOwner("o2", "Luis", "Gómez"),
	}

	out := HeaviestOwners(os, nil)

	require.Len(t, out, 2)
	assert.Equal(t, 0.0, out[0].TotalWeight)
	assert.Equal(t, 0.0, out[1].TotalWeight)
}

func TestHeaviestOwners_Empty(t *testing.T) {
	out := HeaviestOwners(nil, nil)
	require.NotNil(t, out)
	assert.Empty(t, out)
}
