package stats

import (
	"errors"
	"sort"
	"strings"

	"pet-registry/internal/domain/owners"
	"pet-registry/internal/domain/pets"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Las agregaciones son funciones puras sobre colecciones ya traídas de la
// base. Política de empates en todas: se devuelven TODOS los registros que
// alcanzan el valor extremo, nunca un ganador arbitrario (si todos empatan,
// vuelven todos). El orden de entrada se preserva donde aplica.

// SpeciesCount es una especie con su cantidad de mascotas.
type SpeciesCount struct {
	Species string
	Count   int
}

// HeaviestPet es una mascota empatada en el peso máximo, junto con el
// nombre completo de su dueño (el ID ya viaja en Pet.OwnerID). OwnerName
// queda vacío si la referencia al owner quedó colgante.
type HeaviestPet struct {
	Pet       pets.Pet
	OwnerName string
}

// OwnerPetCount es un dueño con su cantidad de mascotas (total o de una
// especie, según la consulta).
type OwnerPetCount struct {
	Owner owners.Owner
	Count int
}

// OwnerLoad es un dueño con el peso total de sus mascotas.
type OwnerLoad struct {
	Owner       owners.Owner
	TotalWeight float64
}

// OldestPets devuelve todas las mascotas empatadas en la fecha de nacimiento
// mínima. Entrada vacía => lista vacía.
func OldestPets(ps []pets.Pet) []pets.Pet {
	if len(ps) == 0 {
		return []pets.Pet{}
	}

	min := ps[0].BirthDate
	for _, p := range ps[1:] {
		if p.BirthDate.Before(min) {
			min = p.BirthDate
		}
	}

	out := make([]pets.Pet, 0, 1)
	for _, p := range ps {
		if p.BirthDate.Equal(min) {
			out = append(out, p)
		}
	}
	return out
}

// MostCommonSpecies agrupa por especie (case-sensitive, como está guardado)
// y devuelve todas las especies empatadas en la cantidad máxima. El segundo
// valor distingue "sin registros" (false) de un resultado real: con cero
// mascotas no hay especie que contar.
func MostCommonSpecies(ps []pets.Pet) ([]SpeciesCount, bool) {
	if len(ps) == 0 {
		return nil, false
	}

	counts := make(map[string]int, len(ps))
	for _, p := range ps {
		counts[p.Species]++
	}

	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}

	out := make([]SpeciesCount, 0, 1)
	for sp, n := range counts {
		if n == max {
			out = append(out, SpeciesCount{Species: sp, Count: n})
		}
	}
	// el map no tiene orden; se ordena por especie para salida estable
	sort.Slice(out, func(i, j int) bool { return out[i].Species < out[j].Species })

	return out, true
}

// HeaviestPets devuelve todas las mascotas empatadas en el peso máximo,
// cada una con el nombre completo de su dueño. El segundo valor distingue
// "sin registros" (false) de un resultado real.
func HeaviestPets(ps []pets.Pet, os []owners.Owner) ([]HeaviestPet, bool) {
	if len(ps) == 0 {
		return nil, false
	}

	byID := make(map[string]owners.Owner, len(os))
	for _, o := range os {
		byID[o.ID] = o
	}

	max := ps[0].Weight
	for _, p := range ps[1:] {
		if p.Weight > max {
			max = p.Weight
		}
	}

	out := make([]HeaviestPet, 0, 1)
	for _, p := range ps {
		if p.Weight == max {
			name := ""
			if o, ok := byID[p.OwnerID]; ok {
				name = o.FullName()
			}
			out = append(out, HeaviestPet{Pet: p, OwnerName: name})
		}
	}
	return out, true
}

// TopOwnersByPetCount devuelve todos los dueños empatados en la cantidad
// máxima de mascotas. Los dueños sin mascotas cuentan con cero y entran al
// empate (si nadie tiene mascotas, todos son "top").
func TopOwnersByPetCount(os []owners.Owner, ps []pets.Pet) []OwnerPetCount {
	counts := make(map[string]int, len(os))
	for _, p := range ps {
		counts[p.OwnerID]++
	}

	max := 0
	for _, o := range os {
		if counts[o.ID] > max {
			max = counts[o.ID]
		}
	}

	out := make([]OwnerPetCount, 0, 1)
	for _, o := range os {
		if counts[o.ID] == max {
			out = append(out, OwnerPetCount{Owner: o, Count: counts[o.ID]})
		}
	}
	return out
}

// TopOwnersBySpecies es TopOwnersByPetCount restringido a una especie
// (match case-insensitive). A diferencia del total, acá los dueños con
// cero coincidencias quedan afuera aunque cero sea el máximo: si ningún
// dueño tiene la especie, la respuesta es vacía, no "todos empatados en
// cero". Filtro en blanco => ErrInvalidInput.
func TopOwnersBySpecies(os []owners.Owner, ps []pets.Pet, species string) ([]OwnerPetCount, error) {
	species = strings.TrimSpace(species)
	if species == "" {
		return nil, ErrInvalidInput
	}

	counts := make(map[string]int, len(os))
	for _, p := range ps {
		if strings.EqualFold(p.Species, species) {
			counts[p.OwnerID]++
		}
	}

	max := 0
	for _, o := range os {
		if counts[o.ID] > max {
			max = counts[o.ID]
		}
	}
	if max == 0 {
		return []OwnerPetCount{}, nil
	}

	out := make([]OwnerPetCount, 0, 1)
	for _, o := range os {
		if counts[o.ID] == max {
			out = append(out, OwnerPetCount{Owner: o, Count: counts[o.ID]})
		}
	}
	return out, nil
}

// HeaviestOwners devuelve todos los dueños empatados en el peso total
// máximo de sus mascotas (cero si no tienen). Con todos en cero, vuelven
// todos.
func HeaviestOwners(os []owners.Owner, ps []pets.Pet) []OwnerLoad {
	if len(os) == 0 {
		return []OwnerLoad{}
	}

	totals := make(map[string]float64, len(os))
	for _, p := range ps {
		totals[p.OwnerID] += p.Weight
	}

	max := totals[os[0].ID]
	for _, o := range os[1:] {
		if totals[o.ID] > max {
			max = totals[o.ID]
		}
	}

	out := make([]OwnerLoad, 0, 1)
	for _, o := range os {
		if totals[o.ID] == max {
			out = append(out, OwnerLoad{Owner: o, TotalWeight: totals[o.ID]})
		}
	}
	return out
}
