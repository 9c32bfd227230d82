package stats

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-registry/internal/domain/pets"
)

// RegisterRoutes cuelga las estadísticas bajo /pets/stats y /owners/stats.
// chi resuelve segmentos estáticos antes que {param}, así que estas rutas
// no chocan con /pets/{petID} ni /owners/{ownerID}.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/stats", func(sr chi.Router) {
		sr.Get("/oldest", oldestPetsHandler(svc))
		sr.Get("/most-common-species", mostCommonSpeciesHandler(svc))
		sr.Get("/heaviest", heaviestPetsHandler(svc))
	})

	r.Route("/owners/stats", func(sr chi.Router) {
		sr.Get("/top-by-pets", topOwnersByPetCountHandler(svc))
		sr.Get("/top-by-species", topOwnersBySpeciesHandler(svc))
		sr.Get("/heaviest", heaviestOwnersHandler(svc))
	})
}

type petResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Breed     string    `json:"breed"`
	Color     string    `json:"color"`
	BirthDate time.Time `json:"birth_date"`
	Weight    float64   `json:"weight"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type speciesCountResponse struct {
	Species string `json:"species"`
	Count   int    `json:"count"`
}

// speciesResultResponse envuelve el resultado para poder distinguir
// "sin registros" (result: null) de un resultado real. Lo mismo abajo
// con heaviestResultResponse.
type speciesResultResponse struct {
	Result []speciesCountResponse `json:"result"`
}

type heaviestPetResponse struct {
	petResponse
	OwnerName string `json:"owner_name"`
}

type heaviestResultResponse struct {
	Result []heaviestPetResponse `json:"result"`
}

type ownerCountResponse struct {
	OwnerID  string `json:"owner_id"`
	FullName string `json:"full_name"`
	Count    int    `json:"count"`
}

type ownerLoadResponse struct {
	OwnerID     string  `json:"owner_id"`
	FullName    string  `json:"full_name"`
	TotalWeight float64 `json:"total_weight"`
}

// oldestPetsHandler godoc
// @Summary Mascotas más viejas
// @Description Todas las mascotas empatadas en la fecha de nacimiento mínima. Sin registros devuelve lista vacía.
// @Tags stats
// @Produce json
// @Success 200 {array} petResponse
// @Failure 500 {string} string "internal error"
// @Router /pets/stats/oldest [get]
func oldestPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ps, err := svc.OldestPets(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(ps))
		for _, p := range ps {
			out = append(out, toPetResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// mostCommonSpeciesHandler godoc
// @Summary Especie más común
// @Description Todas las especies empatadas en la cantidad máxima, cada una con su cuenta. Sin registros devuelve result: null (distinto de lista vacía).
// @Tags stats
// @Produce json
// @Success 200 {object} speciesResultResponse
// @Failure 500 {string} string "internal error"
// @Router /pets/stats/most-common-species [get]
func mostCommonSpeciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, ok, err := svc.MostCommonSpecies(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		var resp speciesResultResponse
		if ok {
			resp.Result = make([]speciesCountResponse, 0, len(items))
			for _, it := range items {
				resp.Result = append(resp.Result, speciesCountResponse{Species: it.Species, Count: it.Count})
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// heaviestPetsHandler godoc
// @Summary Mascotas más pesadas
// @Description Todas las mascotas empatadas en el peso máximo, cada una con el nombre completo de su dueño. Sin registros devuelve result: null.
// @Tags stats
// @Produce json
// @Success 200 {object} heaviestResultResponse
// @Failure 500 {string} string "internal error"
// @Router /pets/stats/heaviest [get]
func heaviestPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, ok, err := svc.HeaviestPets(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		var resp heaviestResultResponse
		if ok {
			resp.Result = make([]heaviestPetResponse, 0, len(items))
			for _, it := range items {
				resp.Result = append(resp.Result, heaviestPetResponse{
					petResponse: toPetResponse(it.Pet),
					OwnerName:   it.OwnerName,
				})
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// topOwnersByPetCountHandler godoc
// @Summary Dueños con más mascotas
// @Description Todos los dueños empatados en la cantidad máxima de mascotas. Los dueños sin mascotas entran al empate con cero.
// @Tags stats
// @Produce json
// @Success 200 {array} ownerCountResponse
// @Failure 500 {string} string "internal error"
// @Router /owners/stats/top-by-pets [get]
func topOwnersByPetCountHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.TopOwnersByPetCount(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toOwnerCountResponses(items))
	}
}

// topOwnersBySpeciesHandler godoc
// @Summary Dueños con más mascotas de una especie
// @Description Todos los dueños empatados en la cantidad máxima de mascotas de la especie indicada (match case-insensitive). Los dueños con cero coincidencias quedan afuera; si nadie tiene la especie, la respuesta es una lista vacía.
// @Tags stats
// @Produce json
// @Param species query string true "Especie a contar (ej: dog)"
// @Success 200 {array} ownerCountResponse
// @Failure 400 {string} string "species filter is required"
// @Failure 500 {string} string "internal error"
// @Router /owners/stats/top-by-species [get]
func topOwnersBySpeciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.TopOwnersBySpecies(r.Context(), r.URL.Query().Get("species"))
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, "species filter is required", http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toOwnerCountResponses(items))
	}
}

// heaviestOwnersHandler godoc
// @Summary Dueños con mayor peso total
// @Description Todos los dueños empatados en la suma máxima de pesos de sus mascotas (cero si no tienen).
// @Tags stats
// @Produce json
// @Success 200 {array} ownerLoadResponse
// @Failure 500 {string} string "internal error"
// @Router /owners/stats/heaviest [get]
func heaviestOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.HeaviestOwners(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]ownerLoadResponse, 0, len(items))
		for _, it := range items {
			out = append(out, ownerLoadResponse{
				OwnerID:     it.Owner.ID,
				FullName:    it.Owner.FullName(),
				TotalWeight: it.TotalWeight,
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func toOwnerCountResponses(items []OwnerPetCount) []ownerCountResponse {
	out := make([]ownerCountResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ownerCountResponse{
			OwnerID:  it.Owner.ID,
			FullName: it.Owner.FullName(),
			Count:    it.Count,
		})
	}
	return out
}

func toPetResponse(p pets.Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		Species:   p.Species,
		Breed:     p.Breed,
		Color:     p.Color,
		BirthDate: p.BirthDate,
		Weight:    p.Weight,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos (owners/pets/stats)
// para evitar crear paquetes/helpers compartidos demasiado pronto.
// Si más adelante se repite en más módulos, recién conviene extraerlo a un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
