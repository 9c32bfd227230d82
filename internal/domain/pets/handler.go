package pets

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-registry/internal/domain/owners"
)

func RegisterRoutes(r chi.Router, svc *Service, ownersSvc *owners.Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Patch("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))

		// Vista enriquecida: mascota + dueño + campos traducidos
		pr.Get("/{petID}/with-owner", petWithOwnerHandler(svc))
	})

	// Vistas compuestas bajo /owners. Se registran acá y no en el módulo
	// owners porque necesitan datos de mascotas (owners no puede importar
	// pets, rompe ciclos).
	r.Get("/owners/{ownerID}/with-pets", ownerWithPetsHandler(svc))
	r.Delete("/owners/{ownerID}/with-pets", deleteOwnerWithPetsHandler(ownersSvc))
}

type createPetRequest struct {
	Name      string  `json:"name"`
	Species   string  `json:"species"`
	Breed     string  `json:"breed"`
	Color     string  `json:"color"`
	BirthDate string  `json:"birth_date"` // YYYY-MM-DD obligatorio
	Weight    float64 `json:"weight"`
	OwnerID   string  `json:"owner_id"`
}

type updatePetRequest struct {
	// Punteros para PATCH real: nil = no tocar. Para birth_date, null y
	// campo ausente son equivalentes (la fecha es obligatoria, no se limpia).
	Name      *string  `json:"name"`
	Species   *string  `json:"species"`
	Breed     *string  `json:"breed"`
	Color     *string  `json:"color"`
	BirthDate *string  `json:"birth_date"` // YYYY-MM-DD
	Weight    *float64 `json:"weight"`
	OwnerID   *string  `json:"owner_id"`
}

// petResponse representa una mascota devuelta por la API.
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

// petListResponse es la página pedida más el total antes de paginar,
// para que el cliente pueda calcular cuántas páginas hay.
type petListResponse struct {
	Items      []petResponse `json:"items"`
	TotalCount int           `json:"total_count"`
	Start      int           `json:"start"`
	Limit      int           `json:"limit"`
}

type ownerSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// petWithOwnerResponse es la mascota con su dueño y los tres campos
// traducidos al idioma destino configurado.
type petWithOwnerResponse struct {
	petResponse
	Owner             ownerSummary `json:"owner"`
	SpeciesTranslated string       `json:"species_translated"`
	BreedTranslated   string       `json:"breed_translated"`
	ColorTranslated   string       `json:"color_translated"`
}

type ownerWithPetsResponse struct {
	Owner ownerSummary  `json:"owner"`
	Pets  []petResponse `json:"pets"`
}

type deleteWithPetsResponse struct {
	DeletedPets int `json:"deleted_pets"`
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Registra una mascota. name, species, birth_date y owner_id son obligatorios; el owner referenciado tiene que existir. weight no puede ser negativo.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Datos de la mascota; birth_date en formato YYYY-MM-DD"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / birth_date inválido / reglas de negocio"
// @Failure 404 {string} string "owner not found"
// @Failure 500 {string} string "internal error"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.BirthDate) == "" {
			http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		bd, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:      req.Name,
			Species:   req.Species,
			Breed:     req.Breed,
			Color:     req.Color,
			BirthDate: bd,
			Weight:    req.Weight,
			OwnerID:   req.OwnerID,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrOwnerNotFound:
				http.Error(w, "owner not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Lista mascotas paginadas, con filtro opcional por especie (match exacto, case-insensitive). start es el offset (default 0) y limit el tamaño de página (default 12, máximo 100).
// @Tags pets
// @Produce json
// @Param start query int false "Offset dentro del conjunto total (default 0)"
// @Param limit query int false "Tamaño de página (default 12, máximo 100)"
// @Param species query string false "Filtro por especie (ej: dog)"
// @Success 200 {object} petListResponse
// @Failure 500 {string} string "internal error"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := normalizeFilter(parseListFilter(r))

		items, total, err := svc.List(r.Context(), filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		writeJSON(w, http.StatusOK, petListResponse{
			Items:      out,
			TotalCount: total,
			Start:      filter.Start,
			Limit:      filter.Limit,
		})
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {string} string "pet not found"
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			switch err {
			case ErrNotFound:
				http.Error(w, "pet not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Actualización parcial: solo se tocan los campos presentes en el body. name y species no aceptan quedar vacíos; breed y color sí. owner_id reasigna la mascota a otro owner existente.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body updatePetRequest true "Campos a modificar; birth_date en formato YYYY-MM-DD"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "invalid json / birth_date inválido / reglas de negocio"
// @Failure 404 {string} string "pet not found / owner not found"
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID} [patch]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updatePetRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var bd *time.Time
		if req.BirthDate != nil {
			t, err := time.Parse("2006-01-02", *req.BirthDate)
			if err != nil {
				http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			bd = &t
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), UpdateInput{
			Name:      req.Name,
			Species:   req.Species,
			Breed:     req.Breed,
			Color:     req.Color,
			BirthDate: bd,
			Weight:    req.Weight,
			OwnerID:   req.OwnerID,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotFound:
				http.Error(w, "pet not found", http.StatusNotFound)
			case ErrOwnerNotFound:
				http.Error(w, "owner not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Borra la mascota. El dueño no se toca.
// @Tags pets
// @Param petID path string true "ID de la mascota"
// @Success 204 {string} string "sin contenido"
// @Failure 404 {string} string "pet not found"
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID")); err != nil {
			switch err {
			case ErrNotFound:
				http.Error(w, "pet not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// petWithOwnerHandler godoc
// @Summary Obtener mascota con dueño y traducciones
// @Description Devuelve la mascota con su dueño y species/breed/color traducidos al idioma destino configurado. Si la traducción falla, cada campo cae a su texto original (el color, en minúsculas). Si el owner referenciado ya no existe, devuelve 404.
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petWithOwnerResponse
// @Failure 404 {string} string "pet not found / owner not found"
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID}/with-owner [get]
func petWithOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.GetWithOwner(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			switch err {
			case ErrNotFound:
				http.Error(w, "pet not found", http.StatusNotFound)
			case ErrOwnerNotFound:
				http.Error(w, "owner not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, petWithOwnerResponse{
			petResponse:       toPetResponse(v.Pet),
			Owner:             toOwnerSummary(v.Owner),
			SpeciesTranslated: v.Translated.Species,
			BreedTranslated:   v.Translated.Breed,
			ColorTranslated:   v.Translated.Color,
		})
	}
}

// ownerWithPetsHandler godoc
// @Summary Obtener dueño con sus mascotas
// @Tags owners
// @Produce json
// @Param ownerID path string true "ID del dueño"
// @Success 200 {object} ownerWithPetsResponse
// @Failure 404 {string} string "owner not found"
// @Failure 500 {string} string "internal error"
// @Router /owners/{ownerID}/with-pets [get]
func ownerWithPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.GetOwnerWithPets(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			switch err {
			case ErrOwnerNotFound:
				http.Error(w, "owner not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		out := make([]petResponse, 0, len(v.Pets))
		for _, p := range v.Pets {
			out = append(out, toPetResponse(p))
		}

		writeJSON(w, http.StatusOK, ownerWithPetsResponse{
			Owner: toOwnerSummary(v.Owner),
			Pets:  out,
		})
	}
}

// deleteOwnerWithPetsHandler godoc
// @Summary Borrar dueño con sus mascotas
// @Description Baja en cascada: borra primero todas las mascotas del dueño y después el dueño. Devuelve cuántas mascotas se borraron.
// @Tags owners
// @Produce json
// @Param ownerID path string true "ID del dueño"
// @Success 200 {object} deleteWithPetsResponse
// @Failure 404 {string} string "owner not found"
// @Failure 500 {string} string "internal error"
// @Router /owners/{ownerID}/with-pets [delete]
func deleteOwnerWithPetsHandler(ownersSvc *owners.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := ownersSvc.DeleteWithPets(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			switch err {
			case owners.ErrNotFound:
				http.Error(w, "owner not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, deleteWithPetsResponse{DeletedPets: n})
	}
}

// parseListFilter lee species/start/limit de la query. Valores no numéricos
// o fuera de rango se ignoran (el service aplica defaults), sin devolver 400.
func parseListFilter(r *http.Request) ListFilter {
	f := ListFilter{
		Species: strings.TrimSpace(r.URL.Query().Get("species")),
	}
	if v := r.URL.Query().Get("start"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			f.Start = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			f.Limit = n
		}
	}
	return f
}

func toPetResponse(p Pet) petResponse {
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

func toOwnerSummary(o owners.Owner) ownerSummary {
	return ownerSummary{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Email:     o.Email,
		Phone:     o.Phone,
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
