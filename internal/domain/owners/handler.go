package owners

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/owners", func(or chi.Router) {
		or.Post("/", createOwnerHandler(svc))
		or.Get("/", listOwnersHandler(svc))

		or.Get("/{ownerID}", getOwnerHandler(svc))
		or.Patch("/{ownerID}", updateOwnerHandler(svc))

		// Baja simple: las mascotas del owner quedan con referencia colgante.
		// La baja en cascada vive en /owners/{ownerID}/with-pets (paquete pets).
		or.Delete("/{ownerID}", deleteOwnerHandler(svc))
	})
}

type createOwnerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type updateOwnerRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// ownerResponse representa un dueño devuelto por la API.
type ownerResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ownerListResponse es la página pedida más el total antes de paginar,
// para que el cliente pueda calcular cuántas páginas hay.
type ownerListResponse struct {
	Items      []ownerResponse `json:"items"`
	TotalCount int             `json:"total_count"`
	Start      int             `json:"start"`
	Limit      int             `json:"limit"`
}

// createOwnerHandler godoc
// @Summary Crear dueño
// @Description Registra un nuevo dueño. first_name y last_name son obligatorios; email y phone son opcionales.
// @Tags owners
// @Accept json
// @Produce json
// @Param payload body createOwnerRequest true "Datos del dueño"
// @Success 201 {object} ownerResponse
// @Failure 400 {string} string "invalid json / campos obligatorios faltantes"
// @Failure 500 {string} string "internal error"
// @Router /owners [post]
func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOwnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.Create(r.Context(), CreateInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, "first_name and last_name are required", http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toOwnerResponse(o))
	}
}

// listOwnersHandler godoc
// @Summary Listar dueños
// @Description Lista dueños paginados. start es el offset (default 0) y limit el tamaño de página (default 12, máximo 100). Valores inválidos se ignoran y se usan los defaults.
// @Tags owners
// @Produce json
// @Param start query int false "Offset dentro del conjunto total (default 0)"
// @Param limit query int false "Tamaño de página (default 12, máximo 100)"
// @Success 200 {object} ownerListResponse
// @Failure 500 {string} string "internal error"
// @Router /owners [get]
func listOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := normalizePage(parsePage(r))

		items, total, err := svc.List(r.Context(), page)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]ownerResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toOwnerResponse(o))
		}

		writeJSON(w, http.StatusOK, ownerListResponse{
			Items:      out,
			TotalCount: total,
			Start:      page.Start,
			Limit:      page.Limit,
		})
	}
}

// getOwnerHandler godoc
// @Summary Obtener dueño
// @Tags owners
// @Produce json
// @Param ownerID path string true "ID del dueño"
// @Success 200 {object} ownerResponse
// @Failure 404 {string} string "owner not found"
// @Failure 500 {string} string "internal error"
// @Router /owners/{ownerID} [get]
func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.GetByID(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			switch err {
			case ErrNotFound:
				http.Error(w, "owner not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

// updateOwnerHandler godoc
// @Summary Actualizar dueño
// @Description Actualización parcial: solo se tocan los campos presentes en el body. first_name y last_name no aceptan quedar vacíos; email y phone sí (enviar "" los limpia).
// @Tags owners
// @Accept json
// @Produce json
// @Param ownerID path string true "ID del dueño"
// @Param payload body updateOwnerRequest true "Campos a modificar"
// @Success 200 {object} ownerResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 404 {string} string "owner not found"
// @Failure 500 {string} string "internal error"
// @Router /owners/{ownerID} [patch]
func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateOwnerRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		o, err := svc.Update(r.Context(), chi.URLParam(r, "ownerID"), UpdateInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, "first_name and last_name cannot be blank", http.StatusBadRequest)
			case ErrNotFound:
				http.Error(w, "owner not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

// deleteOwnerHandler godoc
// @Summary Borrar dueño
// @Description Borra solo el dueño. Sus mascotas no se tocan y quedan con owner_id colgante. Para la baja en cascada usar DELETE /owners/{ownerID}/with-pets.
// @Tags owners
// @Param ownerID path string true "ID del dueño"
// @Success 204 {string} string "sin contenido"
// @Failure 404 {string} string "owner not found"
// @Failure 500 {string} string "internal error"
// @Router /owners/{ownerID} [delete]
func deleteOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "ownerID")); err != nil {
			switch err {
			case ErrNotFound:
				http.Error(w, "owner not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// parsePage lee start/limit de la query. Valores no numéricos o fuera de
// rango se ignoran (el service aplica defaults), sin devolver 400.
func parsePage(r *http.Request) Page {
	var p Page
	if v := r.URL.Query().Get("start"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			p.Start = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.Limit = n
		}
	}
	return p
}

func toOwnerResponse(o Owner) ownerResponse {
	return ownerResponse{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Email:     o.Email,
		Phone:     o.Phone,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
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
