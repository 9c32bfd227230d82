package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-registry/internal/platform/config"
	"pet-registry/internal/router"
)

// newTestServer levanta el router completo con backend in-memory y sin
// traducción (salvo que el test inyecte una).
func newTestServer(t *testing.T, opts router.Options) *httptest.Server {
	t.Helper()

	if opts.Cfg == nil {
		opts.Cfg = &config.Config{}
	}
	ts := httptest.NewServer(router.NewRouter(opts))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_OwnersAndPets(t *testing.T) {
	ts := newTestServer(t, router.Options{})

	// 1) Alta de owner
	ownerID := createOwner(t, ts.URL, map[string]any{
		"first_name": "Ana",
		"last_name":  "Pérez",
		"email":      "ana@example.com",
		"phone":      "+54 11 5555-0001",
	})

	// 2) Lectura del owner
	{
		st, body := doReq(t, ts.URL, "GET", "/owners/"+ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get owner, got %d body=%s", st, string(body))
		}
		var resp struct {
			FirstName string `json:"first_name"`
			Email     string `json:"email"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.FirstName != "Ana" || resp.Email != "ana@example.com" {
			t.Fatalf("unexpected owner body=%s", string(body))
		}
	}

	// 3) PATCH parcial: cambia apellido y limpia email; el nombre queda
	{
		st, body := doReq(t, ts.URL, "PATCH", "/owners/"+ownerID, map[string]any{
			"last_name": "Gómez",
			"email":     "",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch owner, got %d body=%s", st, string(body))
		}
		var resp struct {
			FirstName string `json:"first_name"`
			LastName  string `json:"last_name"`
			Email     string `json:"email"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.FirstName != "Ana" || resp.LastName != "Gómez" || resp.Email != "" {
			t.Fatalf("patch owner: unexpected body=%s", string(body))
		}
	}

	// 4) Alta de mascota referenciando al owner
	petID := createPet(t, ts.URL, map[string]any{
		"name":       "Milo",
		"species":    "Dog",
		"breed":      "mixed",
		"color":      "Brown",
		"birth_date": "2020-03-15",
		"weight":     12.5,
		"owner_id":   ownerID,
	})

	// 5) Lectura de la mascota
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get pet, got %d body=%s", st, string(body))
		}
		var resp struct {
			Name      string  `json:"name"`
			Species   string  `json:"species"`
			BirthDate string  `json:"birth_date"`
			Weight    float64 `json:"weight"`
			OwnerID   string  `json:"owner_id"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Name != "Milo" || resp.Species != "Dog" || resp.OwnerID != ownerID {
			t.Fatalf("unexpected pet body=%s", string(body))
		}
		if resp.BirthDate != "2020-03-15T00:00:00Z" {
			t.Fatalf("expected birth_date at midnight UTC, got %s", resp.BirthDate)
		}
		if resp.Weight != 12.5 {
			t.Fatalf("expected weight 12.5, got %v", resp.Weight)
		}
	}

	// 6) Vista with-owner sin traductor configurado: los campos *_translated
	// traen el texto original (el color, en minúsculas)
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/with-owner", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 with-owner, got %d body=%s", st, string(body))
		}
		var resp struct {
			Owner struct {
				ID       string `json:"id"`
				LastName string `json:"last_name"`
			} `json:"owner"`
			SpeciesTranslated string `json:"species_translated"`
			BreedTranslated   string `json:"breed_translated"`
			ColorTranslated   string `json:"color_translated"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Owner.ID != ownerID || resp.Owner.LastName != "Gómez" {
			t.Fatalf("with-owner: unexpected owner body=%s", string(body))
		}
		if resp.SpeciesTranslated != "Dog" || resp.BreedTranslated != "mixed" {
			t.Fatalf("with-owner: expected passthrough translations, body=%s", string(body))
		}
		if resp.ColorTranslated != "brown" {
			t.Fatalf("with-owner: expected lowercased color, got %q", resp.ColorTranslated)
		}
	}

	// 7) Vista with-pets del owner
	{
		st, body := doReq(t, ts.URL, "GET", "/owners/"+ownerID+"/with-pets", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 with-pets, got %d body=%s", st, string(body))
		}
		var resp struct {
			Owner struct {
				ID string `json:"id"`
			} `json:"owner"`
			Pets []struct {
				ID string `json:"id"`
			} `json:"pets"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Owner.ID != ownerID || len(resp.Pets) != 1 || resp.Pets[0].ID != petID {
			t.Fatalf("with-pets: unexpected body=%s", string(body))
		}
	}

	// 8) PATCH parcial de la mascota
	{
		st, body := doReq(t, ts.URL, "PATCH", "/pets/"+petID, map[string]any{
			"name":   "Milo II",
			"weight": 14.0,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch pet, got %d body=%s", st, string(body))
		}
		var resp struct {
			Name    string  `json:"name"`
			Species string  `json:"species"`
			Weight  float64 `json:"weight"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Name != "Milo II" || resp.Species != "Dog" || resp.Weight != 14.0 {
			t.Fatalf("patch pet: unexpected body=%s", string(body))
		}
	}

	// 9) Baja de la mascota
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/pets/"+petID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete pet, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/pets/"+petID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_Pets_PaginationWindowAndTotal(t *testing.T) {
	ts := newTestServer(t, router.Options{})

	ownerID := createOwner(t, ts.URL, map[string]any{
		"first_name": "Ana",
		"last_name":  "Pérez",
	})

	for i := 0; i < 15; i++ {
		createPet(t, ts.URL, map[string]any{
			"name":       "Pet",
			"species":    "dog",
			"birth_date": "2020-01-01",
			"owner_id":   ownerID,
		})
	}

	// Ventana que pasa el final: devuelve lo que queda, total completo
	{
		st, body := doReq(t, ts.URL, "GET", "/pets?start=10&limit=12", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d body=%s", st, string(body))
		}
		var resp petListPage
		_ = json.Unmarshal(body, &resp)
		if len(resp.Items) != 5 || resp.TotalCount != 15 || resp.Start != 10 || resp.Limit != 12 {
			t.Fatalf("expected 5 items/total 15/start 10/limit 12, body=%s", string(body))
		}
	}

	// Sin parámetros: defaults (start 0, limit 12)
	{
		st, body := doReq(t, ts.URL, "GET", "/pets", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d", st)
		}
		var resp petListPage
		_ = json.Unmarshal(body, &resp)
		if len(resp.Items) != 12 || resp.TotalCount != 15 || resp.Start != 0 || resp.Limit != 12 {
			t.Fatalf("expected defaults start=0 limit=12, body=%s", string(body))
		}
	}

	// Valores inválidos se ignoran; limit gigante se recorta a 100
	{
		st, body := doReq(t, ts.URL, "GET", "/pets?start=abc&limit=500", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d", st)
		}
		var resp petListPage
		_ = json.Unmarshal(body, &resp)
		if resp.Start != 0 || resp.Limit != 100 || len(resp.Items) != 15 {
			t.Fatalf("expected start=0 limit=100, body=%s", string(body))
		}
	}

	// Ventana totalmente fuera de rango: página vacía, total completo
	{
		st, body := doReq(t, ts.URL, "GET", "/pets?start=40", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d", st)
		}
		var resp petListPage
		_ = json.Unmarshal(body, &resp)
		if len(resp.Items) != 0 || resp.TotalCount != 15 {
			t.Fatalf("expected empty page with total 15, body=%s", string(body))
		}
	}
}

func TestHTTP_Pets_SpeciesFilterCaseInsensitive(t *testing.T) {
	ts := newTestServer(t, router.Options{})

	ownerID := createOwner(t, ts.URL, map[string]any{
		"first_name": "Ana",
		"last_name":  "Pérez",
	})

	for _, sp := range []string{"Dog", "dog", "Cat"} {
		createPet(t, ts.URL, map[string]any{
			"name":       "Pet",
			"species":    sp,
			"birth_date": "2020-01-01",
			"owner_id":   ownerID,
		})
	}

	st, body := doReq(t, ts.URL, "GET", "/pets?species=DOG", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list, got %d body=%s", st, string(body))
	}
	var resp petListPage
	_ = json.Unmarshal(body, &resp)
	if resp.TotalCount != 2 || len(resp.Items) != 2 {
		t.Fatalf("expected 2 dogs regardless of case, body=%s", string(body))
	}
	// la especie se devuelve tal como se guardó
	if resp.Items[0].Species != "Dog" || resp.Items[1].Species != "dog" {
		t.Fatalf("expected stored casing in response, body=%s", string(body))
	}
}

func TestHTTP_CreatePet_Validation(t *testing.T) {
	ts := newTestServer(t, router.Options{})

	ownerID := createOwner(t, ts.URL, map[string]any{
		"first_name": "Ana",
		"last_name":  "Pérez",
	})

	// 1) owner inexistente => 404 y no se persiste nada
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets", map[string]any{
			"name":       "Ghost",
			"species":    "dog",
			"birth_date": "2020-01-01",
			"owner_id":   "no-such-owner",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown owner, got %d", st)
		}
		st, body := doReq(t, ts.URL, "GET", "/pets", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d", st)
		}
		var resp petListPage
		_ = json.Unmarshal(body, &resp)
		if resp.TotalCount != 0 {
			t.Fatalf("expected nothing persisted, body=%s", string(body))
		}
	}

	// 2) birth_date con formato inválido => 400
	{
		st, body := doReq(t, ts.URL, "POST", "/pets", map[string]any{
			"name":       "Milo",
			"species":    "dog",
			"birth_date": "15/03/2020",
			"owner_id":   ownerID,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for bad birth_date, got %d body=%s", st, string(body))
		}
	}

	// 3) peso negativo => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets", map[string]any{
			"name":       "Milo",
			"species":    "dog",
			"birth_date": "2020-03-15",
			"weight":     -1,
			"owner_id":   ownerID,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for negative weight, got %d", st)
		}
	}
}

func TestHTTP_OwnerDelete_PlainVersusCascade(t *testing.T) {
	ts := newTestServer(t, router.Options{})

	// 1) Owner A con dos mascotas; baja simple deja las mascotas colgantes
	ownerA := createOwner(t, ts.URL, map[string]any{
		"first_name": "Ana",
		"last_name":  "Pérez",
	})
	petA1 := createPet(t, ts.URL, map[string]any{
		"name":       "Milo",
		"species":    "dog",
		"birth_date": "2020-01-01",
		"owner_id":   ownerA,
	})
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/owners/"+ownerA, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 plain delete, got %d", st)
		}

		// la mascota sigue existiendo
		st, _ = doReq(t, ts.URL, "GET", "/pets/"+petA1, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 pet survives plain delete, got %d", st)
		}

		// pero su vista with-owner ya no resuelve
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petA1+"/with-owner", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 with-owner on dangling owner, got %d body=%s", st, string(body))
		}
	}

	// 2) Owner B con dos mascotas; baja en cascada borra todo y cuenta
	ownerB := createOwner(t, ts.URL, map[string]any{
		"first_name": "Luis",
		"last_name":  "Gómez",
	})
	petB1 := createPet(t, ts.URL, map[string]any{
		"name":       "Rocky",
		"species":    "dog",
		"birth_date": "2021-01-01",
		"owner_id":   ownerB,
	})
	petB2 := createPet(t, ts.URL, map[string]any{
		"name":       "Mishi",
		"species":    "cat",
		"birth_date": "2022-01-01",
		"owner_id":   ownerB,
	})
	{
		st, body := doReq(t, ts.URL, "DELETE", "/owners/"+ownerB+"/with-pets", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 cascade delete, got %d body=%s", st, string(body))
		}
		var resp struct {
			DeletedPets int `json:"deleted_pets"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.DeletedPets != 2 {
			t.Fatalf("expected deleted_pets=2, body=%s", string(body))
		}

		for _, id := range []string{petB1, petB2} {
			st, _ := doReq(t, ts.URL, "GET", "/pets/"+id, nil)
			if st != http.StatusNotFound {
				t.Fatalf("expected 404 pet %s after cascade, got %d", id, st)
			}
		}
		st, _ = doReq(t, ts.URL, "GET", "/owners/"+ownerB, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 owner after cascade, got %d", st)
		}
	}

	// 3) cascada sobre owner inexistente => 404
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/owners/no-such/with-pets", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 cascade on missing owner, got %d", st)
		}
	}
}

func TestHTTP_Stats_EndToEnd(t *testing.T) {
	ts := newTestServer(t, router.Options{})

	// 1) Sin registros: most-common-species y heaviest devuelven result null;
	// oldest devuelve lista vacía
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/stats/most-common-species", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var resp struct {
			Result json.RawMessage `json:"result"`
		}
		_ = json.Unmarshal(body, &resp)
		if string(resp.Result) != "null" {
			t.Fatalf("expected result null on empty registry, body=%s", string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/pets/stats/heaviest", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		_ = json.Unmarshal(body, &resp)
		if string(resp.Result) != "null" {
			t.Fatalf("expected result null on empty registry, body=%s", string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/pets/stats/oldest", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var list []json.RawMessage
		_ = json.Unmarshal(body, &list)
		if len(list) != 0 {
			t.Fatalf("expected empty list, body=%s", string(body))
		}
	}

	// 2) Datos: Ana con dos perros (uno pesado), Luis con un gato
	ana := createOwner(t, ts.URL, map[string]any{
		"first_name": "Ana",
		"last_name":  "Pérez",
	})
	luis := createOwner(t, ts.URL, map[string]any{
		"first_name": "Luis",
		"last_name":  "Gómez",
	})
	createPet(t, ts.URL, map[string]any{
		"name":       "Milo",
		"species":    "dog",
		"birth_date": "2015-01-01",
		"weight":     30.0,
		"owner_id":   ana,
	})
	createPet(t, ts.URL, map[string]any{
		"name":       "Rocky",
		"species":    "dog",
		"birth_date": "2018-01-01",
		"weight":     20.0,
		"owner_id":   ana,
	})
	mishi := createPet(t, ts.URL, map[string]any{
		"name":       "Mishi",
		"species":    "cat",
		"birth_date": "2015-01-01",
		"weight":     4.0,
		"owner_id":   luis,
	})

	// 3) oldest: empate entre Milo y Mishi (misma fecha mínima)
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/stats/oldest", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 oldest, got %d", st)
		}
		var list []struct {
			Name string `json:"name"`
		}
		_ = json.Unmarshal(body, &list)
		if len(list) != 2 {
			t.Fatalf("expected 2 oldest (tie), body=%s", string(body))
		}
	}

	// 4) most-common-species: dog con 2
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/stats/most-common-species", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var resp struct {
			Result []struct {
				Species string `json:"species"`
				Count   int    `json:"count"`
			} `json:"result"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Result) != 1 || resp.Result[0].Species != "dog" || resp.Result[0].Count != 2 {
			t.Fatalf("expected dog x2, body=%s", string(body))
		}
	}

	// 5) heaviest: Milo solo, con el nombre completo de Ana
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/stats/heaviest", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var resp struct {
			Result []struct {
				Name      string  `json:"name"`
				Weight    float64 `json:"weight"`
				OwnerName string  `json:"owner_name"`
			} `json:"result"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Result) != 1 || resp.Result[0].Name != "Milo" || resp.Result[0].OwnerName != "Ana Pérez" {
			t.Fatalf("expected Milo owned by Ana Pérez, body=%s", string(body))
		}
	}

	// 6) top-by-pets: gana Ana con 2
	{
		st, body := doReq(t, ts.URL, "GET", "/owners/stats/top-by-pets", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var list []struct {
			FullName string `json:"full_name"`
			Count    int    `json:"count"`
		}
		_ = json.Unmarshal(body, &list)
		if len(list) != 1 || list[0].FullName != "Ana Pérez" || list[0].Count != 2 {
			t.Fatalf("expected Ana Pérez x2, body=%s", string(body))
		}
	}

	// 7) top-by-species exige el filtro
	{
		st, _ := doReq(t, ts.URL, "GET", "/owners/stats/top-by-species", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 without species, got %d", st)
		}

		st, body := doReq(t, ts.URL, "GET", "/owners/stats/top-by-species?species=CAT", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var list []struct {
			FullName string `json:"full_name"`
			Count    int    `json:"count"`
		}
		_ = json.Unmarshal(body, &list)
		if len(list) != 1 || list[0].FullName != "Luis Gómez" || list[0].Count != 1 {
			t.Fatalf("expected Luis Gómez x1 for cat, body=%s", string(body))
		}
	}

	// 8) heaviest owners: Ana suma 50
	{
		st, body := doReq(t, ts.URL, "GET", "/owners/stats/heaviest", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var list []struct {
			FullName    string  `json:"full_name"`
			TotalWeight float64 `json:"total_weight"`
		}
		_ = json.Unmarshal(body, &list)
		if len(list) != 1 || list[0].FullName != "Ana Pérez" || list[0].TotalWeight != 50.0 {
			t.Fatalf("expected Ana Pérez with 50.0, body=%s", string(body))
		}
	}

	// 9) Reasignar el gato de Luis a Ana: los agregados por dueño se
	// recalculan con el dato nuevo
	{
		st, body := doReq(t, ts.URL, "PATCH", "/pets/"+mishi, map[string]any{
			"owner_id": ana,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 reassign, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", "/owners/stats/top-by-pets", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var list []struct {
			FullName string `json:"full_name"`
			Count    int    `json:"count"`
		}
		_ = json.Unmarshal(body, &list)
		if len(list) != 1 || list[0].FullName != "Ana Pérez" || list[0].Count != 3 {
			t.Fatalf("expected Ana Pérez x3 after reassignment, body=%s", string(body))
		}
	}
}

// prefixTranslator traduce anteponiendo "de:"; sirve para distinguir campos
// traducidos de los originales sin salir a la red.
type prefixTranslator struct{}

func (prefixTranslator) Translate(_ context.Context, text, _, _ string) (string, error) {
	return "de:" + text, nil
}

func TestHTTP_WithOwner_TranslatedFields(t *testing.T) {
	ts := newTestServer(t, router.Options{Translator: prefixTranslator{}})

	ownerID := createOwner(t, ts.URL, map[string]any{
		"first_name": "Ana",
		"last_name":  "Pérez",
	})
	petID := createPet(t, ts.URL, map[string]any{
		"name":       "Milo",
		"species":    "Dog",
		"breed":      "mixed",
		"color":      "Brown",
		"birth_date": "2020-03-15",
		"owner_id":   ownerID,
	})

	st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/with-owner", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 with-owner, got %d body=%s", st, string(body))
	}
	var resp struct {
		Species           string `json:"species"`
		SpeciesTranslated string `json:"species_translated"`
		BreedTranslated   string `json:"breed_translated"`
		ColorTranslated   string `json:"color_translated"`
	}
	_ = json.Unmarshal(body, &resp)

	// los campos base no se tocan
	if resp.Species != "Dog" {
		t.Fatalf("expected stored species untouched, body=%s", string(body))
	}
	if resp.SpeciesTranslated != "de:Dog" || resp.BreedTranslated != "de:mixed" {
		t.Fatalf("expected translated fields, body=%s", string(body))
	}
	// el color se normaliza a minúsculas antes de traducir
	if resp.ColorTranslated != "de:brown" {
		t.Fatalf("expected lowercased color before translation, got %q", resp.ColorTranslated)
	}
}

func TestHTTP_Owners_ListPagination(t *testing.T) {
	ts := newTestServer(t, router.Options{})

	for i := 0; i < 5; i++ {
		createOwner(t, ts.URL, map[string]any{
			"first_name": "Owner",
			"last_name":  "Número",
		})
	}

	st, body := doReq(t, ts.URL, "GET", "/owners?start=3&limit=2", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list owners, got %d body=%s", st, string(body))
	}
	var resp struct {
		Items      []json.RawMessage `json:"items"`
		TotalCount int               `json:"total_count"`
		Start      int               `json:"start"`
		Limit      int               `json:"limit"`
	}
	_ = json.Unmarshal(body, &resp)
	if len(resp.Items) != 2 || resp.TotalCount != 5 || resp.Start != 3 || resp.Limit != 2 {
		t.Fatalf("expected 2 items/total 5, body=%s", string(body))
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := newTestServer(t, router.Options{})

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d body=%s", st, string(body))
	}
}

// petListPage es la forma del envelope de listado que devuelve la API.
type petListPage struct {
	Items []struct {
		ID      string `json:"id"`
		Species string `json:"species"`
	} `json:"items"`
	TotalCount int `json:"total_count"`
	Start      int `json:"start"`
	Limit      int `json:"limit"`
}

func createOwner(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/owners", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create owner, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create owner: missing id body=%s", string(body))
	}
	return resp.ID
}

func createPet(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
