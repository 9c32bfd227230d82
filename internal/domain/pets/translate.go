package pets

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"pet-registry/internal/ports/translation"
)

// TranslatedFields son los tres campos derivados de la vista with-owner.
// Siempre vienen poblados: si la traducción falla o no está configurada,
// traen el texto original (el color, ya en minúsculas).
type TranslatedFields struct {
	Species string
	Breed   string
	Color   string
}

// WithTranslation habilita el enriquecimiento de la vista with-owner.
// source/target son códigos de idioma (en, de, ...).
func (s *Service) WithTranslation(tr translation.Translator, source, target string) {
	s.translator = tr
	s.trSource = source
	s.trTarget = target
}

// translateFields traduce species, breed y color. Las tres llamadas salen
// en paralelo y el request espera a que terminen todas. Ningún fallo de
// traducción voltea el request: cada campo cae a su texto original.
func (s *Service) translateFields(ctx context.Context, p Pet) TranslatedFields {
	// El color se normaliza a minúsculas antes de traducir; species y breed
	// van tal como están guardados.
	out := TranslatedFields{
		Species: p.Species,
		Breed:   p.Breed,
		Color:   strings.ToLower(p.Color),
	}

	if s.translator == nil {
		return out
	}

	var g errgroup.Group
	g.Go(func() error {
		out.Species = s.translateOr(ctx, out.Species)
		return nil
	})
	g.Go(func() error {
		out.Breed = s.translateOr(ctx, out.Breed)
		return nil
	})
	g.Go(func() error {
		out.Color = s.translateOr(ctx, out.Color)
		return nil
	})
	_ = g.Wait()

	return out
}

// translateOr devuelve la traducción de text, o text si el campo está vacío,
// la llamada falla o el upstream devuelve vacío.
func (s *Service) translateOr(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	translated, err := s.translator.Translate(ctx, text, s.trSource, s.trTarget)
	if err != nil || strings.TrimSpace(translated) == "" {
		return text
	}
	return translated
}
