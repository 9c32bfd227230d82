package translation

import "context"

// Translator traduce un texto corto entre dos códigos de idioma.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}
