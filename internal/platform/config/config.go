package config

import (
	"os"
	"strings"
)

// Config concentra toda la configuración por env vars.
// Defaults pensados para levantar el servicio en dev sin configurar nada:
// sin DB_DSN ni SQLITE_PATH se usa almacenamiento en memoria, y sin
// TRANSLATE_URL el enriquecimiento de traducción queda deshabilitado.
type Config struct {
	Addr    string
	AppName string

	// Almacenamiento: si DBDSN viene, Postgres. Si no y SQLitePath viene,
	// SQLite embebido. Si ninguno, in-memory.
	DBDSN      string
	SQLitePath string

	LogLevel  string
	LogFormat string

	// Colaborador de traducción (compatible LibreTranslate).
	TranslateURL    string
	TranslateAPIKey string
	TranslateSource string
	TranslateTarget string
}

func Load() *Config {
	return &Config{
		Addr:            listenAddr(),
		AppName:         getEnv("APP_NAME", "pet-registry"),
		DBDSN:           getEnv("DB_DSN", ""),
		SQLitePath:      getEnv("SQLITE_PATH", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		TranslateURL:    getEnv("TRANSLATE_URL", ""),
		TranslateAPIKey: getEnv("TRANSLATE_API_KEY", ""),
		TranslateSource: getEnv("TRANSLATE_SOURCE", "en"),
		TranslateTarget: getEnv("TRANSLATE_TARGET", "de"),
	}
}

// listenAddr acepta PORT=8080 o PORT=:8080 (ambos terminan en ":8080").
func listenAddr() string {
	v := strings.TrimSpace(os.Getenv("PORT"))
	if v == "" {
		return ":8080"
	}
	if strings.HasPrefix(v, ":") {
		return v
	}
	return ":" + v
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
