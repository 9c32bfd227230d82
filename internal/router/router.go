package router

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-registry/docs"
	mem "pet-registry/internal/adapters/storage/memory"
	pg "pet-registry/internal/adapters/storage/postgres"
	"pet-registry/internal/adapters/storage/sqlite"
	"pet-registry/internal/adapters/translation/libretranslate"
	"pet-registry/internal/domain/owners"
	"pet-registry/internal/domain/pets"
	"pet-registry/internal/domain/stats"
	"pet-registry/internal/middleware"
	"pet-registry/internal/platform/config"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/ports/translation"
)

type Options struct {
	// Cfg puede venir nil; en ese caso se carga de env.
	Cfg *config.Config

	// Opcional: conexión Postgres ya abierta. Si no viene, el backend se
	// resuelve por config: DB_DSN => Postgres, SQLITE_PATH => sqlite
	// embebido, nada => in-memory.
	DB *sql.DB

	Log logger.Logger

	// Opcional: reemplaza al cliente LibreTranslate (lo usan los tests).
	Translator translation.Translator
}

func NewRouter(opts Options) http.Handler {
	cfg := opts.Cfg
	if cfg == nil {
		cfg = config.Load()
	}
	log := opts.Log

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	var (
		petRepo   pets.Repository
		ownerRepo owners.Repository
	)

	// Si el backend configurado no abre, el servicio levanta igual en
	// memoria (modo dev/handoff) y queda el warn en el log.
	switch {
	case opts.DB != nil:
		petRepo = pg.NewPetsRepo(opts.DB)
		ownerRepo = pg.NewOwnersRepo(opts.DB)

	case cfg.DBDSN != "":
		if db, err := pg.Open(cfg.DBDSN); err == nil {
			petRepo = pg.NewPetsRepo(db)
			ownerRepo = pg.NewOwnersRepo(db)
		} else {
			warnFallback(log, "postgres", err)
			petRepo = mem.NewPetRepo()
			ownerRepo = mem.NewOwnerRepo()
		}

	case cfg.SQLitePath != "":
		if db, err := sqlite.Open(cfg.SQLitePath); err == nil {
			petRepo = sqlite.NewPetsRepo(db)
			ownerRepo = sqlite.NewOwnersRepo(db)
		} else {
			warnFallback(log, "sqlite", err)
			petRepo = mem.NewPetRepo()
			ownerRepo = mem.NewOwnerRepo()
		}

	default:
		petRepo = mem.NewPetRepo()
		ownerRepo = mem.NewOwnerRepo()
	}

	// Services por módulo. owners necesita el repo de pets para la baja en
	// cascada; pets necesita el service de owners para validar existencia.
	ownersSvc := owners.NewService(ownerRepo, petRepo)
	petsSvc := pets.NewService(petRepo, ownersSvc)
	statsSvc := stats.NewService(petRepo, ownerRepo)

	// Traducción: la inyectada (tests), o cliente LibreTranslate si hay URL.
	tr := opts.Translator
	if tr == nil && cfg.TranslateURL != "" {
		client := libretranslate.NewClient(libretranslate.Config{
			BaseURL: cfg.TranslateURL,
			APIKey:  cfg.TranslateAPIKey,
		})
		if client.IsConfigured() {
			tr = client
		}
	}
	if tr != nil {
		petsSvc.WithTranslation(tr, cfg.TranslateSource, cfg.TranslateTarget)
	}

	// Rutas por módulo
	owners.RegisterRoutes(r, ownersSvc)
	pets.RegisterRoutes(r, petsSvc, ownersSvc)
	stats.RegisterRoutes(r, statsSvc)

	return r
}

func warnFallback(log logger.Logger, backend string, err error) {
	if log == nil {
		return
	}
	log.Warn("storage backend unavailable, using in-memory", map[string]any{
		"backend": backend,
		"error":   err.Error(),
	})
}
