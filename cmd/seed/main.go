// seed aplica el esquema inicial y carga datos de desarrollo: un usuario
// admin (admin@local / admin123) y un par de equipos de ejemplo.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/infrastructure/postgres"
	"github.com/jhoicas/estoque-api/pkg/config"
	"github.com/jhoicas/estoque-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	schema, err := os.ReadFile(filepath.Join("internal", "infrastructure", "postgres", "migrations", "001_init.sql"))
	if err != nil {
		log.Fatal().Err(err).Msg("leer esquema")
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}
	log.Info().Msg("esquema aplicado")

	userRepo := postgres.NewUserRepository(pool)
	existing, err := userRepo.GetByEmail("admin@local")
	if err != nil {
		log.Fatal().Err(err).Msg("buscar admin")
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear password")
		}
		now := time.Now()
		admin := &entity.User{
			ID:           uuid.New().String(),
			Name:         "Administrador",
			Email:        "admin@local",
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(admin); err != nil {
			log.Fatal().Err(err).Msg("crear admin")
		}
		log.Info().Str("email", admin.Email).Msg("admin creado")
	}

	equipmentRepo := postgres.NewEquipmentRepository(pool)
	list, err := equipmentRepo.List()
	if err != nil {
		log.Fatal().Err(err).Msg("listar equipos")
	}
	if len(list) == 0 {
		now := time.Now()
		demo := []*entity.Equipment{
			{ID: uuid.New().String(), Name: "Notebook Dell", Description: "Latitude 5440", Quantity: 10, CreatedAt: now, UpdatedAt: now},
			{ID: uuid.New().String(), Name: "Monitor LG 24\"", Description: "Full HD", Quantity: 15, CreatedAt: now, UpdatedAt: now},
		}
		for _, e := range demo {
			if err := equipmentRepo.Create(e); err != nil {
				log.Fatal().Err(err).Str("name", e.Name).Msg("crear equipo")
			}
		}
		log.Info().Int("count", len(demo)).Msg("equipos de ejemplo creados")
	}

	log.Info().Msg("seed completado")
}
