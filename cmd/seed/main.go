package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"go-clinic-management/cmd/bootstrap"
	"go-clinic-management/config"
	"go-clinic-management/internal/infrastructure/database"
	"go-clinic-management/internal/repository"
	"go-clinic-management/internal/seed"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"
)

func main() {
	extra := flag.Int("extra", 0, "number of generated patients and doctors to add")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := bootstrap.NewLogger(cfg.App.LogLevel)

	if err := run(cfg, log, *extra); err != nil {
		log.Fatal(err)
	}
}

// run owns the database connection so it is closed on every return path.
func run(cfg *config.Config, log *logrus.Logger, extra int) error {
	db, err := database.NewPostgresConnection(cfg.DB, cfg.IsProduction())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := database.Migrate(db, log); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	seeder := seed.NewSeeder(
		db,
		log,
		gofakeit.New(uint64(time.Now().UnixNano())),
		repository.NewPatientRepository(),
		repository.NewDoctorRepository(),
		repository.NewAppointmentRepository(),
	)
	if err := seeder.Run(ctx, extra); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	return nil
}
