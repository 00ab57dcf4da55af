package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/saar-edu/aulas-dadas/internal/config"
	"github.com/saar-edu/aulas-dadas/internal/logger"
	"github.com/saar-edu/aulas-dadas/internal/repository"
	"github.com/saar-edu/aulas-dadas/internal/service"
	"github.com/spf13/afero"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat).
		With().
		Str("run_id", uuid.NewString()).
		Logger()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// ─── Initialize Service ────────────────────────────────────────────
	fsys := afero.NewOsFs()
	schoolRepo := repository.NewSchoolRepository(fsys, cfg.SchoolsPath)
	lessonRepo := repository.NewLessonRepository(fsys, cfg.OutputPaths)
	lessonService := service.NewLessonService(schoolRepo, lessonRepo, service.NewRand(uint64(cfg.RandomSeed)), log)

	log.Info().
		Str("schools_path", schoolRepo.Path()).
		Strs("output_paths", lessonRepo.Paths()).
		Int("year", cfg.AcademicYear).
		Ints("months", cfg.AcademicMonths).
		Msg("Generating lessons taught")

	// ─── Logic ─────────────────────────────────────────────────────────
	summary, err := lessonService.Run(ctx, service.Window{
		Year:   cfg.AcademicYear,
		Months: cfg.AcademicMonths,
	})
	if err != nil {
		stop()
		withErrorLocation(log.Fatal().Err(err), err).Msg("Failed to generate lessons")
	}

	for _, path := range lessonRepo.Paths() {
		fmt.Printf("✓ File written: %s\n", path)
	}
	fmt.Printf("\nSchools: %d\nClasses: %d\nBusiness days: %d\nRecords: %d\n",
		summary.Schools, summary.Classes, summary.Days, summary.Records)
}

// withErrorLocation adds the failing file, and for catalog errors the row and
// column, to event.
func withErrorLocation(event *zerolog.Event, err error) *zerolog.Event {
	var parseErr *repository.ParseError
	var colErr *repository.MissingColumnError
	var writeErr *repository.WriteError
	switch {
	case errors.As(err, &parseErr):
		return event.Str("file", parseErr.Path).Int("row", parseErr.Row).Str("column", parseErr.Column)
	case errors.As(err, &colErr):
		return event.Str("file", colErr.Path).Str("column", colErr.Column)
	case errors.As(err, &writeErr):
		return event.Str("file", writeErr.Path)
	}
	return event
}
