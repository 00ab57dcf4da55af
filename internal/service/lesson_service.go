package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/saar-edu/aulas-dadas/internal/calendar"
	"github.com/saar-edu/aulas-dadas/internal/model"
)

// Lessons taught per day are drawn uniformly from [MinLessons, MaxLessons].
const (
	MinLessons = 4
	MaxLessons = 6
)

// progressEvery controls how often schools processed are reported.
const progressEvery = 5

// SchoolSource yields the schools catalog.
type SchoolSource interface {
	Load(ctx context.Context) ([]model.School, error)
}

// LessonSink persists the generated table.
type LessonSink interface {
	Save(ctx context.Context, records []model.LessonRecord) error
}

// Window is the academic calendar a run covers.
type Window struct {
	Year   int
	Months []int
}

// Summary describes a completed run.
type Summary struct {
	Schools      int
	Classes      int
	Days         int
	DaysPerMonth map[time.Month]int
	Records      int
}

// LessonService generates lessons-taught records.
type LessonService struct {
	schools SchoolSource
	lessons LessonSink
	rnd     Rand
	log     zerolog.Logger
}

// NewLessonService creates a new LessonService.
func NewLessonService(schools SchoolSource, lessons LessonSink, rnd Rand, log zerolog.Logger) *LessonService {
	return &LessonService{
		schools: schools,
		lessons: lessons,
		rnd:     rnd,
		log:     log.With().Str("component", "lesson_service").Logger(),
	}
}

// Generate expands schools × classes × days into records. dia_letivo restarts
// at 1 for every class and advances once per day.
func (s *LessonService) Generate(schools []model.School, days []time.Time) []model.LessonRecord {
	total := 0
	for _, school := range schools {
		total += len(school.Classes) * len(days)
	}
	records := make([]model.LessonRecord, 0, total)

	for i, school := range schools {
		for _, class := range school.Classes {
			for n, day := range days {
				records = append(records, model.LessonRecord{
					SchoolID:      school.ID,
					SchoolName:    school.Name,
					Region:        school.Region,
					Municipality:  school.Municipality,
					Class:         class,
					Date:          model.Date{Time: day},
					SchoolDay:     n + 1,
					LessonsTaught: MinLessons + s.rnd.IntN(MaxLessons-MinLessons+1),
				})
			}
		}

		if (i+1)%progressEvery == 0 {
			s.log.Debug().Int("processed", i+1).Int("total", len(schools)).Msg("Schools processed")
		}
	}
	return records
}

// Run loads the catalog, generates the records for window and saves them.
func (s *LessonService) Run(ctx context.Context, window Window) (*Summary, error) {
	schools, err := s.schools.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load schools: %w", err)
	}
	s.log.Info().Int("schools", len(schools)).Msg("Schools loaded")

	days := calendar.Window(window.Year, window.Months...)
	perMonth := make(map[time.Month]int, len(window.Months))
	for _, day := range days {
		perMonth[day.Month()]++
	}
	for _, m := range window.Months {
		s.log.Info().Str("month", time.Month(m).String()).Int("days", perMonth[time.Month(m)]).Msg("Business days")
	}
	s.log.Info().Int("days", len(days)).Msg("Academic window expanded")

	records := s.Generate(schools, days)

	classes := 0
	for _, school := range schools {
		classes += len(school.Classes)
	}

	if err := s.lessons.Save(ctx, records); err != nil {
		return nil, fmt.Errorf("save lessons: %w", err)
	}

	summary := &Summary{
		Schools:      len(schools),
		Classes:      classes,
		Days:         len(days),
		DaysPerMonth: perMonth,
		Records:      len(records),
	}
	s.log.Info().
		Int("schools", summary.Schools).
		Int("classes", summary.Classes).
		Int("records", summary.Records).
		Msg("Lessons generated")
	return summary, nil
}
