package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/saar-edu/aulas-dadas/internal/validator"
)

// Config holds all generator configuration.
type Config struct {
	LogLevel  string
	LogFormat string
	BaseDir   string

	// SchoolsPath is the catalog source, either .csv or .xlsx.
	SchoolsPath string `validate:"required"`
	// OutputPaths receive byte-identical copies of the generated table.
	OutputPaths []string `validate:"required,min=1,dive,required"`

	AcademicYear   int   `validate:"gte=1,lte=9999"`
	AcademicMonths []int `validate:"required,min=1,dive,gte=1,lte=12"`

	// RandomSeed of 0 means a non-deterministic source.
	RandomSeed int64 `validate:"gte=0"`
}

// Load reads configuration from environment variables with defaults matching
// the original project layout (<base>/public and <base>/data).
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load()

	base := getEnv("BASE_DIR", ".")

	return &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "auto"),
		BaseDir:     base,
		SchoolsPath: getEnv("SCHOOLS_PATH", filepath.Join(base, "public", "escolas.csv")),
		OutputPaths: parseList(getEnv("OUTPUT_PATHS", strings.Join([]string{
			filepath.Join(base, "public", "aulas-dadas.csv"),
			filepath.Join(base, "data", "aulas-dadas.csv"),
		}, ","))),
		AcademicYear:   getEnvStrictInt("ACADEMIC_YEAR", 2025),
		AcademicMonths: parseInts(getEnv("ACADEMIC_MONTHS", "2,3,4")),
		RandomSeed:     int64(getEnvStrictInt("RANDOM_SEED", 0)),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvStrictInt returns fallback only when key is unset. A value that does
// not parse becomes -1 so validation rejects it.
func getEnvStrictInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return -1
	}
	return n
}

// parseList splits a comma-separated string into a trimmed slice.
func parseList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// parseInts is parseList for integers. Entries that do not parse become 0
// so validation reports them instead of silently shrinking the window.
func parseInts(raw string) []int {
	parts := parseList(raw)
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			n = 0
		}
		out = append(out, n)
	}
	return out
}

// Validate checks the loaded values before any file is touched.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
