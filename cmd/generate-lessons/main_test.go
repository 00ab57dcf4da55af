package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/saar-edu/aulas-dadas/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logFailure(t *testing.T, err error) map[string]interface{} {
	t.Helper()
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	withErrorLocation(log.Error().Err(err), err).Msg("Failed to generate lessons")

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	return event
}

func TestWithErrorLocation(t *testing.T) {
	t.Run("parse error", func(t *testing.T) {
		err := fmt.Errorf("load schools: %w", &repository.ParseError{
			Path: "public/escolas.csv", Row: 7, Column: "id", Value: "abc", Err: errors.New("invalid syntax"),
		})
		event := logFailure(t, err)

		assert.Equal(t, "public/escolas.csv", event["file"])
		assert.Equal(t, float64(7), event["row"])
		assert.Equal(t, "id", event["column"])
		assert.Contains(t, event["error"], "row 7")
	})

	t.Run("missing column", func(t *testing.T) {
		err := fmt.Errorf("load schools: %w", &repository.MissingColumnError{Path: "escolas.csv", Column: "regional"})
		event := logFailure(t, err)

		assert.Equal(t, "escolas.csv", event["file"])
		assert.Equal(t, "regional", event["column"])
		assert.NotContains(t, event, "row")
	})

	t.Run("write error", func(t *testing.T) {
		err := fmt.Errorf("save lessons: %w", &repository.WriteError{Path: "data/aulas-dadas.csv", Err: errors.New("permission denied")})
		event := logFailure(t, err)

		assert.Equal(t, "data/aulas-dadas.csv", event["file"])
		assert.NotContains(t, event, "column")
	})

	t.Run("source not found", func(t *testing.T) {
		err := fmt.Errorf("load schools: %w: public/escolas.csv", repository.ErrSourceNotFound)
		event := logFailure(t, err)

		assert.NotContains(t, event, "file")
		assert.Contains(t, event["error"], "public/escolas.csv")
	})
}
