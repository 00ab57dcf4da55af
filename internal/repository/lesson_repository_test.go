package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/saar-edu/aulas-dadas/internal/model"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "escola_id,escola_nome,regional,municipio,turma,data,dia_letivo,aulas_dadas"

func sampleRecords() []model.LessonRecord {
	day := time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC)
	return []model.LessonRecord{
		{SchoolID: 1, SchoolName: "Escola A", Region: "Y", Municipality: "X", Class: model.FirstGrade, Date: model.Date{Time: day}, SchoolDay: 1, LessonsTaught: 5},
		{SchoolID: 1, SchoolName: "Escola A", Region: "Y", Municipality: "X", Class: model.FirstGrade, Date: model.Date{Time: day.AddDate(0, 0, 1)}, SchoolDay: 2, LessonsTaught: 4},
		{SchoolID: 2, SchoolName: "Escola B, Anexo", Region: "Y", Municipality: "X", Class: model.SecondGrade, Date: model.Date{Time: day}, SchoolDay: 1, LessonsTaught: 6},
	}
}

func TestEncode(t *testing.T) {
	data, err := Encode(sampleRecords())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, header, lines[0])
	assert.Equal(t, "1,Escola A,Y,X,1st Grade,2025-02-03,1,5", lines[1])
	assert.Equal(t, "1,Escola A,Y,X,1st Grade,2025-02-04,2,4", lines[2])
	assert.Equal(t, `2,"Escola B, Anexo",Y,X,2nd Grade,2025-02-03,1,6`, lines[3])
}

func TestLessonRepositorySave(t *testing.T) {
	fsys := afero.NewMemMapFs()
	paths := []string{"/base/public/aulas-dadas.csv", "/base/data/aulas-dadas.csv"}
	repo := NewLessonRepository(fsys, paths)

	require.NoError(t, repo.Save(context.Background(), sampleRecords()))

	public, err := afero.ReadFile(fsys, paths[0])
	require.NoError(t, err)
	data, err := afero.ReadFile(fsys, paths[1])
	require.NoError(t, err)

	assert.Equal(t, public, data)
	assert.True(t, strings.HasPrefix(string(public), header+"\n"))

	for _, dir := range []string{"/base/public", "/base/data"} {
		entries, err := afero.ReadDir(fsys, dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temp file left behind in %s", dir)
	}
}

func TestLessonRepositorySaveOverwrites(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/out/aulas-dadas.csv", "stale content that is longer than the new table would ever be\n")
	repo := NewLessonRepository(fsys, []string{"/out/aulas-dadas.csv"})

	require.NoError(t, repo.Save(context.Background(), sampleRecords()[:1]))

	got, err := afero.ReadFile(fsys, "/out/aulas-dadas.csv")
	require.NoError(t, err)
	assert.Equal(t, header+"\n1,Escola A,Y,X,1st Grade,2025-02-03,1,5\n", string(got))
}

func TestLessonRepositorySaveFailureKeepsDestination(t *testing.T) {
	base := afero.NewMemMapFs()
	writeFile(t, base, "/out/aulas-dadas.csv", "previous\n")
	repo := NewLessonRepository(afero.NewReadOnlyFs(base), []string{"/out/aulas-dadas.csv"})

	err := repo.Save(context.Background(), sampleRecords())

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, "/out/aulas-dadas.csv", writeErr.Path)

	got, readErr := afero.ReadFile(base, "/out/aulas-dadas.csv")
	require.NoError(t, readErr)
	assert.Equal(t, "previous\n", string(got))
}
