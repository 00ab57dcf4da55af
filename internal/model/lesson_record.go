package model

import "time"

// DateLayout is the ISO 8601 calendar date format used in the output table.
const DateLayout = "2006-01-02"

// Date is a calendar day serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (d Date) MarshalCSV() (string, error) {
	return d.Format(DateLayout), nil
}

// LessonRecord is one output row: a (school, class, day) with its lesson count.
type LessonRecord struct {
	SchoolID      int        `csv:"escola_id"`
	SchoolName    string     `csv:"escola_nome"`
	Region        string     `csv:"regional"`
	Municipality  string     `csv:"municipio"`
	Class         ClassLabel `csv:"turma"`
	Date          Date       `csv:"data"`
	SchoolDay     int        `csv:"dia_letivo"`
	LessonsTaught int        `csv:"aulas_dadas"`
}
