package model

// ClassLabel names a grade a school offers.
type ClassLabel string

const (
	FirstGrade  ClassLabel = "1st Grade"
	SecondGrade ClassLabel = "2nd Grade"
	ThirdGrade  ClassLabel = "3rd Grade"
	FourthGrade ClassLabel = "4th Grade"
	FifthGrade  ClassLabel = "5th Grade"
)

// PrimaryGrades returns the classes of a school offering primary education,
// in enumeration order. A fresh slice is returned on every call.
func PrimaryGrades() []ClassLabel {
	return []ClassLabel{FirstGrade, SecondGrade, ThirdGrade, FourthGrade, FifthGrade}
}

// School is one catalog entry. Only schools with at least one class are kept.
type School struct {
	ID           int          `json:"id"`
	Name         string       `json:"nome"`
	Municipality string       `json:"municipio"`
	Region       string       `json:"regional"`
	Classes      []ClassLabel `json:"turmas"`
}
