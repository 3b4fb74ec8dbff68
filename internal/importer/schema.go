package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/horarios/internal/domain"
)

// Sheet column names.
const (
	ColCode       = "codigo"
	ColCourseName = "disciplina"
	ColSection    = "turma"
	ColInstructor = "professor"
	ColSemester   = "semestre"
	ColCredits    = "creditos"
	ColDepartment = "departamento"
	ColCampus     = "campus"
	ColStudents   = "alunos"
)

// SlotColumn returns the "horario N" column name for 1-based slot i.
func SlotColumn(i int) string {
	return fmt.Sprintf("horario %d", i)
}

// RoomColumn returns the "sala N" column name for 1-based slot i.
func RoomColumn(i int) string {
	return fmt.Sprintf("sala %d", i)
}

// RequiredColumns are the columns without which no row can reach a view.
var RequiredColumns = []string{ColCode, ColCourseName, ColSemester, SlotColumn(1)}

// KnownColumns lists every column the importer reads.
func KnownColumns() []string {
	cols := []string{
		ColCode, ColCourseName, ColSection, ColInstructor, ColSemester,
		ColCredits, ColDepartment, ColCampus, ColStudents,
	}
	for i := 1; i <= domain.MaxSlots; i++ {
		cols = append(cols, SlotColumn(i), RoomColumn(i))
	}
	return cols
}

// Record is a raw sheet row with normalised column names.
type Record map[string]string

// NormalizeRecord lower-cases and trims column names, collapses inner
// whitespace ("Horario  1" → "horario 1") and clears null placeholders
// such as "nan" or "None".
func NormalizeRecord(raw map[string]string) Record {
	rec := make(Record, len(raw))
	for k, v := range raw {
		key := NormalizeColumn(k)
		if key == "" {
			continue
		}
		if domain.IsBlank(v) {
			v = ""
		}
		rec[key] = strings.TrimSpace(v)
	}
	return rec
}

// NormalizeColumn canonicalises a header cell.
func NormalizeColumn(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Get returns the value of column, or "" when absent.
func (r Record) Get(column string) string {
	return r[column]
}
