package domain

import "fmt"

// BucketKind names the term view a row belongs to.
type BucketKind int

const (
	BucketDiscarded BucketKind = iota
	BucketOddSemester
	BucketReoffering
	BucketElective
)

// ElectiveSemester is the sentinel semester number used for electives.
const ElectiveSemester = 88

func (k BucketKind) String() string {
	switch k {
	case BucketOddSemester:
		return "odd_semester"
	case BucketReoffering:
		return "reoffering"
	case BucketElective:
		return "elective"
	default:
		return "discarded"
	}
}

// BucketKey identifies a term view. Semester is only set for odd semesters.
type BucketKey struct {
	Kind     BucketKind
	Semester int
}

// BucketFor places a semester number into its term view.
func BucketFor(semester *int) BucketKey {
	if semester == nil {
		return BucketKey{Kind: BucketDiscarded}
	}
	n := *semester
	switch {
	case n < 10 && n%2 != 0:
		return BucketKey{Kind: BucketOddSemester, Semester: n}
	case n < 10:
		return BucketKey{Kind: BucketReoffering}
	case n == ElectiveSemester:
		return BucketKey{Kind: BucketElective}
	default:
		return BucketKey{Kind: BucketDiscarded}
	}
}

// Title is the section header shown above the bucket's tables.
func (k BucketKey) Title() string {
	switch k.Kind {
	case BucketOddSemester:
		return fmt.Sprintf("%dº semestre", k.Semester)
	case BucketReoffering:
		return "Reofertas"
	case BucketElective:
		return "Optativas"
	default:
		return "Descartadas"
	}
}

// Less orders buckets for output: odd semesters ascending, then
// re-offerings, then electives.
func (k BucketKey) Less(other BucketKey) bool {
	if k.Kind != other.Kind {
		return k.Kind < other.Kind
	}
	return k.Semester < other.Semester
}
