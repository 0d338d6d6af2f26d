// Package queries composes the table operators into the demo queries the
// engine exists to answer. Nothing here touches engine internals; it is
// ordinary composition of scans, joins and projections.
package queries

import (
	"fmt"

	"gradedb/internal/domain/value"
	"gradedb/internal/engine"
)

// TopStudents returns the distinct names of students who scored maxGrade or
// better (lower is better) in any exam.
func TopStudents(students, exams *engine.Table, maxGrade float64) (*engine.Table, error) {
	joined, err := students.NaturalJoin(exams)
	if err != nil {
		return nil, err
	}
	top, err := joined.FilterRangeByScan("grade", value.Float(1.0), value.Float(maxGrade))
	if err != nil {
		return nil, err
	}
	names, err := top.Project([]string{"name"})
	if err != nil {
		return nil, err
	}
	return names.Distinct(), nil
}

// EarlyBirds returns the distinct names of students in semester maxSemester
// or below.
func EarlyBirds(students *engine.Table, maxSemester int64) (*engine.Table, error) {
	early, err := students.FilterRangeByScan("semester", value.Int(1), value.Int(maxSemester))
	if err != nil {
		return nil, err
	}
	names, err := early.Project([]string{"name"})
	if err != nil {
		return nil, err
	}
	return names.Distinct(), nil
}

// SubjectAverage computes the mean grade of one subject. When the exams
// table carries an index on subject it answers through the index, otherwise
// by scan.
func SubjectAverage(exams *engine.Table, subject string) (float64, error) {
	key := value.Text(subject)

	var matching *engine.Table
	var err error
	if _, ok := exams.Index("subject"); ok {
		matching, err = exams.FilterByIndex("subject", key)
	} else {
		matching, err = exams.FilterByScan("subject", key)
	}
	if err != nil {
		return 0, err
	}
	if matching.NumRecords() == 0 {
		return 0, fmt.Errorf("no exams recorded for subject %q", subject)
	}

	sum := 0.0
	for _, row := range matching.Records {
		grade, ok := row["grade"].AsFloat()
		if !ok {
			return 0, fmt.Errorf("exam row has non-numeric grade %v", row["grade"])
		}
		sum += grade
	}
	return sum / float64(matching.NumRecords()), nil
}
