package engine_test

import (
	"testing"

	"gradedb/internal/domain/data"
	"gradedb/internal/domain/value"
	"gradedb/internal/engine"
	"gradedb/internal/index"
	"gradedb/internal/testutil"
)

func TestFilterByScan_ExactEquality(t *testing.T) {
	exams := testutil.CreateExamsTable()

	result, err := exams.FilterByScan("subject", value.Text("Software Design"))
	if err != nil {
		t.Fatalf("FilterByScan failed: %v", err)
	}
	if got := result.NumRecords(); got != 2 {
		t.Fatalf("matches = %d, want 2", got)
	}
	for i, row := range result.Records {
		if row["subject"].Text() != "Software Design" {
			t.Errorf("row %d subject = %q", i, row["subject"].Text())
		}
	}

	none, err := exams.FilterByScan("subject", value.Text("Compilers"))
	if err != nil {
		t.Fatalf("FilterByScan failed: %v", err)
	}
	if got := none.NumRecords(); got != 0 {
		t.Errorf("matches for absent subject = %d, want 0", got)
	}
}

func TestFilterByScan_WrongKind(t *testing.T) {
	exams := testutil.CreateExamsTable()
	if _, err := exams.FilterByScan("subject", value.Int(1)); err == nil {
		t.Error("expected type mismatch error")
	}
}

// TestFilterRangeByScan_Grades is the range scenario: grades {1.7, 4.0, 4.5}
// filtered to [0.0, 4.1] keep exactly 1.7 and 4.0.
func TestFilterRangeByScan_Grades(t *testing.T) {
	exams := engine.NewTable("exams", testutil.ExamsSchema())
	for i, grade := range []float64{1.7, 4.0, 4.5} {
		_, err := exams.Insert(data.Row{
			"matno":   value.Int(int64(100 + i)),
			"subject": value.Text("DSEA"),
			"grade":   value.Float(grade),
		})
		if err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	result, err := exams.FilterRangeByScan("grade", value.Float(0.0), value.Float(4.1))
	if err != nil {
		t.Fatalf("FilterRangeByScan failed: %v", err)
	}
	if got := result.NumRecords(); got != 2 {
		t.Fatalf("matches = %d, want 2", got)
	}
	want := []float64{1.7, 4.0}
	for i, row := range result.Records {
		if row["grade"].Float() != want[i] {
			t.Errorf("row %d grade = %v, want %v", i, row["grade"].Float(), want[i])
		}
	}
}

// TestFilterRangeByScan_InclusiveBounds: both endpoints belong to the range.
func TestFilterRangeByScan_InclusiveBounds(t *testing.T) {
	students := testutil.CreateStudentsTable()

	result, err := students.FilterRangeByScan("matno", value.Int(101), value.Int(103))
	if err != nil {
		t.Fatalf("FilterRangeByScan failed: %v", err)
	}
	if got := result.NumRecords(); got != 3 {
		t.Errorf("matches = %d, want 3 (inclusive bounds)", got)
	}
}

// TestFilterByIndex matches scan results while the index is current.
func TestFilterByIndex_MatchesScan(t *testing.T) {
	exams := testutil.CreateExamsTable()
	if _, err := exams.BuildIndex(index.KindUnbalanced, "subject"); err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}

	byIndex, err := exams.FilterByIndex("subject", value.Text("Software Design"))
	if err != nil {
		t.Fatalf("FilterByIndex failed: %v", err)
	}
	byScan, err := exams.FilterByScan("subject", value.Text("Software Design"))
	if err != nil {
		t.Fatalf("FilterByScan failed: %v", err)
	}

	if byIndex.NumRecords() != byScan.NumRecords() {
		t.Fatalf("index answered %d rows, scan %d", byIndex.NumRecords(), byScan.NumRecords())
	}
	for i := range byScan.Records {
		if byIndex.Records[i]["matno"] != byScan.Records[i]["matno"] {
			t.Errorf("row %d differs between index and scan", i)
		}
	}
}

func TestFilterByIndex_NoIndex(t *testing.T) {
	exams := testutil.CreateExamsTable()
	if _, err := exams.FilterByIndex("subject", value.Text("DSEA")); err == nil {
		t.Error("expected error when no index is attached")
	}
}
