package engine_test

import (
	"errors"
	"testing"

	"gradedb/internal/domain/data"
	dberrors "gradedb/internal/domain/errors"
	"gradedb/internal/domain/value"
	"gradedb/internal/engine"
	"gradedb/internal/index"
	"gradedb/internal/testutil"
)

func TestInsert_AssignsDenseRecordIDs(t *testing.T) {
	table := engine.NewTable("exams", testutil.ExamsSchema())

	for i := 0; i < 3; i++ {
		id, err := table.Insert(data.Row{
			"matno":   value.Int(int64(100 + i)),
			"subject": value.Text("Software Design"),
			"grade":   value.Float(2.0),
		})
		if err != nil {
			t.Fatalf("insert %d failed: %v", i, err)
		}
		if id != data.RecordID(i) {
			t.Errorf("insert %d: id = %d, want %d", i, id, i)
		}
	}

	if got := table.NumRecords(); got != 3 {
		t.Errorf("NumRecords() = %d, want 3", got)
	}
}

func TestInsert_RejectsWrongKind(t *testing.T) {
	table := engine.NewTable("exams", testutil.ExamsSchema())

	_, err := table.Insert(data.Row{
		"matno":   value.Text("not a number"),
		"subject": value.Text("DSEA"),
		"grade":   value.Float(2.0),
	})
	var mismatch *dberrors.TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Errorf("err = %v, want TypeMismatchError", err)
	}
	if got := table.NumRecords(); got != 0 {
		t.Errorf("NumRecords() after rejected insert = %d, want 0", got)
	}
}

func TestInsert_RejectsUnknownAttribute(t *testing.T) {
	table := engine.NewTable("exams", testutil.ExamsSchema())

	_, err := table.Insert(data.Row{"professor": value.Text("kuhn")})
	var notFound *dberrors.AttributeNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("err = %v, want AttributeNotFoundError", err)
	}
}

func TestGetRecord_OutOfRange(t *testing.T) {
	table := testutil.CreateExamsTable()

	if _, err := table.GetRecord(-1); err == nil {
		t.Error("GetRecord(-1): expected error")
	}
	if _, err := table.GetRecord(data.RecordID(table.NumRecords())); err == nil {
		t.Error("GetRecord past the end: expected error")
	}
}

func TestBuildIndex_AttachesAndReplaces(t *testing.T) {
	exams := testutil.CreateExamsTable()

	first, err := exams.BuildIndex(index.KindHash, "subject")
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}
	if attached, ok := exams.Index("subject"); !ok || attached != first {
		t.Fatal("index not attached under its attribute")
	}

	second, err := exams.BuildIndex(index.KindUnbalanced, "subject")
	if err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	if attached, _ := exams.Index("subject"); attached != second {
		t.Error("rebuild did not replace the attached index")
	}
}

type recordingObserver struct {
	events []engine.Event
}

func (r *recordingObserver) OnEvent(ev engine.Event) {
	r.events = append(r.events, ev)
}

func TestObserver_SeesIndexBuild(t *testing.T) {
	exams := testutil.CreateExamsTable()
	rec := &recordingObserver{}
	exams.Subscribe(rec)

	if _, err := exams.BuildIndex(index.KindHash, "subject"); err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}

	if len(rec.events) != 2 {
		t.Fatalf("observed %d events, want 2", len(rec.events))
	}
	if rec.events[0].Type != engine.EventIndexBuildStart || rec.events[1].Type != engine.EventIndexBuildEnd {
		t.Errorf("event types = %v, %v", rec.events[0].Type, rec.events[1].Type)
	}
	if rec.events[0].SessionID == "" || rec.events[0].SessionID != rec.events[1].SessionID {
		t.Error("events must share the table's session ID")
	}
}
