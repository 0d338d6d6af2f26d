package engine_test

import (
	"testing"

	"gradedb/internal/domain/data"
	"gradedb/internal/domain/schema"
	"gradedb/internal/domain/value"
	"gradedb/internal/engine"
	"gradedb/internal/testutil"
)

// TestNaturalJoin_Basic joins students and exams on their shared matno.
func TestNaturalJoin_Basic(t *testing.T) {
	students := testutil.CreateStudentsTable()
	exams := testutil.CreateExamsTable()

	joined, err := students.NaturalJoin(exams)
	if err != nil {
		t.Fatalf("NaturalJoin failed: %v", err)
	}

	// Every student has exactly one exam in the fixture.
	if got := joined.NumRecords(); got != 3 {
		t.Fatalf("result rows = %d, want 3", got)
	}

	// Union of attributes: students' schema plus exams' non-shared ones.
	wantAttrs := []string{"matno", "name", "semester", "subject", "grade"}
	gotAttrs := joined.Schema.Names()
	if len(gotAttrs) != len(wantAttrs) {
		t.Fatalf("joined schema = %v, want %v", gotAttrs, wantAttrs)
	}
	for i := range wantAttrs {
		if gotAttrs[i] != wantAttrs[i] {
			t.Errorf("attribute %d = %s, want %s", i, gotAttrs[i], wantAttrs[i])
		}
	}

	for i, row := range joined.Records {
		if row["matno"].Int() < 101 || row["matno"].Int() > 103 {
			t.Errorf("row %d has unexpected matno %d", i, row["matno"].Int())
		}
		if _, ok := row["subject"]; !ok {
			t.Errorf("row %d missing exam attributes", i)
		}
		if _, ok := row["name"]; !ok {
			t.Errorf("row %d missing student attributes", i)
		}
	}
}

// TestNaturalJoin_UnmatchedRowsDropped: inner semantics, a row matching
// nothing contributes nothing.
func TestNaturalJoin_UnmatchedRowsDropped(t *testing.T) {
	students := testutil.CreateStudentsTable()

	exams := engine.NewTable("exams", testutil.ExamsSchema())
	rows := []data.Row{
		{"matno": value.Int(101), "subject": value.Text("DSEA"), "grade": value.Float(2.0)},
		{"matno": value.Int(999), "subject": value.Text("DSEA"), "grade": value.Float(1.0)}, // no such student
	}
	for _, row := range rows {
		if _, err := exams.Insert(row); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	joined, err := students.NaturalJoin(exams)
	if err != nil {
		t.Fatalf("NaturalJoin failed: %v", err)
	}
	if got := joined.NumRecords(); got != 1 {
		t.Fatalf("result rows = %d, want 1", got)
	}
	if got := joined.Records[0]["name"].Text(); got != "alice" {
		t.Errorf("joined student = %q, want alice", got)
	}
}

// TestNaturalJoin_MultipleMatches: one left row combines with every matching
// right row.
func TestNaturalJoin_MultipleMatches(t *testing.T) {
	students := testutil.CreateStudentsTable()

	exams := engine.NewTable("exams", testutil.ExamsSchema())
	for _, subject := range []string{"DSEA", "Software Design", "Compilers"} {
		_, err := exams.Insert(data.Row{
			"matno":   value.Int(102),
			"subject": value.Text(subject),
			"grade":   value.Float(2.0),
		})
		if err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	joined, err := students.NaturalJoin(exams)
	if err != nil {
		t.Fatalf("NaturalJoin failed: %v", err)
	}
	if got := joined.NumRecords(); got != 3 {
		t.Fatalf("result rows = %d, want 3", got)
	}
	for i, row := range joined.Records {
		if got := row["name"].Text(); got != "bob" {
			t.Errorf("row %d student = %q, want bob", i, got)
		}
	}
}

// TestNaturalJoin_SeparatorBytesInText: rows only match when every shared
// attribute is equal on its own, not when the concatenated cells happen to
// read the same.
func TestNaturalJoin_SeparatorBytesInText(t *testing.T) {
	left := engine.NewTable("left", &schema.TableSchema{
		TableName: "left",
		Attributes: []schema.Attribute{
			{Name: "a", Type: value.TypeText},
			{Name: "b", Type: value.TypeText},
			{Name: "tag", Type: value.TypeInt},
		},
	})
	right := engine.NewTable("right", &schema.TableSchema{
		TableName: "right",
		Attributes: []schema.Attribute{
			{Name: "a", Type: value.TypeText},
			{Name: "b", Type: value.TypeText},
		},
	})

	leftRows := []data.Row{
		{"a": value.Text("p\x00TEXT:q"), "b": value.Text("r"), "tag": value.Int(1)},
		{"a": value.Text("p"), "b": value.Text("q\x00TEXT:r"), "tag": value.Int(2)},
	}
	for _, row := range leftRows {
		if _, err := left.Insert(row); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}
	if _, err := right.Insert(data.Row{"a": value.Text("p"), "b": value.Text("q\x00TEXT:r")}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	joined, err := left.NaturalJoin(right)
	if err != nil {
		t.Fatalf("NaturalJoin failed: %v", err)
	}
	if got := joined.NumRecords(); got != 1 {
		t.Fatalf("result rows = %d, want 1", got)
	}
	if got := joined.Records[0]["tag"].Int(); got != 2 {
		t.Errorf("matched tag = %d, want 2", got)
	}
}

// TestNaturalJoin_NoSharedAttributes is an error, not a cross product.
func TestNaturalJoin_NoSharedAttributes(t *testing.T) {
	students := testutil.CreateStudentsTable()
	rooms := engine.NewTable("rooms", &schema.TableSchema{
		TableName: "rooms",
		Attributes: []schema.Attribute{
			{Name: "room", Type: value.TypeText},
			{Name: "capacity", Type: value.TypeInt},
		},
	})

	if _, err := students.NaturalJoin(rooms); err == nil {
		t.Error("expected error for join without shared attributes")
	}
}
