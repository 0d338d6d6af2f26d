package testutil

import (
	"gradedb/internal/domain/data"
	"gradedb/internal/domain/schema"
	"gradedb/internal/domain/value"
	"gradedb/internal/engine"
)

// StudentsSchema declares the students table used across tests.
func StudentsSchema() *schema.TableSchema {
	return &schema.TableSchema{
		TableName: "students",
		Attributes: []schema.Attribute{
			{Name: "matno", Type: value.TypeInt},
			{Name: "name", Type: value.TypeText},
			{Name: "semester", Type: value.TypeInt},
		},
	}
}

// ExamsSchema declares the exams table used across tests.
func ExamsSchema() *schema.TableSchema {
	return &schema.TableSchema{
		TableName: "exams",
		Attributes: []schema.Attribute{
			{Name: "matno", Type: value.TypeInt},
			{Name: "subject", Type: value.TypeText},
			{Name: "grade", Type: value.TypeFloat},
		},
	}
}

// CreateStudentsTable creates a students table with sample data.
func CreateStudentsTable() *engine.Table {
	t := engine.NewTable("students", StudentsSchema())
	rows := []data.Row{
		{"matno": value.Int(101), "name": value.Text("alice"), "semester": value.Int(2)},
		{"matno": value.Int(102), "name": value.Text("bob"), "semester": value.Int(6)},
		{"matno": value.Int(103), "name": value.Text("charlie"), "semester": value.Int(2)},
	}
	for _, row := range rows {
		if _, err := t.Insert(row); err != nil {
			panic(err)
		}
	}
	return t
}

// CreateExamsTable creates an exams table with sample data. The subject and
// grade distribution is shared by several index and scan tests.
func CreateExamsTable() *engine.Table {
	t := engine.NewTable("exams", ExamsSchema())
	rows := []data.Row{
		{"matno": value.Int(101), "subject": value.Text("Software Design"), "grade": value.Float(1.7)},
		{"matno": value.Int(102), "subject": value.Text("Software Design"), "grade": value.Float(1.3)},
		{"matno": value.Int(103), "subject": value.Text("DSEA"), "grade": value.Float(4.0)},
	}
	for _, row := range rows {
		if _, err := t.Insert(row); err != nil {
			panic(err)
		}
	}
	return t
}
