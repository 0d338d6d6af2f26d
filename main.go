package main

import (
	"log/slog"
	"os"

	"gradedb/internal/domain/data"
	"gradedb/internal/domain/schema"
	"gradedb/internal/domain/value"
	"gradedb/internal/engine"
	"gradedb/internal/index"
	"gradedb/internal/logging"
	"gradedb/internal/queries"
)

func main() {
	logger, closeFn := logging.Setup("", slog.LevelDebug)
	defer closeFn()
	slog.SetDefault(logger)

	logger.Info("Starting gradedb demo...")

	students := engine.NewTable("students", &schema.TableSchema{
		TableName: "students",
		Attributes: []schema.Attribute{
			{Name: "matno", Type: value.TypeInt},
			{Name: "name", Type: value.TypeText},
			{Name: "semester", Type: value.TypeInt},
		},
	})
	students.Subscribe(engine.NewLoggingObserver())

	exams := engine.NewTable("exams", &schema.TableSchema{
		TableName: "exams",
		Attributes: []schema.Attribute{
			{Name: "matno", Type: value.TypeInt},
			{Name: "subject", Type: value.TypeText},
			{Name: "grade", Type: value.TypeFloat},
		},
	})

	studentRows := []data.Row{
		{"matno": value.Int(101), "name": value.Text("alice"), "semester": value.Int(2)},
		{"matno": value.Int(102), "name": value.Text("bob"), "semester": value.Int(6)},
		{"matno": value.Int(103), "name": value.Text("charlie"), "semester": value.Int(2)},
	}
	examRows := []data.Row{
		{"matno": value.Int(101), "subject": value.Text("Software Design"), "grade": value.Float(1.7)},
		{"matno": value.Int(102), "subject": value.Text("Software Design"), "grade": value.Float(1.3)},
		{"matno": value.Int(103), "subject": value.Text("DSEA"), "grade": value.Float(4.0)},
	}
	for _, row := range studentRows {
		if _, err := students.Insert(row); err != nil {
			logger.Error("failed to insert student", "error", err)
			closeFn()
			os.Exit(1)
		}
	}
	for _, row := range examRows {
		if _, err := exams.Insert(row); err != nil {
			logger.Error("failed to insert exam", "error", err)
			closeFn()
			os.Exit(1)
		}
	}

	// Index exams by subject; the three backends are interchangeable here.
	if _, err := exams.BuildIndex(index.KindUnbalanced, "subject"); err != nil {
		logger.Error("index build failed", "error", err)
		closeFn()
		os.Exit(1)
	}

	avg, err := queries.SubjectAverage(exams, "Software Design")
	if err != nil {
		logger.Error("average query failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	logger.Info("subject average", "subject", "Software Design", "average", avg)

	top, err := queries.TopStudents(students, exams, 2.0)
	if err != nil {
		logger.Error("top students query failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	logger.Info("top students", "count", top.NumRecords(), "rows", top.Records)

	if err := exams.AddComputedColumn("gpa", "5 - grade"); err != nil {
		logger.Error("computed column failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	logger.Info("exams with computed gpa", "rows", exams.Records)

	logger.Info("Demo complete")
}
