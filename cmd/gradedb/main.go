package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gradedb/internal/config"
	"gradedb/internal/engine"
	"gradedb/internal/index"
	"gradedb/internal/logging"
	"gradedb/internal/queries"
	"gradedb/internal/storage"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	maxGrade := flag.Float64("max-grade", 2.0, "Grade cutoff for the top-students query")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger, closeFn := logging.Setup(cfg.Logging.SeqURL, logging.ParseLevel(cfg.Logging.Level))
	defer closeFn()
	slog.SetDefault(logger)

	logger.Info("starting", "app", cfg.AppName, "data_dir", cfg.DataDir)

	students, err := storage.LoadTable(filepath.Join(cfg.DataDir, "students.json"), logger)
	if err != nil {
		logger.Error("failed to load students", "error", err)
		closeFn()
		os.Exit(1)
	}
	exams, err := storage.LoadTable(filepath.Join(cfg.DataDir, "exams.json"), logger)
	if err != nil {
		logger.Error("failed to load exams", "error", err)
		closeFn()
		os.Exit(1)
	}

	students.Subscribe(engine.NewLoggingObserver())
	exams.Subscribe(engine.NewLoggingObserver())

	if _, err := exams.BuildIndex(index.KindUnbalanced, "subject"); err != nil {
		logger.Error("index build failed", "error", err)
		closeFn()
		os.Exit(1)
	}

	top, err := queries.TopStudents(students, exams, *maxGrade)
	if err != nil {
		logger.Error("top students query failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	for _, row := range top.Records {
		fmt.Println(row["name"].Text())
	}

	subjects, err := exams.Project([]string{"subject"})
	if err != nil {
		logger.Error("projection failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	for _, row := range subjects.Distinct().Records {
		subject := row["subject"].Text()
		avg, err := queries.SubjectAverage(exams, subject)
		if err != nil {
			logger.Error("average query failed", "subject", subject, "error", err)
			continue
		}
		logger.Info("subject average", "subject", subject, "average", avg)
	}
}
