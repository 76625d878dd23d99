package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Compiled defaults match the sprint the built-in plan was authored for.
const (
	DefaultTotalDays = 30
	settingsFile     = "sprint.yaml"
	dataFile         = "sprint_data.json"
)

var DefaultStartDate = time.Date(2025, time.May, 26, 0, 0, 0, 0, time.UTC)

type Config struct {
	DataDir   string
	DataPath  string
	DBPath    string
	PlanPath  string
	StartDate time.Time
	TotalDays int
}

// settings is the optional sprint.yaml overlay. Absent fields keep defaults.
type settings struct {
	StartDate string `yaml:"start_date"`
	TotalDays int    `yaml:"total_days"`
	Plan      string `yaml:"plan"`
}

func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	cfg := Config{
		DataDir:   dataDir,
		DataPath:  filepath.Join(dataDir, dataFile),
		DBPath:    filepath.Join(dataDir, ".sprinttrack", "history.db"),
		PlanPath:  filepath.Join(dataDir, "plan.yaml"),
		StartDate: DefaultStartDate,
		TotalDays: DefaultTotalDays,
	}

	b, err := os.ReadFile(filepath.Join(dataDir, settingsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read sprint settings: %w", err)
	}
	var s settings
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Config{}, fmt.Errorf("decode sprint settings: %w", err)
	}
	if s.StartDate != "" {
		start, err := time.Parse("2006-01-02", s.StartDate)
		if err != nil {
			return Config{}, fmt.Errorf("parse start_date: %w", err)
		}
		cfg.StartDate = start.UTC()
	}
	if s.TotalDays != 0 {
		if s.TotalDays < 1 {
			return Config{}, fmt.Errorf("total_days must be positive, got %d", s.TotalDays)
		}
		cfg.TotalDays = s.TotalDays
	}
	if s.Plan != "" {
		if filepath.IsAbs(s.Plan) {
			cfg.PlanPath = filepath.Clean(s.Plan)
		} else {
			cfg.PlanPath = filepath.Clean(filepath.Join(dataDir, s.Plan))
		}
	}
	return cfg, nil
}
