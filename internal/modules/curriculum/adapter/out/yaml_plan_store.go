package out

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"sprinttrack/internal/modules/curriculum/domain"
	curriculumout "sprinttrack/internal/modules/curriculum/port/out"
)

type YAMLPlanStore struct {
	path string
}

func NewYAMLPlanStore(path string) curriculumout.PlanStore {
	return &YAMLPlanStore{path: path}
}

type planFile struct {
	StartDate string        `yaml:"start_date"`
	Days      []planFileDay `yaml:"days"`
}

type planFileDay struct {
	Day   int            `yaml:"day"`
	Tasks []planFileTask `yaml:"tasks"`
}

type planFileTask struct {
	Desc string `yaml:"desc"`
	Type string `yaml:"type"`
}

// Load parses the plan override. Unlike progress data, the template is
// authoritative: a malformed plan file is an error, never a silent default.
func (s *YAMLPlanStore) Load(_ context.Context) (domain.Plan, bool, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Plan{}, false, nil
		}
		return domain.Plan{}, false, fmt.Errorf("read plan file: %w", err)
	}
	var f planFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return domain.Plan{}, false, fmt.Errorf("decode plan file: %w", err)
	}
	start, err := time.Parse("2006-01-02", f.StartDate)
	if err != nil {
		return domain.Plan{}, false, fmt.Errorf("parse plan start_date: %w", err)
	}
	plan := domain.Plan{StartDate: start.UTC()}
	for _, d := range f.Days {
		dayEntry := domain.Day{Number: d.Day}
		for _, t := range d.Tasks {
			dayEntry.Tasks = append(dayEntry.Tasks, domain.Task{Description: t.Desc, Category: t.Type})
		}
		plan.Days = append(plan.Days, dayEntry)
	}
	if err := plan.Validate(); err != nil {
		return domain.Plan{}, false, fmt.Errorf("invalid plan file: %w", err)
	}
	return plan, true, nil
}
