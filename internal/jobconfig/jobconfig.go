// Package jobconfig loads a packing job (container, boxes, zones,
// engine tuning) from YAML, following the teacher's config-loading
// conventions: LoadJob/LoadJobFromBytes read and validate in one step,
// and a seed of 0 is auto-generated rather than rejected. An engine
// block that names no algorithm is replaced whole by
// model.DefaultConfig(), whose fixed seed is kept.
package jobconfig

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/voxload/loadplan/internal/model"
)

// BoxSpec is one box entry in a job file.
type BoxSpec struct {
	ID         string  `yaml:"id" json:"id"`
	CustomerID string  `yaml:"customer_id" json:"customer_id"`
	Priority   int     `yaml:"priority" json:"priority"`
	Fragile    bool    `yaml:"fragile" json:"fragile"`
	Length     int     `yaml:"length" json:"length"`
	Width      int     `yaml:"width" json:"width"`
	Height     int     `yaml:"height" json:"height"`
	Weight     float64 `yaml:"weight" json:"weight"`
}

// ZoneSpec is one weight-budget zone entry.
type ZoneSpec struct {
	Lo     int     `yaml:"lo" json:"lo"`
	Hi     int     `yaml:"hi" json:"hi"`
	Budget float64 `yaml:"budget" json:"budget"`
}

// ContainerSpec describes the container's extents, weight limit, and
// zone budgets.
type ContainerSpec struct {
	X         int        `yaml:"x" json:"x"`
	Y         int        `yaml:"y" json:"y"`
	Z         int        `yaml:"z" json:"z"`
	MaxWeight float64    `yaml:"max_weight" json:"max_weight"`
	Zones     []ZoneSpec `yaml:"zones,omitempty" json:"zones,omitempty"`
}

// Job is a complete packing job file: one container, a box list, and
// engine tuning.
type Job struct {
	Container ContainerSpec `yaml:"container" json:"container"`
	Boxes     []BoxSpec     `yaml:"boxes" json:"boxes"`
	Engine    model.Config  `yaml:"engine" json:"engine"`
}

// LoadJob reads and parses a job file from disk, applying defaults and
// validating before returning.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}
	return LoadJobFromBytes(data)
}

// LoadJobFromBytes parses a job from a YAML byte slice. Useful for
// tests and for jobs built programmatically before marshaling.
func LoadJobFromBytes(data []byte) (*Job, error) {
	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parsing job YAML: %w", err)
	}

	if job.Engine.Algorithm == "" {
		job.Engine = model.DefaultConfig()
	}
	if job.Engine.Seed == 0 {
		job.Engine.Seed = generateSeed()
	}
	if len(job.Container.Zones) == 0 {
		job.Container.Zones = []ZoneSpec{{Lo: 0, Hi: job.Container.X, Budget: job.Container.MaxWeight}}
	}

	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("validating job: %w", err)
	}
	return &job, nil
}

// Validate checks the job's structural constraints: positive container
// extents and max_weight, a non-empty box list, positive box dimensions
// with non-negative weights, and zones with lo < hi and a non-negative
// budget. Box sizes are not compared against the container.
func (j *Job) Validate() error {
	if j.Container.X <= 0 || j.Container.Y <= 0 || j.Container.Z <= 0 {
		return fmt.Errorf("container dimensions must be positive, got (%d,%d,%d)", j.Container.X, j.Container.Y, j.Container.Z)
	}
	if j.Container.MaxWeight <= 0 {
		return errors.New("container max_weight must be positive")
	}
	if len(j.Boxes) == 0 {
		return errors.New("at least one box must be specified")
	}
	for i, b := range j.Boxes {
		if b.Length <= 0 || b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("box[%d] %q: dimensions must be positive", i, b.ID)
		}
		if b.Weight < 0 {
			return fmt.Errorf("box[%d] %q: weight must not be negative", i, b.ID)
		}
	}
	for i, z := range j.Container.Zones {
		if z.Lo >= z.Hi {
			return fmt.Errorf("zone[%d]: lo (%d) must be less than hi (%d)", i, z.Lo, z.Hi)
		}
		if z.Budget < 0 {
			return fmt.Errorf("zone[%d]: budget must not be negative", i)
		}
	}
	return nil
}

// ToContainer builds the engine's model.Container from the job's spec.
func (j *Job) ToContainer() model.Container {
	zones := make([]model.Zone, len(j.Container.Zones))
	for i, z := range j.Container.Zones {
		zones[i] = model.Zone{Lo: z.Lo, Hi: z.Hi, Budget: z.Budget}
	}
	return model.Container{
		X:         j.Container.X,
		Y:         j.Container.Y,
		Z:         j.Container.Z,
		MaxWeight: j.Container.MaxWeight,
		Zones:     zones,
	}
}

// ToBoxes builds the engine's model.Box list from the job's spec.
func (j *Job) ToBoxes() []model.Box {
	boxes := make([]model.Box, len(j.Boxes))
	for i, b := range j.Boxes {
		boxes[i] = model.Box{
			ID:         b.ID,
			CustomerID: b.CustomerID,
			Priority:   b.Priority,
			Fragile:    b.Fragile,
			Length:     b.Length,
			Width:      b.Width,
			Height:     b.Height,
			Weight:     b.Weight,
		}
	}
	return boxes
}

// ToYAML re-serializes the job, useful for round-tripping a
// programmatically-built job to disk.
func (j *Job) ToYAML() ([]byte, error) {
	return yaml.Marshal(j)
}

// generateSeed derives a seed from the current time when the job file
// names an algorithm but leaves Engine.Seed unset, matching the
// teacher's auto-seed-if-zero convention.
func generateSeed() int64 {
	return time.Now().UnixNano()
}
