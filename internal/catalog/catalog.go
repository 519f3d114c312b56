// Package catalog defines the PyLearn entity model and the built-in sample
// curriculum every session starts from.
package catalog

import (
	"fmt"
	"sync"
)

// Data is one complete copy of the curriculum.
type Data struct {
	Stages    []LearningStage
	Lessons   []Lesson
	Problems  []Problem
	Projects  []Project
	Resources []Resource
	Modules   []Module
}

var (
	sampleOnce sync.Once
	sample     Data
)

// Sample returns the sample curriculum. The seed is built and validated
// once per process; each call returns an independent deep copy.
func Sample() Data {
	sampleOnce.Do(func() {
		sample = Data{
			Stages:    seedStages(),
			Lessons:   seedLessons(),
			Problems:  seedProblems(),
			Projects:  seedProjects(),
			Resources: seedResources(),
			Modules:   seedModules(),
		}
		if err := sample.Validate(); err != nil {
			panic(fmt.Sprintf("catalog: invalid seed: %v", err))
		}
	})
	return sample.Clone()
}

// Validate checks every entity and that each stage reference resolves.
func (d Data) Validate() error {
	stages := make(map[int]bool, len(d.Stages))
	for _, s := range d.Stages {
		if err := s.Validate(); err != nil {
			return err
		}
		if stages[s.ID] {
			return fmt.Errorf("%w: duplicate stage id %d", ErrInvalidEntity, s.ID)
		}
		stages[s.ID] = true
	}

	checkRef := func(kind string, id, stageID int) error {
		if !stages[stageID] {
			return fmt.Errorf("%w: %s %d references unknown stage %d", ErrInvalidEntity, kind, id, stageID)
		}
		return nil
	}

	for _, l := range d.Lessons {
		if err := l.Validate(); err != nil {
			return err
		}
		if err := checkRef("lesson", l.ID, l.StageID); err != nil {
			return err
		}
	}
	for _, p := range d.Problems {
		if err := p.Validate(); err != nil {
			return err
		}
		if err := checkRef("problem", p.ID, p.StageID); err != nil {
			return err
		}
	}
	for _, p := range d.Projects {
		if err := p.Validate(); err != nil {
			return err
		}
		if err := checkRef("project", p.ID, p.StageID); err != nil {
			return err
		}
	}
	for _, r := range d.Resources {
		if err := r.Validate(); err != nil {
			return err
		}
		if err := checkRef("resource", r.ID, r.StageID); err != nil {
			return err
		}
	}
	modules := make(map[int]bool, len(d.Modules))
	for _, m := range d.Modules {
		if err := m.Validate(); err != nil {
			return err
		}
		if err := checkRef("module", 0, m.StageID); err != nil {
			return err
		}
		if modules[m.StageID] {
			return fmt.Errorf("%w: duplicate module for stage %d", ErrInvalidEntity, m.StageID)
		}
		modules[m.StageID] = true
	}
	return nil
}

// Clone returns a deep copy of d.
func (d Data) Clone() Data {
	out := Data{
		Stages:    append([]LearningStage(nil), d.Stages...),
		Lessons:   append([]Lesson(nil), d.Lessons...),
		Problems:  make([]Problem, len(d.Problems)),
		Projects:  make([]Project, len(d.Projects)),
		Resources: append([]Resource(nil), d.Resources...),
		Modules:   append([]Module(nil), d.Modules...),
	}
	for i, p := range d.Problems {
		p.Tags = append([]string(nil), p.Tags...)
		out.Problems[i] = p
	}
	for i, p := range d.Projects {
		p.Skills = append([]string(nil), p.Skills...)
		out.Projects[i] = p
	}
	return out
}
