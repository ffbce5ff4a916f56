// Package replay loads recorded gesture scenarios and runs them through the
// board service, so a drag session can be reproduced without a terminal.
package replay

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/thenoetrevino/dragboard/internal/gesture"
	"github.com/thenoetrevino/dragboard/internal/models"
	boardservice "github.com/thenoetrevino/dragboard/internal/services/board"
	"gopkg.in/yaml.v3"
)

// ErrEmptyScenario indicates a scenario without any events
var ErrEmptyScenario = errors.New("scenario has no events")

// Scenario is an initial board plus the raw gesture events to apply to it
type Scenario struct {
	Name   string          `yaml:"name,omitempty" json:"name,omitempty"`
	Board  models.Board    `yaml:"board" json:"board"`
	Events []gesture.Event `yaml:"events" json:"events"`
}

// Step records what one event did
type Step struct {
	Event      gesture.Event `yaml:"event" json:"event"`
	Transition string        `yaml:"transition" json:"transition"`
	Skipped    string        `yaml:"skipped,omitempty" json:"skipped,omitempty"`
}

// Result is the board after the last event and the per-event trace
type Result struct {
	Board models.Board `yaml:"board" json:"board"`
	Steps []Step       `yaml:"steps,omitempty" json:"steps,omitempty"`
}

// QuietSummary renders the final layout on one line, groups in order with
// their items in brackets: "group-todo[item-b] group-done[item-a,item-c]"
func (r *Result) QuietSummary() string {
	groups := make([]string, 0, len(r.Board.Groups))
	for _, g := range r.Board.Groups {
		items := make([]string, 0, len(g.Items))
		for _, it := range g.Items {
			items = append(items, it.ID.String())
		}
		groups = append(groups, g.ID.String()+"["+strings.Join(items, ",")+"]")
	}
	return strings.Join(groups, " ")
}

// Load reads a scenario from a YAML file
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a scenario from YAML
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(s.Events) == 0 {
		return nil, ErrEmptyScenario
	}
	return &s, nil
}

// Run replays every event in order through a fresh board service.
// Events that do not apply are recorded as skipped; only an invalid initial
// board fails the run.
func Run(s *Scenario, opts ...boardservice.Option) (*Result, error) {
	svc, err := boardservice.NewService(s.Board, opts...)
	if err != nil {
		return nil, err
	}

	steps := make([]Step, 0, len(s.Events))
	for _, ev := range s.Events {
		out := svc.Handle(ev)
		step := Step{Event: ev, Transition: out.Transition.String()}
		if out.Skipped != nil {
			step.Skipped = out.Skipped.Error()
		}
		steps = append(steps, step)
	}

	return &Result{Board: svc.Board(), Steps: steps}, nil
}
