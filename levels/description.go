package levels

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrMalformedLevel is the sentinel for every level that fails to decode or
// validate. Use errors.Is to test for it.
var ErrMalformedLevel = errors.New("malformed level")

// MalformedLevelError describes why a level was rejected.
type MalformedLevelError struct {
	Level  string
	Reason string
	Err    error
}

func (e *MalformedLevelError) Error() string {
	msg := fmt.Sprintf("%s: level %q: %s", ErrMalformedLevel, e.Level, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedLevelError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedLevel}
	}
	return []error{ErrMalformedLevel, e.Err}
}

// Description is the raw level document. Every coordinate is in tile units
// and still has to be multiplied by Layout.Scale.
type Description struct {
	Name    string     `yaml:"name"`
	Layout  Layout     `yaml:"layout"`
	Physics Physics    `yaml:"physics"`
	Tiles   TileGroups `yaml:"tiles"`
	Items   []Entry    `yaml:"items"`
}

type Layout struct {
	Scale float64    `yaml:"scale"`
	Size  [2]float64 `yaml:"size"`
	Start [2]float64 `yaml:"start"`
	Goal  GoalSpec   `yaml:"goal"`
}

type Physics struct {
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
}

type TileGroups struct {
	Midground  []Entry `yaml:"midground"`
	Main       []Entry `yaml:"main"`
	Foreground []Entry `yaml:"foreground"`
}

// Entry is a placed entity written as [x, y, kind].
type Entry struct {
	X, Y float64
	Kind string
}

func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) != 3 {
		return fmt.Errorf("line %d: entry must be [x, y, kind]", node.Line)
	}
	if err := node.Content[0].Decode(&e.X); err != nil {
		return fmt.Errorf("line %d: entry x: %w", node.Line, err)
	}
	if err := node.Content[1].Decode(&e.Y); err != nil {
		return fmt.Errorf("line %d: entry y: %w", node.Line, err)
	}
	if node.Content[2].Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: entry kind must be a string", node.Line)
	}
	e.Kind = node.Content[2].Value
	return nil
}

// GoalForm records which representation a goal was written in.
type GoalForm int

const (
	GoalUnset GoalForm = iota
	GoalThreshold
	GoalRegion
	GoalItemGroup
)

func (f GoalForm) String() string {
	switch f {
	case GoalThreshold:
		return "threshold"
	case GoalRegion:
		return "region"
	case GoalItemGroup:
		return "item_group"
	default:
		return "unset"
	}
}

// GoalSpec is the decoded goal field. The form is decided here, once, from
// the shape of the document node:
//
//	goal: 2                  threshold, tiles measured from the right edge
//	goal: [28, 4, 2, 3]      region x, y, w, h
//	goal: [[13.5, 5, fridge]] item group
type GoalSpec struct {
	Form      GoalForm
	Threshold float64
	Region    [4]float64
	Members   []Entry
}

func (g *GoalSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if err := node.Decode(&g.Threshold); err != nil {
			return fmt.Errorf("line %d: goal threshold: %w", node.Line, err)
		}
		g.Form = GoalThreshold
		return nil
	case yaml.SequenceNode:
		if len(node.Content) == 0 {
			return fmt.Errorf("line %d: goal list is empty", node.Line)
		}
		if node.Content[0].Kind == yaml.SequenceNode {
			if err := node.Decode(&g.Members); err != nil {
				return fmt.Errorf("goal members: %w", err)
			}
			g.Form = GoalItemGroup
			return nil
		}
		var vals []float64
		if err := node.Decode(&vals); err != nil {
			return fmt.Errorf("line %d: goal region: %w", node.Line, err)
		}
		if len(vals) != 4 {
			return fmt.Errorf("line %d: goal region needs 4 values, got %d", node.Line, len(vals))
		}
		copy(g.Region[:], vals)
		g.Form = GoalRegion
		return nil
	default:
		return fmt.Errorf("line %d: unsupported goal representation", node.Line)
	}
}
