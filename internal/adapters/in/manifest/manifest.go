// Package manifest reads voyage manifests and executes them against the
// fleet through the command handlers.
//
// A manifest declares ships and an ordered list of steps. Containers are
// named by a manifest-local ref; the executor maps each ref to the serial
// number issued when the container is built.
//
//	ships:
//	  - name: Aurora
//	    max_speed: 22
//	    max_containers: 4
//	    max_weight: 60
//	steps:
//	  - action: load
//	    ship: Aurora
//	    container: {ref: c1, kind: liquid, product: Milk, max_capacity: 10000, weight: 2000, height: 250, depth: 600, load: 5000}
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Action names a manifest step.
type Action string

const (
	ActionLoad     Action = "load"
	ActionUnload   Action = "unload"
	ActionTransfer Action = "transfer"
	ActionReplace  Action = "replace"
	ActionEmpty    Action = "empty"
)

var (
	ErrUnknownAction    = errors.New("unknown action")
	ErrInvalidStep      = errors.New("invalid step")
	ErrManifestIsEmpty  = errors.New("manifest declares no ships")
	ErrDuplicateShip    = errors.New("ship declared twice")
	ErrUnknownRef       = errors.New("unknown container ref")
	ErrDuplicateRef     = errors.New("container ref already used")
)

// Manifest is a decoded voyage plan.
type Manifest struct {
	Ships []Ship `yaml:"ships"`
	Steps []Step `yaml:"steps"`
}

// Ship declares a ship to register before the steps run.
type Ship struct {
	Name          string  `yaml:"name"`
	MaxSpeed      float64 `yaml:"max_speed"`
	MaxContainers int     `yaml:"max_containers"`
	MaxWeight     float64 `yaml:"max_weight"`
}

// Step is one operation of the plan. Which fields apply depends on Action:
//   - load: Ship, Container
//   - unload, empty: Ship, Ref
//   - transfer: Ship (source), To, Ref
//   - replace: Ship, Ref (container taken off), Container (replacement)
type Step struct {
	Action    Action     `yaml:"action"`
	Ship      string     `yaml:"ship"`
	To        string     `yaml:"to,omitempty"`
	Ref       string     `yaml:"ref,omitempty"`
	Container *Container `yaml:"container,omitempty"`
}

// Container describes a container to build. Masses are in kilograms,
// lengths in centimetres, pressure in atmospheres.
type Container struct {
	Ref         string  `yaml:"ref"`
	Kind        string  `yaml:"kind"`
	Product     string  `yaml:"product"`
	MaxCapacity float64 `yaml:"max_capacity"`
	Weight      float64 `yaml:"weight"`
	Height      float64 `yaml:"height"`
	Depth       float64 `yaml:"depth"`
	Hazardous   bool    `yaml:"hazardous,omitempty"`
	Pressure    float64 `yaml:"pressure,omitempty"`
	Load        float64 `yaml:"load,omitempty"`
}

// Decode reads a manifest from r. Unknown fields are rejected.
func Decode(r io.Reader) (Manifest, error) {
	var m Manifest

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return Manifest{}, ErrManifestIsEmpty
		}
		return Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// Load reads and decodes the manifest file at path.
func Load(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes m as YAML.
func Encode(w io.Writer, m Manifest) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return enc.Close()
}

// Validate checks the manifest structure. Domain rules such as capacities
// are left to the domain and reported when the steps run.
func (m Manifest) Validate() error {
	if len(m.Ships) == 0 {
		return ErrManifestIsEmpty
	}

	seen := make(map[string]struct{}, len(m.Ships))
	for _, s := range m.Ships {
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateShip, s.Name)
		}
		seen[s.Name] = struct{}{}
	}

	var errs []error
	for i, step := range m.Steps {
		if err := step.validate(); err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i+1, err))
		}
	}
	return errors.Join(errs...)
}

func (s Step) validate() error {
	missing := func(field string) error {
		return fmt.Errorf("%w: %s requires %s", ErrInvalidStep, s.Action, field)
	}

	if s.Ship == "" {
		return missing("ship")
	}

	switch s.Action {
	case ActionLoad:
		if s.Container == nil {
			return missing("container")
		}
	case ActionUnload, ActionEmpty:
		if s.Ref == "" {
			return missing("ref")
		}
	case ActionTransfer:
		if s.Ref == "" {
			return missing("ref")
		}
		if s.To == "" {
			return missing("to")
		}
	case ActionReplace:
		if s.Ref == "" {
			return missing("ref")
		}
		if s.Container == nil {
			return missing("container")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, s.Action)
	}

	if s.Container != nil && s.Container.Ref == "" {
		return missing("container.ref")
	}
	return nil
}
