package admission

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gutendex/explorer/pkg/useragent"
)

// Requirement is the minimum version admitted for one browser.
type Requirement struct {
	Name       string  `yaml:"name"`
	MinVersion float64 `yaml:"min_version"`
}

// Policy is an ordered, immutable list of requirements.
type Policy struct {
	requirements []Requirement
}

//go:embed requirements.yaml
var requirementsYAML []byte

var defaultPolicy = mustDecode(requirementsYAML)

// Default returns the built-in policy:
// chrome ≥ 61, edge ≥ 16, firefox ≥ 60, opera ≥ 47, safari ≥ 10.1.
func Default() Policy { return defaultPolicy }

// New creates a policy from requirements in the given order.
// Names are lowercased.
func New(reqs ...Requirement) Policy {
	cp := make([]Requirement, len(reqs))
	for i, r := range reqs {
		cp[i] = Requirement{Name: strings.ToLower(r.Name), MinVersion: r.MinVersion}
	}
	return Policy{requirements: cp}
}

// Decode reads a YAML requirement list.
func Decode(data []byte) (Policy, error) {
	var reqs []Requirement
	if err := yaml.Unmarshal(data, &reqs); err != nil {
		return Policy{}, errors.Join(ErrInvalidRequirements, err)
	}
	for i, r := range reqs {
		if r.Name == "" {
			return Policy{}, fmt.Errorf("%w: requirement %d has no name", ErrInvalidRequirements, i)
		}
		if r.MinVersion < 0 {
			return Policy{}, fmt.Errorf("%w: requirement %q has a negative version", ErrInvalidRequirements, r.Name)
		}
	}
	return New(reqs...), nil
}

func mustDecode(data []byte) Policy {
	p, err := Decode(data)
	if err != nil {
		panic(fmt.Sprintf("admission: embedded requirements: %v", err))
	}
	return p
}

// Requirements returns a copy of the policy's requirements.
func (p Policy) Requirements() []Requirement {
	return append([]Requirement(nil), p.requirements...)
}

// Admit reports whether id satisfies the policy.
func (p Policy) Admit(id useragent.Identity) bool {
	return Admit(id, p.requirements)
}

// Admit scans reqs in order and admits on the first requirement with the same name
// (case-insensitive) and a MinVersion not above id.Version. An identity without a
// version is never admitted.
func Admit(id useragent.Identity, reqs []Requirement) bool {
	for _, r := range reqs {
		if strings.EqualFold(r.Name, id.Name) && id.Version >= r.MinVersion {
			return true
		}
	}
	return false
}
