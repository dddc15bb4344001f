package hook

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/blairham/hooksmith/pkg/config"
)

// Outcome classifies one hook when comparing configuration to disk
type Outcome int

// Comparison outcomes.
const (
	// Matching means the installed script equals the rendered one
	Matching Outcome = iota
	// Missing means the hook is configured but not installed
	Missing
	// Extra means a hooksmith script is installed for an unconfigured hook
	Extra
	// Diverged means the installed script differs from the rendered one
	Diverged
)

func (o Outcome) String() string {
	switch o {
	case Matching:
		return "matching"
	case Missing:
		return "missing"
	case Extra:
		return "extra"
	case Diverged:
		return "diverged"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// HookStatus is the outcome for a single hook name
type HookStatus struct {
	Name    string
	Outcome Outcome
}

// Comparison is the per-hook result of Compare, sorted by name. Names that
// are neither configured nor installed by hooksmith are absent.
type Comparison []HookStatus

// Get returns the outcome recorded for name
func (c Comparison) Get(name string) (Outcome, bool) {
	i, found := slices.BinarySearchFunc(c, name, func(s HookStatus, n string) int {
		switch {
		case s.Name < n:
			return -1
		case s.Name > n:
			return 1
		}
		return 0
	})
	if !found {
		return 0, false
	}
	return c[i].Outcome, true
}

// Drifted reports whether any hook is not Matching
func (c Comparison) Drifted() bool {
	return slices.ContainsFunc(c, func(s HookStatus) bool {
		return s.Outcome != Matching
	})
}

// Count returns how many hooks have outcome o
func (c Comparison) Count(o Outcome) int {
	n := 0
	for _, s := range c {
		if s.Outcome == o {
			n++
		}
	}
	return n
}

// hookReader is the read side of the installer the comparator needs
type hookReader interface {
	ReadInstalled(name string) ([]byte, bool, error)
	ListInstalled() ([]string, error)
}

// Comparator detects drift between configuration and installed hooks
type Comparator struct {
	reader hookReader
}

// NewComparator creates a comparator reading hooks through installer
func NewComparator(installer *Installer) *Comparator {
	return &Comparator{reader: installer}
}

// Compare classifies every configured, standard or installed hook name.
// It never modifies the hooks directory.
func (c *Comparator) Compare(cfg *config.HookConfig) (Comparison, error) {
	installed, err := c.reader.ListInstalled()
	if err != nil {
		return nil, fmt.Errorf("failed to list installed hooks: %w", err)
	}

	candidates := make([]string, 0, cfg.Len()+len(StandardHooks)+len(installed))
	candidates = append(candidates, cfg.Names()...)
	candidates = append(candidates, StandardHooks...)
	candidates = append(candidates, installed...)
	slices.Sort(candidates)
	candidates = slices.Compact(candidates)

	var result Comparison
	for _, name := range candidates {
		content, found, err := c.reader.ReadInstalled(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read hook '%s': %w", name, err)
		}

		def, configured := cfg.Get(name)
		switch {
		case configured && !found:
			result = append(result, HookStatus{Name: name, Outcome: Missing})
		case configured && bytes.Equal(content, []byte(Render(def))):
			result = append(result, HookStatus{Name: name, Outcome: Matching})
		case configured:
			result = append(result, HookStatus{Name: name, Outcome: Diverged})
		case found && IsManaged(content):
			result = append(result, HookStatus{Name: name, Outcome: Extra})
		}
	}

	return result, nil
}
