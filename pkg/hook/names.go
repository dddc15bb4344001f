// Package hook renders git hook scripts and manages them in a hooks directory.
package hook

import (
	"github.com/blairham/hooksmith/pkg/config"
)

// StandardHooks lists every hook name git recognizes, in the order of the
// githooks documentation.
var StandardHooks = []string{
	"applypatch-msg",
	"pre-applypatch",
	"post-applypatch",
	"pre-commit",
	"pre-merge-commit",
	"prepare-commit-msg",
	"commit-msg",
	"post-commit",
	"pre-rebase",
	"post-checkout",
	"post-merge",
	"pre-push",
	"pre-receive",
	"update",
	"proc-receive",
	"post-receive",
	"post-update",
	"reference-transaction",
	"push-to-checkout",
	"pre-auto-gc",
	"post-rewrite",
	"sendemail-validate",
	"fsmonitor-watchman",
	"p4-changelist",
	"p4-prepare-changelist",
	"p4-post-changelist",
	"p4-pre-submit",
	"post-index-change",
}

var standardHookSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(StandardHooks))
	for _, name := range StandardHooks {
		set[name] = struct{}{}
	}
	return set
}()

// Validation is the outcome of checking one hook name
type Validation struct {
	Name  string
	Valid bool
}

// IsStandard reports whether name is a hook git will invoke.
// Matching is exact and case-sensitive.
func IsStandard(name string) bool {
	_, ok := standardHookSet[name]
	return ok
}

// Validate checks a single hook name
func Validate(name string) Validation {
	return Validation{Name: name, Valid: IsStandard(name)}
}

// ValidateAll checks every configured hook name, in configuration order.
// It never stops at the first unknown name.
func ValidateAll(cfg *config.HookConfig) []Validation {
	names := cfg.Names()
	results := make([]Validation, 0, len(names))
	for _, name := range names {
		results = append(results, Validate(name))
	}
	return results
}

// Unknown returns the names among validations that are not standard hooks
func Unknown(validations []Validation) []string {
	var names []string
	for _, v := range validations {
		if !v.Valid {
			names = append(names, v.Name)
		}
	}
	return names
}
