// Package rules implements the import policy as an ordered chain of
// small check rules with short-circuit evaluation.
package rules

import (
	"fmt"
	"strings"
)

// Decision is the outcome of evaluating one rule against one import.
// A non-empty Message means a violation was found and always wins over
// Stop. Stop without a Message exempts the import from the remaining
// rules in the chain.
type Decision struct {
	Stop    bool
	Message string
}

// Context carries the file under check and the files considered part
// of its module. It is built once per file and shared read-only across
// every import and rule evaluated for that file.
type Context struct {
	File        string
	ModuleFiles []string
}

// Rule is a single unit of import policy.
type Rule interface {
	Evaluate(target string, ctx Context) Decision
}

// PrefixSuffixFilter exempts imports of known external or system
// headers. It matches against a fixed prefix list and a fixed suffix
// list and never reports a violation.
type PrefixSuffixFilter struct {
	Prefixes []string
	Suffixes []string
}

// Evaluate stops the chain without error when the target matches a
// filtered prefix or suffix.
func (f PrefixSuffixFilter) Evaluate(target string, _ Context) Decision {
	for _, prefix := range f.Prefixes {
		if strings.HasPrefix(target, prefix) {
			return Decision{Stop: true}
		}
	}

	for _, suffix := range f.Suffixes {
		if strings.HasSuffix(target, suffix) {
			return Decision{Stop: true}
		}
	}

	return Decision{}
}

// OwnUmbrellaGuard flags a component importing its own umbrella header
// from its own internals. One instance guards the bare header name,
// another the framework-qualified form.
type OwnUmbrellaGuard struct {
	Umbrella string
}

// Evaluate reports a self-import violation when the target equals the
// guarded umbrella header name.
func (g OwnUmbrellaGuard) Evaluate(target string, _ Context) Decision {
	if target != g.Umbrella {
		return Decision{}
	}

	return Decision{
		Stop:    true,
		Message: fmt.Sprintf("imports its own umbrella header: %s", target),
	}
}

// SameModuleFilter exempts imports that name a sibling file within the
// same module. Sibling files may import each other directly, bypassing
// the umbrella rule.
type SameModuleFilter struct{}

// Evaluate stops the chain without error when some module file path
// ends with the import target.
func (SameModuleFilter) Evaluate(target string, ctx Context) Decision {
	for _, file := range ctx.ModuleFiles {
		if strings.HasSuffix(file, target) {
			return Decision{Stop: true}
		}
	}

	return Decision{}
}

// NonUmbrellaCheck is the terminal catch-all: any import reaching it
// that does not start with the umbrella header prefix is a violation.
// It always stops the chain.
type NonUmbrellaCheck struct {
	UmbrellaPrefix string
}

// Evaluate accepts umbrella-prefixed targets and flags everything else.
func (c NonUmbrellaCheck) Evaluate(target string, _ Context) Decision {
	if strings.HasPrefix(target, c.UmbrellaPrefix) {
		return Decision{Stop: true}
	}

	return Decision{
		Stop:    true,
		Message: fmt.Sprintf("imports a non-umbrella header: %s", target),
	}
}
