package rules

// NamingConfig holds the conventions the canonical checkers are built
// from. The lists are read-only process configuration; rules hold them
// by reference.
type NamingConfig struct {
	// UmbrellaPrefix prefixes every umbrella header name, e.g.
	// "Material" for component Buttons -> MaterialButtons.h.
	UmbrellaPrefix string

	// FrameworkName qualifies the framework form of the umbrella
	// header, e.g. MaterialComponents/MaterialButtons.h.
	FrameworkName string

	// FilteredPrefixes lists known external and system header
	// prefixes that are exempt from checking.
	FilteredPrefixes []string

	// FilteredSuffixes lists header suffixes that are exempt from
	// checking.
	FilteredSuffixes []string
}

// UmbrellaHeader returns the bare umbrella header name for a component.
func (c NamingConfig) UmbrellaHeader(component string) string {
	return c.UmbrellaPrefix + component + ".h"
}

// QualifiedUmbrellaHeader returns the framework-qualified umbrella
// header name for a component.
func (c NamingConfig) QualifiedUmbrellaHeader(component string) string {
	return c.FrameworkName + "/" + c.UmbrellaHeader(component)
}

// NewSourceChecker builds the chain applied to a component's primary
// source files. The own-umbrella guards run before the same-module
// filter so a module file that happens to be named like the umbrella
// header is still flagged as a self-import.
func NewSourceChecker(component string, cfg NamingConfig) Chain {
	return Chain{
		PrefixSuffixFilter{Prefixes: cfg.FilteredPrefixes, Suffixes: cfg.FilteredSuffixes},
		OwnUmbrellaGuard{Umbrella: cfg.UmbrellaHeader(component)},
		OwnUmbrellaGuard{Umbrella: cfg.QualifiedUmbrellaHeader(component)},
		SameModuleFilter{},
		NonUmbrellaCheck{UmbrellaPrefix: cfg.UmbrellaPrefix},
	}
}

// NewGeneralChecker builds the chain applied to auxiliary trees such
// as examples. It omits the own-umbrella guards: auxiliary code is
// expected to import the component's umbrella header.
func NewGeneralChecker(cfg NamingConfig) Chain {
	return Chain{
		PrefixSuffixFilter{Prefixes: cfg.FilteredPrefixes, Suffixes: cfg.FilteredSuffixes},
		SameModuleFilter{},
		NonUmbrellaCheck{UmbrellaPrefix: cfg.UmbrellaPrefix},
	}
}
