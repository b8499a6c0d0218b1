package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/umbrellacheck/internal/rules"
)

func TestPrefixSuffixFilter(t *testing.T) {
	t.Parallel()

	filter := rules.PrefixSuffixFilter{
		Prefixes: []string{"UIKit/", "Foundation/", "MDF"},
		Suffixes: []string{"Themer.h"},
	}

	tests := []struct {
		name   string
		target string
		stop   bool
	}{
		{name: "system prefix", target: "UIKit/UIKit.h", stop: true},
		{name: "second prefix", target: "Foundation/NSObject.h", stop: true},
		{name: "library prefix", target: "MDFTextAccessibility.h", stop: true},
		{name: "themer suffix", target: "MDCButtonColorThemer.h", stop: true},
		{name: "no match", target: "SomeHelper.h", stop: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			decision := filter.Evaluate(tt.target, rules.Context{})

			assert.Equal(t, tt.stop, decision.Stop)
			assert.Empty(t, decision.Message, "filter must never report a violation")
		})
	}
}

func TestOwnUmbrellaGuard(t *testing.T) {
	t.Parallel()

	guard := rules.OwnUmbrellaGuard{Umbrella: "MaterialButtons.h"}

	matched := guard.Evaluate("MaterialButtons.h", rules.Context{})
	assert.True(t, matched.Stop)
	assert.Equal(t, "imports its own umbrella header: MaterialButtons.h", matched.Message)

	other := guard.Evaluate("MaterialInk.h", rules.Context{})
	assert.False(t, other.Stop)
	assert.Empty(t, other.Message)
}

func TestSameModuleFilter(t *testing.T) {
	t.Parallel()

	ctx := rules.Context{
		File: "src/MDCButton.m",
		ModuleFiles: []string{
			"src/MDCButton.h",
			"src/MDCButton.m",
			"src/private/MDCButtonSubclass.h",
		},
	}

	var filter rules.SameModuleFilter

	sibling := filter.Evaluate("MDCButtonSubclass.h", ctx)
	assert.True(t, sibling.Stop)
	assert.Empty(t, sibling.Message)

	stranger := filter.Evaluate("MDCInk.h", ctx)
	assert.False(t, stranger.Stop)
	assert.Empty(t, stranger.Message)
}

func TestNonUmbrellaCheck_IsTerminal(t *testing.T) {
	t.Parallel()

	check := rules.NonUmbrellaCheck{UmbrellaPrefix: "Material"}

	umbrella := check.Evaluate("MaterialInk.h", rules.Context{})
	assert.True(t, umbrella.Stop)
	assert.Empty(t, umbrella.Message)

	helper := check.Evaluate("SomeHelper.h", rules.Context{})
	assert.True(t, helper.Stop)
	assert.Equal(t, "imports a non-umbrella header: SomeHelper.h", helper.Message)
}

// stubRule records whether it was evaluated and returns a fixed decision.
type stubRule struct {
	decision rules.Decision
	called   *bool
}

func (r stubRule) Evaluate(_ string, _ rules.Context) rules.Decision {
	if r.called != nil {
		*r.called = true
	}

	return r.decision
}

func TestChain_ErrorWinsImmediately(t *testing.T) {
	t.Parallel()

	var laterCalled bool

	chain := rules.Chain{
		stubRule{decision: rules.Decision{Message: "first violation"}},
		stubRule{decision: rules.Decision{Stop: true}, called: &laterCalled},
	}

	msg := chain.Check("Anything.h", rules.Context{})

	assert.Equal(t, "first violation", msg)
	assert.False(t, laterCalled, "rules after a violation must not run")
}

func TestChain_StopSuppressesLaterRules(t *testing.T) {
	t.Parallel()

	var laterCalled bool

	chain := rules.Chain{
		stubRule{decision: rules.Decision{Stop: true}},
		stubRule{decision: rules.Decision{Message: "should not fire"}, called: &laterCalled},
	}

	msg := chain.Check("Anything.h", rules.Context{})

	assert.Empty(t, msg)
	assert.False(t, laterCalled)
}

func TestChain_ContinueFallsThrough(t *testing.T) {
	t.Parallel()

	chain := rules.Chain{
		stubRule{decision: rules.Decision{}},
		stubRule{decision: rules.Decision{Message: "reached"}},
	}

	assert.Equal(t, "reached", chain.Check("Anything.h", rules.Context{}))
}

func TestChain_ExhaustedAcceptsSilently(t *testing.T) {
	t.Parallel()

	chain := rules.Chain{
		stubRule{decision: rules.Decision{}},
		stubRule{decision: rules.Decision{}},
	}

	assert.Empty(t, chain.Check("Anything.h", rules.Context{}))
}

func TestChain_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, rules.Chain{}.Check("Anything.h", rules.Context{}))
}
