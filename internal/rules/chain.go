package rules

// Chain is an ordered sequence of rules. Order is semantically
// significant: earlier rules can suppress later ones.
type Chain []Rule

// Check evaluates the chain against one import target and returns the
// first violation message, or "" if the import is accepted. A rule's
// violation message wins immediately over any later rule; a Stop
// decision without a message breaks out of the chain with no error.
// Exhausting the chain accepts the import: rejection only happens when
// a rule explicitly flags it.
func (c Chain) Check(target string, ctx Context) string {
	for _, rule := range c {
		decision := rule.Evaluate(target, ctx)
		if decision.Message != "" {
			return decision.Message
		}

		if decision.Stop {
			break
		}
	}

	return ""
}
