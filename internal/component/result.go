package component

// Violation is one flagged import, reported as a (file, message) pair.
type Violation struct {
	File    string `json:"file"    yaml:"file"`
	Message string `json:"message" yaml:"message"`
}

// Result aggregates the outcome of checking one component tree,
// including its nested components and examples.
type Result struct {
	Component  string      `json:"component"  yaml:"component"`
	Components int         `json:"components" yaml:"components"`
	Files      int         `json:"files"      yaml:"files"`
	Violations []Violation `json:"violations" yaml:"violations"`
}

// Failed reports whether any violation was found anywhere in the tree.
func (r *Result) Failed() bool {
	return len(r.Violations) > 0
}

// merge folds a nested component's result into the parent's.
func (r *Result) merge(nested *Result) {
	r.Components += nested.Components
	r.Files += nested.Files
	r.Violations = append(r.Violations, nested.Violations...)
}
