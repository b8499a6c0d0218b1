// Package extractor pulls import targets out of source file text.
package extractor

import (
	"iter"
	"regexp"
	"strings"
)

// importPattern matches the two recognized import forms:
// #import "Target.h" and #import <Target.h>. The quote or bracket
// delimiters are not part of the extracted target.
var importPattern = regexp.MustCompile(`#import\s+(?:"([^"]+)"|<([^>]+)>)`)

// Imports returns a lazy sequence of import targets found in text,
// one per matching line, in file order. The sequence is restartable:
// ranging over it again re-scans the same text. Lines that do not
// match either import form are skipped. Only the first match on a
// line is considered.
func Imports(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(text) {
			target, ok := matchLine(line)
			if !ok {
				continue
			}

			if !yield(target) {
				return
			}
		}
	}
}

// matchLine extracts the import target from a single line, if any.
func matchLine(line string) (string, bool) {
	groups := importPattern.FindStringSubmatch(line)
	if groups == nil {
		return "", false
	}

	if groups[1] != "" {
		return groups[1], true
	}

	return groups[2], true
}
