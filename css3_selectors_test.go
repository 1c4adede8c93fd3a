package hcs

import (
	"strconv"
	"strings"
	"testing"
)

// patternReplacer fills the W3C pattern placeholders with concrete names.
var patternReplacer = strings.NewReplacer(
	"(s)", "(.warning)",
	"E", "p",
	"F", "span",
)

func TestCSS3SelectorPatterns(t *testing.T) {
	t.Parallel()
	root := testTree()
	for i, info := range CSS3SelectorInfoLookup {
		i, info := i, info
		t.Run(strconv.Itoa(i)+" "+info.Pattern, func(t *testing.T) {
			t.Parallel()
			expr := patternReplacer.Replace(info.Pattern)
			if _, err := ParseSelector(expr); err != nil {
				t.Fatalf("pattern %q did not parse: %v", expr, err)
			}
			sel, err := Select(root, expr)
			if err != nil {
				t.Fatalf("pattern %q did not evaluate: %v", expr, err)
			}
			if !info.Matches && sel.Len() != 0 {
				t.Fatalf("pattern %q should not match, got %d nodes", expr, sel.Len())
			}
		})
	}
}
