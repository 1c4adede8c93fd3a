package hcs

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tokenize(t *testing.T, s string) []SelectorToken {
	t.Helper()
	lx := TokenizeSelector(s)
	var out []SelectorToken
	for {
		tok, err := lx.Next()
		if err != nil {
			t.Fatal("unexpected error", err)
		}
		if tok.Type == SelectorTokenTypeEOF {
			return out
		}
		out = append(out, tok)
	}
}

func TestTokenizeSelector(t *testing.T) {
	t.Parallel()
	type testCase struct {
		input    string
		expected []SelectorToken
	}
	tcs := []testCase{
		{
			input: "div.cls#id",
			expected: []SelectorToken{
				{Type: SelectorTokenTypeIdentifier, Val: "div"},
				{Type: SelectorTokenTypeChar, Val: "."},
				{Type: SelectorTokenTypeIdentifier, Val: "cls"},
				{Type: SelectorTokenTypeHash, Val: "id"},
			},
		}, {
			input: `a[href^="http://x"]`,
			expected: []SelectorToken{
				{Type: SelectorTokenTypeIdentifier, Val: "a"},
				{Type: SelectorTokenTypeChar, Val: "["},
				{Type: SelectorTokenTypeIdentifier, Val: "href"},
				{Type: SelectorTokenTypePrefixMatch, Val: "^="},
				{Type: SelectorTokenTypeString, Val: "http://x"},
				{Type: SelectorTokenTypeChar, Val: "]"},
			},
		}, {
			input: "p ~ span",
			expected: []SelectorToken{
				{Type: SelectorTokenTypeIdentifier, Val: "p"},
				{Type: SelectorTokenTypeSpace, Val: " "},
				{Type: SelectorTokenTypeTilde, Val: "~"},
				{Type: SelectorTokenTypeSpace, Val: " "},
				{Type: SelectorTokenTypeIdentifier, Val: "span"},
			},
		}, {
			input: "a+b>c,d",
			expected: []SelectorToken{
				{Type: SelectorTokenTypeIdentifier, Val: "a"},
				{Type: SelectorTokenTypePlus, Val: "+"},
				{Type: SelectorTokenTypeIdentifier, Val: "b"},
				{Type: SelectorTokenTypeGreater, Val: ">"},
				{Type: SelectorTokenTypeIdentifier, Val: "c"},
				{Type: SelectorTokenTypeComma, Val: ","},
				{Type: SelectorTokenTypeIdentifier, Val: "d"},
			},
		}, {
			input: ":not(.a)",
			expected: []SelectorToken{
				{Type: SelectorTokenTypeNot, Val: ":not("},
				{Type: SelectorTokenTypeChar, Val: "."},
				{Type: SelectorTokenTypeIdentifier, Val: "a"},
				{Type: SelectorTokenTypeChar, Val: ")"},
			},
		}, {
			input: ":NOT(b)",
			expected: []SelectorToken{
				{Type: SelectorTokenTypeNot, Val: ":NOT("},
				{Type: SelectorTokenTypeIdentifier, Val: "b"},
				{Type: SelectorTokenTypeChar, Val: ")"},
			},
		}, {
			input: ":nth-child(2n+1)",
			expected: []SelectorToken{
				{Type: SelectorTokenTypeChar, Val: ":"},
				{Type: SelectorTokenTypeFunction, Val: "nth-child"},
				{Type: SelectorTokenTypeNumber, Val: "2"},
				{Type: SelectorTokenTypeIdentifier, Val: "n"},
				{Type: SelectorTokenTypePlus, Val: "+"},
				{Type: SelectorTokenTypeNumber, Val: "1"},
				{Type: SelectorTokenTypeChar, Val: ")"},
			},
		}, {
			input: `\31 \33`,
			expected: []SelectorToken{
				{Type: SelectorTokenTypeIdentifier, Val: "13"},
			},
		}, {
			input: `.one\.word`,
			expected: []SelectorToken{
				{Type: SelectorTokenTypeChar, Val: "."},
				{Type: SelectorTokenTypeIdentifier, Val: "one.word"},
			},
		}, {
			input: "'quoted value'",
			expected: []SelectorToken{
				{Type: SelectorTokenTypeString, Val: "quoted value"},
			},
		}, {
			input: "[a*=b][c|=d][e$=f][g~=h]",
			expected: []SelectorToken{
				{Type: SelectorTokenTypeChar, Val: "["},
				{Type: SelectorTokenTypeIdentifier, Val: "a"},
				{Type: SelectorTokenTypeSubstringMatch, Val: "*="},
				{Type: SelectorTokenTypeIdentifier, Val: "b"},
				{Type: SelectorTokenTypeChar, Val: "]"},
				{Type: SelectorTokenTypeChar, Val: "["},
				{Type: SelectorTokenTypeIdentifier, Val: "c"},
				{Type: SelectorTokenTypeDashMatch, Val: "|="},
				{Type: SelectorTokenTypeIdentifier, Val: "d"},
				{Type: SelectorTokenTypeChar, Val: "]"},
				{Type: SelectorTokenTypeChar, Val: "["},
				{Type: SelectorTokenTypeIdentifier, Val: "e"},
				{Type: SelectorTokenTypeSuffixMatch, Val: "$="},
				{Type: SelectorTokenTypeIdentifier, Val: "f"},
				{Type: SelectorTokenTypeChar, Val: "]"},
				{Type: SelectorTokenTypeChar, Val: "["},
				{Type: SelectorTokenTypeIdentifier, Val: "g"},
				{Type: SelectorTokenTypeIncludes, Val: "~="},
				{Type: SelectorTokenTypeIdentifier, Val: "h"},
				{Type: SelectorTokenTypeChar, Val: "]"},
			},
		}, {
			input: "-foo",
			expected: []SelectorToken{
				{Type: SelectorTokenTypeIdentifier, Val: "-foo"},
			},
		}, {
			input: "-4",
			expected: []SelectorToken{
				{Type: SelectorTokenTypeChar, Val: "-"},
				{Type: SelectorTokenTypeNumber, Val: "4"},
			},
		}, {
			input: "#",
			expected: []SelectorToken{
				{Type: SelectorTokenTypeChar, Val: "#"},
			},
		},
	}
	for i, tc := range tcs {
		tc := tc
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Parallel()
			got := tokenize(t, tc.input)
			ignorePos := cmp.Transformer("ignorePos", func(tok SelectorToken) SelectorToken {
				tok.Pos = 0
				return tok
			})
			if diff := cmp.Diff(tc.expected, got, ignorePos); diff != "" {
				t.Fatalf("token mismatch for %q (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestTokenizeSelectorPositions(t *testing.T) {
	t.Parallel()
	got := tokenize(t, "ab > .cd")
	expected := []SelectorToken{
		{Type: SelectorTokenTypeIdentifier, Val: "ab", Pos: 0},
		{Type: SelectorTokenTypeSpace, Val: " ", Pos: 2},
		{Type: SelectorTokenTypeGreater, Val: ">", Pos: 3},
		{Type: SelectorTokenTypeSpace, Val: " ", Pos: 4},
		{Type: SelectorTokenTypeChar, Val: ".", Pos: 5},
		{Type: SelectorTokenTypeIdentifier, Val: "cd", Pos: 6},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatal("token mismatch (-want +got):\n" + diff)
	}
}

func TestTokenizeSelectorInvalid(t *testing.T) {
	t.Parallel()
	type testCase struct {
		input string
	}
	tcs := []testCase{
		{input: `"unterminated`},
		{input: "'unterminated"},
		{input: "\"line\nbreak\""},
		{input: `ab\`},
	}
	for i, tc := range tcs {
		tc := tc
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Parallel()
			lx := TokenizeSelector(tc.input)
			for {
				tok, err := lx.Next()
				if err != nil {
					if !errors.Is(err, ErrInvalidToken) {
						t.Fatal("expected ErrInvalidToken, got", err)
					}
					return
				}
				if tok.Type == SelectorTokenTypeEOF {
					t.Fatal("expected error")
				}
			}
		})
	}
}
