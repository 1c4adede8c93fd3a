package hcs

import (
	"strconv"
	"strings"
)

var nthKinds = map[string]NthKind{
	"nth-child":        NthChild,
	"nth-last-child":   NthLastChild,
	"nth-of-type":      NthOfType,
	"nth-last-of-type": NthLastOfType,
}

// parseNth parses the argument of an :nth-* pseudo-class. The accepted
// forms are "odd", "even", a bare integer, and "An+B" with non-negative
// coefficients. The current token is the first argument token; on return
// the closing parenthesis has been consumed.
func (p *selectorParser) parseNth() (a, b int, err error) {
	if err := p.skipSpace(); err != nil {
		return 0, 0, err
	}
	switch p.tok.Type {
	case SelectorTokenTypeIdentifier:
		switch {
		case strings.EqualFold(p.tok.Val, "odd"):
			a, b = 2, 1
		case strings.EqualFold(p.tok.Val, "even"):
			a, b = 2, 0
		case strings.EqualFold(p.tok.Val, "n"):
			a = 1
			if err := p.next(); err != nil {
				return 0, 0, err
			}
			b, err = p.parseNthOffset()
			if err != nil {
				return 0, 0, err
			}
			return a, b, p.closeNth()
		default:
			return 0, 0, parseErrorAt(p.tok.Pos, "invalid nth argument")
		}
		if err := p.next(); err != nil {
			return 0, 0, err
		}
		return a, b, p.closeNth()
	case SelectorTokenTypeNumber:
		v, convErr := strconv.Atoi(p.tok.Val)
		if convErr != nil {
			return 0, 0, parseErrorAt(p.tok.Pos, "invalid nth argument")
		}
		if err := p.next(); err != nil {
			return 0, 0, err
		}
		if p.tok.Type == SelectorTokenTypeIdentifier {
			if !strings.EqualFold(p.tok.Val, "n") {
				return 0, 0, parseErrorAt(p.tok.Pos, "invalid nth argument")
			}
			a = v
			if err := p.next(); err != nil {
				return 0, 0, err
			}
			b, err = p.parseNthOffset()
			if err != nil {
				return 0, 0, err
			}
			return a, b, p.closeNth()
		}
		return 0, v, p.closeNth()
	default:
		return 0, 0, parseErrorAt(p.tok.Pos, "invalid nth argument")
	}
}

// parseNthOffset parses the optional "+B" tail after "An".
func (p *selectorParser) parseNthOffset() (int, error) {
	if err := p.skipSpace(); err != nil {
		return 0, err
	}
	if p.tok.Type != SelectorTokenTypePlus {
		return 0, nil
	}
	if err := p.next(); err != nil {
		return 0, err
	}
	if err := p.skipSpace(); err != nil {
		return 0, err
	}
	if p.tok.Type != SelectorTokenTypeNumber {
		return 0, parseErrorAt(p.tok.Pos, "invalid nth argument")
	}
	v, err := strconv.Atoi(p.tok.Val)
	if err != nil {
		return 0, parseErrorAt(p.tok.Pos, "invalid nth argument")
	}
	if nextErr := p.next(); nextErr != nil {
		return 0, nextErr
	}
	return v, nil
}

// closeNth consumes the closing parenthesis of an nth argument.
func (p *selectorParser) closeNth() error {
	if err := p.skipSpace(); err != nil {
		return err
	}
	if !p.isChar(')') {
		return parseErrorAt(p.tok.Pos, "')' expected")
	}
	return p.next()
}
