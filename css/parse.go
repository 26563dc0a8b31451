package css

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/boxlayout/css/cssom"
	"github.com/npillmayer/boxlayout/css/cssom/douceuradapter"
)

// Errors reported as diagnostics while building a sheet.
var (
	ErrSelector = errors.New("malformed selector")
	ErrValue    = errors.New("malformed value")
	ErrAtRule   = errors.New("at-rules not supported")
)

// Parse reads CSS text into a sheet. Malformed rules and declarations are
// dropped and collected in the sheet's diagnostics; an error is returned
// only if the text as a whole could not be parsed.
func Parse(text string) (*Sheet, error) {
	styles, err := douceuradapter.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("css: cannot parse stylesheet: %w", err)
	}
	return FromStyleSheet(styles), nil
}

// ParseFile reads and parses a CSS file.
func ParseFile(path string) (*Sheet, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("css: cannot read stylesheet: %w", err)
	}
	sheet, err := Parse(string(text))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Infof("css: loaded %d rules from %s", len(sheet.rules), path)
	return sheet, nil
}

// FromStyleSheet converts rules of a cssom.StyleSheet into a sheet.
func FromStyleSheet(styles cssom.StyleSheet) *Sheet {
	sheet := &Sheet{}
	if styles == nil || styles.Empty() {
		return sheet
	}
	for _, r := range styles.Rules() {
		if r.IsAtRule() {
			sheet.report(fmt.Errorf("%q: %w", r.Selector(), ErrAtRule))
			continue
		}
		sels, err := ParseSelectors(r.Selector())
		if err != nil {
			sheet.report(fmt.Errorf("rule %q dropped: %w", r.Selector(), err))
			continue
		}
		rule := Rule{Selectors: sels}
		for _, d := range r.DeclarationList() {
			v, err := ParseValue(d.Value)
			if err != nil {
				sheet.report(fmt.Errorf("declaration %q in rule %q dropped: %w", d.Property, r.Selector(), err))
				continue
			}
			rule.Declarations = append(rule.Declarations, Declaration{
				Property:  strings.ToLower(d.Property),
				Value:     v,
				Important: d.Important,
			})
		}
		sheet.rules = append(sheet.rules, rule)
	}
	return sheet
}

// --- Selectors -------------------------------------------------------------

// ParseSelectors reads a comma separated list of selectors, e.g.
//
//	button.primary:hover, #main > label
//
// Supported are element names, '*', ids, classes, pseudo-classes and the
// descendant and child combinators.
func ParseSelectors(prelude string) ([]Selector, error) {
	sp := selectorParser{s: scanner.New(prelude)}
	return sp.parse()
}

type selectorParser struct {
	s         *scanner.Scanner
	selectors []Selector
	cur       Selector
	started   bool          // cur has at least one simple selector
	pending   *RelationKind // combinator waiting for the next compound
}

func (sp *selectorParser) parse() ([]Selector, error) {
	for {
		tok := sp.s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			if err := sp.finish(); err != nil {
				return nil, err
			}
			return sp.selectors, nil
		case scanner.TokenError:
			return nil, fmt.Errorf("%w: %s", ErrSelector, tok.Value)
		case scanner.TokenComment:
		case scanner.TokenS:
			if sp.started && sp.pending == nil {
				k := Ancestor
				sp.pending = &k
			}
		case scanner.TokenIdent:
			sp.compound()
			if sp.cur.Element != "" {
				return nil, fmt.Errorf("%w: unexpected %q", ErrSelector, tok.Value)
			}
			sp.cur.Element = strings.ToLower(tok.Value)
		case scanner.TokenHash:
			sp.compound()
			sp.cur.ID = strings.TrimPrefix(tok.Value, "#")
		case scanner.TokenChar:
			if err := sp.char(tok.Value); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: unexpected %s %q", ErrSelector, tok.Type, tok.Value)
		}
	}
}

func (sp *selectorParser) char(c string) error {
	switch c {
	case "*":
		sp.compound()
	case ".":
		name, err := sp.ident()
		if err != nil {
			return err
		}
		sp.compound()
		sp.cur = sp.cur.WithClass(name)
	case ":":
		name, err := sp.ident()
		if err != nil {
			return err
		}
		sp.compound()
		sp.cur = sp.cur.WithPseudoClass(name)
	case ">":
		if !sp.started {
			return fmt.Errorf("%w: '>' without left-hand selector", ErrSelector)
		}
		k := Parent
		sp.pending = &k
	case ",":
		if err := sp.finish(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unexpected %q", ErrSelector, c)
	}
	return nil
}

// compound is called before a simple selector is added. It applies a
// pending combinator by turning the current compound into the outer
// selector of a new one.
func (sp *selectorParser) compound() {
	if sp.pending != nil {
		sp.cur = Selector{}.Within(*sp.pending, sp.cur)
		sp.pending = nil
	}
	sp.started = true
}

func (sp *selectorParser) ident() (string, error) {
	tok := sp.s.Next()
	if tok.Type != scanner.TokenIdent {
		return "", fmt.Errorf("%w: expected name, have %q", ErrSelector, tok.Value)
	}
	return tok.Value, nil
}

func (sp *selectorParser) finish() error {
	if !sp.started {
		return fmt.Errorf("%w: empty selector", ErrSelector)
	}
	if sp.pending != nil && *sp.pending == Parent {
		return fmt.Errorf("%w: dangling '>'", ErrSelector)
	}
	sp.selectors = append(sp.selectors, sp.cur)
	sp.cur, sp.started, sp.pending = Selector{}, false, nil
	return nil
}

// --- Values ----------------------------------------------------------------

// ParseValue reads a single declaration value. Accepted are numbers with
// an optional unit, percentages, hex colors, identifiers and quoted
// strings. Anything following the first value makes the value malformed.
func ParseValue(text string) (Value, error) {
	s := scanner.New(strings.TrimSpace(text))
	var v Value
	sign := 1.0
	tok := s.Next()
	if tok.Type == scanner.TokenChar && (tok.Value == "-" || tok.Value == "+") {
		if tok.Value == "-" {
			sign = -1
		}
		tok = s.Next()
		if tok.Type != scanner.TokenNumber && tok.Type != scanner.TokenDimension &&
			tok.Type != scanner.TokenPercentage {
			return v, fmt.Errorf("%w: sign without number in %q", ErrValue, text)
		}
	}
	switch tok.Type {
	case scanner.TokenIdent:
		v = Symbol(tok.Value)
	case scanner.TokenString:
		v = String(unquote(tok.Value))
	case scanner.TokenNumber:
		x, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return v, fmt.Errorf("%w: %v", ErrValue, err)
		}
		v = Scalar(sign*x, UnitNone)
	case scanner.TokenPercentage:
		x, err := strconv.ParseFloat(strings.TrimSuffix(tok.Value, "%"), 64)
		if err != nil {
			return v, fmt.Errorf("%w: %v", ErrValue, err)
		}
		v = Scalar(sign*x, UnitPercent)
	case scanner.TokenDimension:
		x, unit, err := splitDimension(tok.Value)
		if err != nil {
			return v, err
		}
		v = Scalar(sign*x, unit)
	case scanner.TokenHash:
		c, err := ParseHexColor(tok.Value)
		if err != nil {
			return v, fmt.Errorf("%w: %v", ErrValue, err)
		}
		v = Color(c)
	case scanner.TokenEOF:
		return v, fmt.Errorf("%w: empty value", ErrValue)
	default:
		return v, fmt.Errorf("%w: unexpected %s %q", ErrValue, tok.Type, tok.Value)
	}
	for tok = s.Next(); tok.Type != scanner.TokenEOF; tok = s.Next() {
		if tok.Type != scanner.TokenS && tok.Type != scanner.TokenComment {
			return Value{}, fmt.Errorf("%w: trailing %q in %q", ErrValue, tok.Value, text)
		}
	}
	return v, nil
}

func splitDimension(s string) (float64, Unit, error) {
	start := 0
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		start = 1
	}
	i := strings.IndexFunc(s[start:], func(r rune) bool {
		return !(r >= '0' && r <= '9' || r == '.')
	}) + start
	if i <= start {
		return 0, UnitNone, fmt.Errorf("%w: bad dimension %q", ErrValue, s)
	}
	x, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, UnitNone, fmt.Errorf("%w: %v", ErrValue, err)
	}
	return x, unitFromString(strings.ToLower(s[i:])), nil
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		s = s[1 : len(s)-1]
	}
	return strings.ReplaceAll(s, `\`, "")
}
