// Package extract compiles extraction rules, loaded from a YAML file,
// into parsers and applies them to text. Each rule names one token
// shape (a literal, a character-class run, a delimited region or a
// quoted string with escapes); scanning reports every place a rule
// matches.
package extract

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	yaml "github.com/goccy/go-yaml"

	"github.com/dhamidi/nibble/input"
	"github.com/dhamidi/nibble/parse"
)

// ErrRule is the sentinel error for malformed rule definitions.
var ErrRule = errors.New("extract: invalid rule")

// Rule is one extraction rule as written in the YAML config.
type Rule struct {
	Name    string `yaml:"name"`              // Label attached to every match
	Kind    string `yaml:"kind"`              // tag, tag-fold, while1, until, quoted
	Pattern string `yaml:"pattern,omitempty"` // Literal for tag, tag-fold and until
	Class   string `yaml:"class,omitempty"`   // Character class for while1
	Quote   string `yaml:"quote,omitempty"`   // Delimiter for quoted
	Escape  string `yaml:"escape,omitempty"`  // Escape marker for quoted, default backslash
}

type config struct {
	Rules []Rule `yaml:"rules"`
}

// Match is one place in the scanned text where a rule applied.
type Match struct {
	Rule   string
	Value  string
	Offset int
}

// Set holds compiled rules in declaration order. Earlier rules win
// when several match at the same position.
type Set struct {
	rules []compiledRule
}

type compiledRule struct {
	name   string
	parser parse.Parser[input.Text, string]
}

// Load reads a YAML rule config from r and compiles it.
func Load(r io.Reader) (*Set, error) {
	var cfg config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("extract: decode rules: %w", err)
	}
	return Compile(cfg.Rules)
}

// Compile builds a Set from already-decoded rules.
func Compile(rules []Rule) (*Set, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: no rules defined", ErrRule)
	}
	set := &Set{}
	for i, rule := range rules {
		p, err := compile(rule)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i, rule.Name, err)
		}
		set.rules = append(set.rules, compiledRule{name: rule.Name, parser: p})
	}
	return set, nil
}

func compile(rule Rule) (parse.Parser[input.Text, string], error) {
	if rule.Name == "" {
		return nil, fmt.Errorf("%w: rule without a name", ErrRule)
	}
	switch rule.Kind {
	case "tag":
		if rule.Pattern == "" {
			return nil, fmt.Errorf("%w: tag needs a pattern", ErrRule)
		}
		return asString(parse.Tag[input.Text](rule.Pattern)), nil
	case "tag-fold":
		if rule.Pattern == "" {
			return nil, fmt.Errorf("%w: tag-fold needs a pattern", ErrRule)
		}
		return asString(parse.TagNoCase[input.Text](rule.Pattern)), nil
	case "while1":
		pred, err := classPredicate(rule.Class)
		if err != nil {
			return nil, err
		}
		return asString(parse.TakeWhile1[input.Text](pred)), nil
	case "until":
		if rule.Pattern == "" {
			return nil, fmt.Errorf("%w: until needs a pattern", ErrRule)
		}
		return asString(parse.TakeUntil1[input.Text](rule.Pattern)), nil
	case "quoted":
		quote, err := singleRune(rule.Quote)
		if err != nil {
			return nil, fmt.Errorf("%w: quoted needs a one-character quote", ErrRule)
		}
		escape := '\\'
		if rule.Escape != "" {
			escape, err = singleRune(rule.Escape)
			if err != nil {
				return nil, fmt.Errorf("%w: escape must be one character", ErrRule)
			}
		}
		return quotedParser(quote, escape), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrRule, rule.Kind)
	}
}

func classPredicate(class string) (func(rune) bool, error) {
	switch class {
	case "alpha":
		return parse.IsAlpha[rune], nil
	case "digit":
		return parse.IsDigit[rune], nil
	case "hexdigit":
		return parse.IsHexDigit[rune], nil
	case "octdigit":
		return parse.IsOctDigit[rune], nil
	case "alnum":
		return parse.IsAlphanumeric[rune], nil
	case "space":
		return parse.IsMultispace[rune], nil
	default:
		return nil, fmt.Errorf("%w: unknown class %q", ErrRule, class)
	}
}

func singleRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("%w: %q is not a single character", ErrRule, s)
	}
	return r, nil
}

// quotedParser matches quote, an escaped body, quote. The produced
// value is the body with the delimiters stripped but the escape
// sequences kept as written.
func quotedParser(quote, escape rune) parse.Parser[input.Text, string] {
	body := parse.Escaped[input.Text](
		parse.TakeWhile1[input.Text](func(r rune) bool { return r != quote && r != escape }),
		escape,
		parse.Any[input.Text, rune](),
	)
	delim := parse.Tag[input.Text](string(quote))
	return asString(parse.Delimited(delim, body, delim))
}

func asString(p parse.Parser[input.Text, input.Text]) parse.Parser[input.Text, string] {
	return parse.Map(p, input.Text.String)
}

// Scan applies the rules to text, earliest position first. Positions
// where no rule applies are skipped one rune at a time; zero-width
// matches are ignored so the scan always advances.
func (s *Set) Scan(text string) []Match {
	var matches []Match
	offset := 0
	for offset < len(text) {
		c := input.NewText(text[offset:], input.Complete)
		advanced := false
		for _, rule := range s.rules {
			rest, value, err := rule.parser(c)
			if err != nil {
				continue
			}
			consumed := c.Len() - rest.Len()
			if consumed == 0 {
				continue
			}
			matches = append(matches, Match{Rule: rule.name, Value: value, Offset: offset})
			offset += consumed
			advanced = true
			break
		}
		if !advanced {
			_, size := utf8.DecodeRuneInString(text[offset:])
			offset += size
		}
	}
	return matches
}
