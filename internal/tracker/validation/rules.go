package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type kind int

const (
	kindText kind = iota
	kindNumber
)

// Value is a tagged form value: either text or a number.
type Value struct {
	kind kind
	text string
	num  int
}

func Text(s string) Value { return Value{kind: kindText, text: s} }
func Number(n int) Value { return Value{kind: kindNumber, num: n} }

func (v Value) String() string {
	if v.kind == kindNumber {
		return fmt.Sprint(v.num)
	}
	return v.text
}

// Rule is a named predicate over a Value. Length rules ignore numbers and
// range rules ignore text.
type Rule struct {
	Name  string
	check func(Value) bool
}

func (r Rule) Check(v Value) bool { return r.check(v) }

var Required = Rule{
	Name: "required",
	check: func(v Value) bool {
		return strings.TrimSpace(v.String()) != ""
	},
}

func MinLength(n int) Rule {
	return Rule{
		Name: fmt.Sprintf("min_length=%d", n),
		check: func(v Value) bool {
			return v.kind != kindText || utf8.RuneCountInString(v.text) >= n
		},
	}
}

func MaxLength(n int) Rule {
	return Rule{
		Name: fmt.Sprintf("max_length=%d", n),
		check: func(v Value) bool {
			return v.kind != kindText || utf8.RuneCountInString(v.text) <= n
		},
	}
}

func Min(n int) Rule {
	return Rule{
		Name: fmt.Sprintf("min=%d", n),
		check: func(v Value) bool {
			return v.kind != kindNumber || v.num >= n
		},
	}
}

func Max(n int) Rule {
	return Rule{
		Name: fmt.Sprintf("max=%d", n),
		check: func(v Value) bool {
			return v.kind != kindNumber || v.num <= n
		},
	}
}

// Field is a named value with the rules it must satisfy.
type Field struct {
	Name  string
	Value Value
	Rules []Rule
}

// Violation is one failed rule on one field.
type Violation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Validate returns every rule the field fails, in rule order.
func Validate(f Field) []Violation {
	var out []Violation
	for _, r := range f.Rules {
		if !r.Check(f.Value) {
			out = append(out, Violation{Field: f.Name, Rule: r.Name})
		}
	}
	return out
}
