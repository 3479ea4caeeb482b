package jsondata

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/hrytsenko/json-data/debug"
	"github.com/hrytsenko/json-data/encode"
	"github.com/hrytsenko/json-data/ir"
	"github.com/hrytsenko/json-data/parse"
)

// Validator checks documents against a previously compiled schema
// without mutating them. A schema is a JSON document with two optional
// sections:
//
//	{
//	  "accept": {"customer": {"name": "!string", "vip": true}},
//	  "rules": {"adult": "customer.age >= 21"}
//	}
//
// The accept section is a structural template: literal scalars must
// match exactly, strings of the form "!string", "!number", "!bool",
// "!object", "!array", "!null", and "!any" assert the kind of the
// value ("!!" escapes a literal leading bang), object templates
// require their fields and allow extras, and a single-element array
// template applies to every element. The rules section holds named
// boolean expressions evaluated against the document's top-level
// fields.
type Validator struct {
	accept *ir.Node
	rules  []rule
}

type rule struct {
	name string
	prog *vm.Program
}

// NewValidator compiles schema. A malformed schema is a *ConfigError.
func NewValidator(schema []byte) (*Validator, error) {
	t, err := parse.Parse(schema)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	if t.Type != ir.ObjectType {
		return nil, &ConfigError{Err: fmt.Errorf("schema is %s, not object", t.Type)}
	}
	v := &Validator{}
	var cfgErr error
	t.Range(func(field string, section *ir.Node) bool {
		switch field {
		case "accept":
			cfgErr = checkTemplate(section)
			v.accept = section
		case "rules":
			cfgErr = v.compileRules(section)
		default:
			cfgErr = fmt.Errorf("unknown schema section %q", field)
		}
		return cfgErr == nil
	})
	if cfgErr != nil {
		return nil, &ConfigError{Err: cfgErr}
	}
	return v, nil
}

func (v *Validator) compileRules(section *ir.Node) error {
	if section.Type != ir.ObjectType {
		return fmt.Errorf("rules section is %s, not object", section.Type)
	}
	var err error
	section.Range(func(name string, src *ir.Node) bool {
		if src.Type != ir.StringType {
			err = fmt.Errorf("rule %q is %s, not string", name, src.Type)
			return false
		}
		var prog *vm.Program
		prog, err = expr.Compile(src.String,
			expr.AllowUndefinedVariables(),
			expr.AsBool())
		if err != nil {
			err = fmt.Errorf("rule %q: %w", name, err)
			return false
		}
		v.rules = append(v.rules, rule{name: name, prog: prog})
		return true
	})
	return err
}

// Validate checks one document. It returns nil on pass, or a
// *ValidateError listing every violation.
func (v *Validator) Validate(doc Document) error {
	return v.validate(doc.Tree())
}

// ValidateList checks a list of documents as one array value. Rules
// see the array under the "items" variable.
func (v *Validator) ValidateList(docs []Document) error {
	return v.validate(EntitiesToTree(docs))
}

func (v *Validator) validate(t *ir.Node) error {
	var violations []string
	if v.accept != nil {
		matchTemplate(t, v.accept, "", &violations)
	}
	env := ruleEnv(t)
	for _, r := range v.rules {
		out, err := expr.Run(r.prog, env)
		if err != nil {
			violations = append(violations, fmt.Sprintf("rule %q: %v", r.name, err))
			continue
		}
		if ok, _ := out.(bool); !ok {
			violations = append(violations, fmt.Sprintf("rule %q failed", r.name))
		}
	}
	if debug.Validate() {
		debug.Logf("validate %s: %d violations\n", encode.MustString(t), len(violations))
	}
	if len(violations) > 0 {
		return &ValidateError{Violations: violations}
	}
	return nil
}

func ruleEnv(t *ir.Node) map[string]any {
	if t.Type == ir.ObjectType {
		return ir.ToAny(t).(map[string]any)
	}
	return map[string]any{"items": ir.ToAny(t)}
}

// matchTemplate is a structural match: it walks doc and tmpl together
// and records every mismatch.
func matchTemplate(doc, tmpl *ir.Node, at string, out *[]string) {
	if tmpl.Type == ir.StringType && strings.HasPrefix(tmpl.String, "!") {
		matchKind(doc, tmpl.String, at, out)
		return
	}
	switch tmpl.Type {
	case ir.ObjectType:
		if doc.Type != ir.ObjectType {
			violatef(out, at, "is %s, not object", doc.Type)
			return
		}
		tmpl.Range(func(field string, sub *ir.Node) bool {
			dv := doc.Get(field)
			if dv == nil {
				violatef(out, joinPath(at, field), "is missing")
				return true
			}
			matchTemplate(dv, sub, joinPath(at, field), out)
			return true
		})
	case ir.ArrayType:
		if doc.Type != ir.ArrayType {
			violatef(out, at, "is %s, not array", doc.Type)
			return
		}
		if len(tmpl.Values) == 1 {
			for i, dv := range doc.Values {
				matchTemplate(dv, tmpl.Values[0], fmt.Sprintf("%s[%d]", at, i), out)
			}
			return
		}
		if len(doc.Values) != len(tmpl.Values) {
			violatef(out, at, "has %d elements, want %d", len(doc.Values), len(tmpl.Values))
			return
		}
		for i, dv := range doc.Values {
			matchTemplate(dv, tmpl.Values[i], fmt.Sprintf("%s[%d]", at, i), out)
		}
	default:
		if !ir.Equal(doc, tmpl) {
			violatef(out, at, "is %s, want %s", encode.MustString(doc), encode.MustString(tmpl))
		}
	}
}

func matchKind(doc *ir.Node, assert, at string, out *[]string) {
	switch assert {
	case "!any":
	case "!string":
		if doc.Type != ir.StringType {
			violatef(out, at, "is %s, not string", doc.Type)
		}
	case "!number":
		if doc.Type != ir.NumberType {
			violatef(out, at, "is %s, not number", doc.Type)
		}
	case "!bool":
		if doc.Type != ir.BoolType {
			violatef(out, at, "is %s, not bool", doc.Type)
		}
	case "!object":
		if doc.Type != ir.ObjectType {
			violatef(out, at, "is %s, not object", doc.Type)
		}
	case "!array":
		if doc.Type != ir.ArrayType {
			violatef(out, at, "is %s, not array", doc.Type)
		}
	case "!null":
		if doc.Type != ir.NullType {
			violatef(out, at, "is %s, not null", doc.Type)
		}
	default:
		// "!!x" asserts the literal string "!x"; anything else
		// was rejected by checkTemplate.
		want := strings.TrimPrefix(assert, "!")
		if doc.Type != ir.StringType || doc.String != want {
			violatef(out, at, "is %s, want %q", encode.MustString(doc), want)
		}
	}
}

var kindAsserts = map[string]bool{
	"!any":    true,
	"!string": true,
	"!number": true,
	"!bool":   true,
	"!object": true,
	"!array":  true,
	"!null":   true,
}

// checkTemplate rejects unknown "!" assertions up front so that typos
// fail at setup, not per document.
func checkTemplate(tmpl *ir.Node) error {
	switch tmpl.Type {
	case ir.StringType:
		s := tmpl.String
		if !strings.HasPrefix(s, "!") || strings.HasPrefix(s, "!!") {
			return nil
		}
		if !kindAsserts[s] {
			return fmt.Errorf("unknown assertion %q", s)
		}
		return nil
	case ir.ObjectType, ir.ArrayType:
		for _, v := range tmpl.Values {
			if err := checkTemplate(v); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

func violatef(out *[]string, at, format string, args ...any) {
	if at == "" {
		at = "document"
	}
	*out = append(*out, at+" "+fmt.Sprintf(format, args...))
}

func joinPath(at, field string) string {
	if at == "" {
		return field
	}
	return at + "." + field
}
