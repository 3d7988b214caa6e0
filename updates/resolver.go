package updates

import (
	"fmt"
	"strings"

	"hms_back_end_go/errs"
)

// ToggleToken is the sentinel value that flips a two-state status field
// instead of setting it literally.
const ToggleToken = "toggle"

// Patch is an explicit optional-field structure built from a request body:
// each mutable field is either present with a value or absent. Fields keep
// the order in which they were set.
type Patch struct {
	fields []patchField
}

type patchField struct {
	name  string
	value string
}

// Set records a field when the bound pointer is non-nil. A nil pointer means
// the field was absent from the request body.
func (p *Patch) Set(name string, v *string) {
	if v == nil {
		return
	}
	p.fields = append(p.fields, patchField{name: name, value: *v})
}

// SetValue records a field unconditionally.
func (p *Patch) SetValue(name, value string) {
	p.fields = append(p.fields, patchField{name: name, value: value})
}

// Len reports how many fields are present in the patch.
func (p *Patch) Len() int {
	return len(p.fields)
}

// Rule whitelists one mutable column.
type Rule struct {
	// Column is both the patch field name and the SQL column.
	Column string
	// Validate rejects malformed values. The whole update fails on the
	// first failing field.
	Validate func(string) error
	// Transform normalizes the value after validation, e.g. HH:MM -> HH:MM:SS.
	Transform func(string) (string, error)
	// Toggle enables the "toggle" sentinel: the incoming token resolves to
	// the complement of the current stored value within the pair.
	Toggle [2]string
}

func (r Rule) hasToggle() bool {
	return r.Toggle != [2]string{}
}

// Resolver computes minimal set-clauses from a row snapshot and a patch.
type Resolver struct {
	rules []Rule
}

func NewResolver(rules ...Rule) *Resolver {
	return &Resolver{rules: rules}
}

func (r *Resolver) rule(name string) *Rule {
	for i := range r.rules {
		if r.rules[i].Column == name {
			return &r.rules[i]
		}
	}
	return nil
}

// Assignment is one column update.
type Assignment struct {
	Column string
	Value  string
}

// Clause is the resolved, non-empty set of column updates.
type Clause struct {
	Assignments []Assignment
}

// SetClause renders the assignments as a SQL SET fragment with positional
// placeholders starting at argOffset, plus the matching argument slice.
func (cl *Clause) SetClause(argOffset int) (string, []interface{}) {
	parts := make([]string, len(cl.Assignments))
	args := make([]interface{}, len(cl.Assignments))
	for i, a := range cl.Assignments {
		parts[i] = fmt.Sprintf("%s = $%d", a.Column, argOffset+i)
		args[i] = a.Value
	}
	return strings.Join(parts, ", "), args
}

// Resolve filters the patch through the whitelist and returns the set-clause
// of changed fields. Fields outside the whitelist are ignored. A present
// field failing its validator fails the whole update with a ValidationError
// naming that field. Assignments equal to the current stored value are
// dropped; if nothing remains the update is a NoOpError. Resolve is pure:
// callers check row existence beforehand and issue the write themselves.
func (r *Resolver) Resolve(current map[string]string, p Patch) (*Clause, error) {
	clause := &Clause{}
	recognized := 0
	for _, f := range p.fields {
		rule := r.rule(f.name)
		if rule == nil {
			continue
		}
		recognized++

		value := f.value
		if rule.hasToggle() && value == ToggleToken {
			if current[rule.Column] == rule.Toggle[1] {
				value = rule.Toggle[0]
			} else {
				value = rule.Toggle[1]
			}
		}
		if rule.Validate != nil {
			if err := rule.Validate(value); err != nil {
				return nil, err
			}
		}
		if rule.Transform != nil {
			transformed, err := rule.Transform(value)
			if err != nil {
				return nil, &errs.ValidationError{Field: f.name, Reason: err.Error()}
			}
			value = transformed
		}
		if stored, ok := current[rule.Column]; ok && stored == value {
			continue
		}
		clause.Assignments = append(clause.Assignments, Assignment{Column: rule.Column, Value: value})
	}

	if recognized == 0 {
		return nil, &errs.NoOpError{Reason: "At least one field must be provided"}
	}
	if len(clause.Assignments) == 0 {
		return nil, &errs.NoOpError{Reason: "No changes applied"}
	}
	return clause, nil
}
