// Package uritemplates implements the small subset of RFC 6570 used to build
// riot api urls: simple "{name}" and reserved "{+name}" expressions.
package uritemplates

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrMalformed is returned by Parse for unbalanced or empty braces.
	ErrMalformed = errors.New("uritemplates: malformed template")
)

type part struct {
	literal  string
	name     string
	reserved bool
}

func (p part) isExpr() bool { return p.name != "" }

// Template is an immutable, parsed uri template.
// Values recorded with Bind are applied on Expand.
type Template struct {
	raw   string
	parts []part
	bound map[string]string
}

// Parse parses a template string.
func Parse(raw string) (*Template, error) {
	t := &Template{raw: raw}

	rest := raw
	for len(rest) > 0 {
		open := strings.IndexByte(rest, '{')
		if rb := strings.IndexByte(rest, '}'); rb != -1 && (open == -1 || rb < open) {
			return nil, fmt.Errorf("%w: unexpected '}' in %q", ErrMalformed, raw)
		}
		if open == -1 {
			t.parts = append(t.parts, part{literal: rest})
			break
		}
		if open > 0 {
			t.parts = append(t.parts, part{literal: rest[:open]})
		}

		rest = rest[open+1:]
		end := strings.IndexByte(rest, '}')
		if end == -1 {
			return nil, fmt.Errorf("%w: unclosed '{' in %q", ErrMalformed, raw)
		}

		expr := rest[:end]
		rest = rest[end+1:]

		p := part{}
		if strings.HasPrefix(expr, "+") {
			p.reserved = true
			expr = expr[1:]
		}
		if expr == "" || strings.ContainsAny(expr, "{+") {
			return nil, fmt.Errorf("%w: bad expression in %q", ErrMalformed, raw)
		}
		p.name = expr
		t.parts = append(t.parts, p)
	}

	return t, nil
}

// MustParse is like Parse but panics on error.
// It is meant for package level templates.
func MustParse(raw string) *Template {
	t, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return t
}

// Bind returns a copy of t with name bound to value.
// A later Bind of the same name wins. Binding a name the template
// does not contain is a no-op.
func (t *Template) Bind(name, value string) *Template {
	if !t.Has(name) {
		return t
	}

	nt := &Template{raw: t.raw, parts: t.parts, bound: make(map[string]string, len(t.bound)+1)}
	for k, v := range t.bound {
		nt.bound[k] = v
	}
	nt.bound[name] = value
	return nt
}

// Append returns a new template made of t followed by suffix.
func (t *Template) Append(suffix string) (*Template, error) {
	s, err := Parse(suffix)
	if err != nil {
		return nil, err
	}

	nt := &Template{
		raw:   t.raw + suffix,
		parts: make([]part, 0, len(t.parts)+len(s.parts)),
		bound: t.bound,
	}
	nt.parts = append(nt.parts, t.parts...)
	nt.parts = append(nt.parts, s.parts...)
	return nt, nil
}

// Has returns true if the template contains an expression named name.
func (t *Template) Has(name string) bool {
	for _, p := range t.parts {
		if p.name == name {
			return true
		}
	}
	return false
}

// Names returns names of the expressions which are not bound yet.
func (t *Template) Names() []string {
	var names []string
	seen := make(map[string]bool)
	for _, p := range t.parts {
		if !p.isExpr() || seen[p.name] {
			continue
		}
		seen[p.name] = true
		if _, ok := t.bound[p.name]; !ok {
			names = append(names, p.name)
		}
	}
	return names
}

// Expand substitutes every expression in a single pass.
// values take precedence over bound values.
//
// Simple expressions are path escaped element by element, keeping the ','
// separating list items. Reserved ones are copied verbatim.
// Substituted text is never scanned again.
func (t *Template) Expand(values map[string]string) (string, error) {
	var buf bytes.Buffer

	for _, p := range t.parts {
		if !p.isExpr() {
			buf.WriteString(p.literal)
			continue
		}

		v, ok := values[p.name]
		if !ok {
			v, ok = t.bound[p.name]
		}
		if !ok {
			return "", fmt.Errorf("uritemplates: no value for %q in %q", p.name, t.raw)
		}

		if p.reserved {
			buf.WriteString(v)
		} else {
			writeEscaped(&buf, v)
		}
	}

	return buf.String(), nil
}

func writeEscaped(buf *bytes.Buffer, v string) {
	for i, item := range strings.Split(v, ",") {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(url.PathEscape(item))
	}
}

// String returns the raw template.
func (t *Template) String() string {
	return t.raw
}
