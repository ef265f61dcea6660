// Package driver loads letcalc program documents: YAML files that carry an
// already-structured term, optionally together with an expected result. The
// document is structured data, not source text — there is no lexer or parser
// here, only strict decoding of the tagged term tree.
package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"letcalc/interpreter-go/pkg/ast"
	"letcalc/interpreter-go/pkg/runtime"
)

// Program represents the parsed contents of a program document.
type Program struct {
	Path string
	Name string
	Term ast.Term

	// Expect is the declared expected result, or nil when the document
	// carries no expectation.
	Expect runtime.Value
}

// ValidationError aggregates document validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "document: invalid program"
	}
	var b strings.Builder
	b.WriteString("document validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadProgram parses a program document from disk, returning a validated
// program with its term built.
func LoadProgram(path string) (*Program, error) {
	if path == "" {
		return nil, fmt.Errorf("document: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("document: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("document: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw programFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("document: %s is empty", absPath)
		}
		return nil, fmt.Errorf("document: parse %s: %w", absPath, err)
	}

	return raw.toProgram(absPath)
}

// programFile mirrors the on-disk document shape.
type programFile struct {
	Name   string      `yaml:"name"`
	Term   *termNode   `yaml:"term"`
	Expect *expectNode `yaml:"expect"`
}

// termNode is the tagged term encoding: exactly one of the variant keys must
// be present per node.
type termNode struct {
	Var    *string  `yaml:"var"`
	Number *int64   `yaml:"number"`
	Add    *addNode `yaml:"add"`
	Let    *letNode `yaml:"let"`
}

type addNode struct {
	Lhs *termNode `yaml:"lhs"`
	Rhs *termNode `yaml:"rhs"`
}

type letNode struct {
	Name  *string   `yaml:"name"`
	Value *termNode `yaml:"value"`
	Body  *termNode `yaml:"body"`
}

type expectNode struct {
	Number *int64 `yaml:"number"`
	Error  *bool  `yaml:"error"`
}

func (f *programFile) toProgram(path string) (*Program, error) {
	var errs ValidationError

	var term ast.Term
	if f.Term == nil {
		errs.Issues = append(errs.Issues, "term must be provided")
	} else {
		term = f.Term.toTerm("term", &errs)
	}

	var expect runtime.Value
	if f.Expect != nil {
		expect = f.Expect.toValue(&errs)
	}

	if len(errs.Issues) > 0 {
		return nil, &errs
	}
	return &Program{Path: path, Name: f.Name, Term: term, Expect: expect}, nil
}

func (n *termNode) variantCount() int {
	count := 0
	if n.Var != nil {
		count++
	}
	if n.Number != nil {
		count++
	}
	if n.Add != nil {
		count++
	}
	if n.Let != nil {
		count++
	}
	return count
}

// toTerm builds the AST node at the given document path, appending issues
// for malformed shapes. It returns nil when the node is invalid; callers only
// use the result once validation passed.
func (n *termNode) toTerm(at string, errs *ValidationError) ast.Term {
	if n == nil {
		errs.Issues = append(errs.Issues, fmt.Sprintf("%s must be a term node", at))
		return nil
	}
	if count := n.variantCount(); count != 1 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("%s must use exactly one of var/number/add/let, found %d", at, count))
		return nil
	}

	switch {
	case n.Var != nil:
		if *n.Var == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("%s.var must be a non-empty name", at))
			return nil
		}
		return ast.NewVar(*n.Var)
	case n.Number != nil:
		return ast.NewNumber(*n.Number)
	case n.Add != nil:
		lhs := n.Add.Lhs.toTerm(at+".add.lhs", errs)
		rhs := n.Add.Rhs.toTerm(at+".add.rhs", errs)
		if lhs == nil || rhs == nil {
			return nil
		}
		return ast.NewAdd(lhs, rhs)
	default:
		if n.Let.Name == nil || *n.Let.Name == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("%s.let.name must be a non-empty name", at))
		}
		value := n.Let.Value.toTerm(at+".let.value", errs)
		body := n.Let.Body.toTerm(at+".let.body", errs)
		if n.Let.Name == nil || value == nil || body == nil {
			return nil
		}
		return ast.NewLet(*n.Let.Name, value, body)
	}
}

func (n *expectNode) toValue(errs *ValidationError) runtime.Value {
	switch {
	case n.Number != nil && n.Error == nil:
		return runtime.NumberValue{Val: *n.Number}
	case n.Number == nil && n.Error != nil && *n.Error:
		return runtime.ErrorValue{}
	default:
		errs.Issues = append(errs.Issues, "expect must be either { number: N } or { error: true }")
		return nil
	}
}
