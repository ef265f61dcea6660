package runtime

import "strconv"

// Kind identifies the runtime value category.
type Kind int

const (
	KindNumber Kind = iota
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindError:
		return "error"
	default:
		return "unknown_kind_" + strconv.Itoa(int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
	String() string
}

// NumberValue wraps an evaluated integer.
type NumberValue struct {
	Val int64
}

func (v NumberValue) Kind() Kind     { return KindNumber }
func (v NumberValue) String() string { return strconv.FormatInt(v.Val, 10) }

// ErrorValue is the uniform failure sentinel. It carries no payload: the
// evaluator reports every failure mode (unbound variable, malformed term,
// non-number operand) through this one value.
type ErrorValue struct{}

func (ErrorValue) Kind() Kind     { return KindError }
func (ErrorValue) String() string { return "error" }
