package ast

type NodeType string

const (
	NodeVar    NodeType = "Var"
	NodeLet    NodeType = "Let"
	NodeAdd    NodeType = "Add"
	NodeNumber NodeType = "Number"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Term is the expression category: the closed set of shapes the evaluator
// understands. Terms are built once by a caller and never mutated afterwards.
type Term interface {
	Node
	termNode()
}

type termMarker struct{}

func (termMarker) termNode() {}

// Var references a binding by name.

type Var struct {
	nodeImpl
	termMarker

	Name string `json:"name"`
}

func NewVar(name string) *Var {
	return &Var{nodeImpl: newNodeImpl(NodeVar), Name: name}
}

// Let binds the result of Value under Name while evaluating Body.

type Let struct {
	nodeImpl
	termMarker

	Name  string `json:"name"`
	Value Term   `json:"value"`
	Body  Term   `json:"body"`
}

func NewLet(name string, value, body Term) *Let {
	return &Let{nodeImpl: newNodeImpl(NodeLet), Name: name, Value: value, Body: body}
}

// Add is two-operand numeric addition.

type Add struct {
	nodeImpl
	termMarker

	Left  Term `json:"left"`
	Right Term `json:"right"`
}

func NewAdd(left, right Term) *Add {
	return &Add{nodeImpl: newNodeImpl(NodeAdd), Left: left, Right: right}
}

// Number is an integer literal.

type Number struct {
	nodeImpl
	termMarker

	Value int64 `json:"value"`
}

func NewNumber(value int64) *Number {
	return &Number{nodeImpl: newNodeImpl(NodeNumber), Value: value}
}
