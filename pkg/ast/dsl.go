package ast

// Term builder helpers, mirroring the constructors with less ceremony.

func ID(name string) *Var {
	return NewVar(name)
}

func Num(value int64) *Number {
	return NewNumber(value)
}

func Sum(left, right Term) *Add {
	return NewAdd(left, right)
}

func LetIn(name string, value, body Term) *Let {
	return NewLet(name, value, body)
}
