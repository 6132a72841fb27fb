package extract

// Param is one declared parameter: its name plus optional annotation text.
type Param struct {
	Name string
	Type string
}

// Signature describes a callable: parameters in declaration order and an
// optional return annotation rendered as source text.
type Signature struct {
	Params []Param
	Return string
}

// Method pairs a method name with its signature. Methods keep the order they
// were discovered in within one class body.
type Method struct {
	Name      string
	Signature Signature
}

// ClassRecord is one discovered class definition. Attribute slices are sorted
// and partitioned by visibility; a name appears in at most one of the two sets.
type ClassRecord struct {
	Name              string
	Attributes        []string
	PrivateAttributes []string
	Methods           []Method
	PrivateMethods    []Method
	Module            string
	Package           string
}

// FunctionRecord is one module-level function, with its decorators in
// declaration order.
type FunctionRecord struct {
	Name       string
	Signature  Signature
	Decorators []string
}
