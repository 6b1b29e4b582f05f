package renderer

// Result is the view model for a single computed value.
type Result struct {
	// Title of the document, usually the formula name.
	Title string
	// Inputs are the arguments the value was computed from, in display order.
	Inputs []Input
	// Label and Value are the computed result.
	Label string
	Value string
}

// Input is one named argument of a computation.
type Input struct {
	Name  string
	Value string
}

// NewResult creates a Result view model.
func NewResult(title, label, value string) *Result {
	return &Result{Title: title, Label: label, Value: value}
}

// With appends a named input and returns the result for chaining.
func (r *Result) With(name, value string) *Result {
	r.Inputs = append(r.Inputs, Input{Name: name, Value: value})
	return r
}
