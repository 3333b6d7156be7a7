package compiler

// Binding is one specifier-bound option: the specifier and the raw value it
// consumed, before any stringification.
type Binding struct {
	Specifier Specifier
	Value     any
}

// Registry records bindings in declaration order. Index n (1-based) names the
// nth binding and never changes once assigned.
type Registry []Binding

// Lookup returns the binding for back-reference %n
func (r Registry) Lookup(n int) (Binding, bool) {
	if n < 1 || n > len(r) {
		return Binding{}, false
	}
	return r[n-1], true
}

// Len returns the number of bindings
func (r Registry) Len() int {
	return len(r)
}

// Values returns the raw bound values in declaration order
func (r Registry) Values() []any {
	values := make([]any, len(r))
	for i, b := range r {
		values[i] = b.Value
	}
	return values
}

// Specifiers returns the bound specifier texts in declaration order
func (r Registry) Specifiers() []string {
	specs := make([]string, len(r))
	for i, b := range r {
		specs[i] = b.Specifier.Text
	}
	return specs
}
