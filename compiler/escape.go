package compiler

// Escape parity: "%%" is one literal percent. In a run of n consecutive '%',
// the first n-n%2 form escaped pairs and only an odd leftover (the last '%' of
// the run) can open a specifier or back-reference.

// percentsBefore counts the consecutive '%' immediately before s[i]
func percentsBefore(s string, i int) int {
	n := 0
	for k := i - 1; k >= 0 && s[k] == '%'; k-- {
		n++
	}
	return n
}

// percentRun returns the end of the run of '%' starting at s[i]
func percentRun(s string, i int) int {
	j := i
	for j < len(s) && s[j] == '%' {
		j++
	}
	return j
}

// IsEscaped reports whether the '%' at s[i] is consumed by an escape pair
// rather than being free to start a conversion.
func IsEscaped(s string, i int) bool {
	return percentsBefore(s, i)%2 != 0
}
