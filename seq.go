package chtype

// splitSequence splits the inner body of a tuple or array literal into its
// top-level elements. A comma separates elements only when it is outside a
// single-quoted run and at zero bracket and paren depth. It is also used on
// type names to split the arguments of parametric types, which follow the
// same nesting rules.
//
// splitSequence classifies literal quote and bracket characters only; it runs
// after escape decoding of the whole literal and must not interpret escapes
// itself. Unterminated quoting or bracketing is not an error: the remainder
// is flushed into the final element.
func splitSequence(s string) []string {
	if s == "" {
		return nil
	}

	var (
		elems    []string
		start    int
		quoted   bool
		brackets int
		parens   int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\'':
			quoted = !quoted
		case '[':
			if !quoted {
				brackets++
			}
		case ']':
			if !quoted {
				brackets--
			}
		case '(':
			if !quoted {
				parens++
			}
		case ')':
			if !quoted {
				parens--
			}
		case ',':
			if !quoted && brackets == 0 && parens == 0 {
				elems = append(elems, s[start:i])
				start = i + 1
			}
		}
	}
	return append(elems, s[start:])
}
