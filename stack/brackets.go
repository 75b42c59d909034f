package stack

// closers maps each closing bracket to its opener.
var closers = map[rune]rune{
	')': '(',
	']': '[',
	'}': '{',
}

// Balanced reports whether every (, [ and { in expr is closed by the
// matching bracket in properly nested order. Other runes are ignored; the
// empty string is balanced.
func Balanced(expr string) bool {
	st := New[rune]()
	for _, c := range expr {
		switch c {
		case '(', '[', '{':
			st.Push(c)
		case ')', ']', '}':
			top, err := st.Pop()
			if err != nil || top != closers[c] {
				return false
			}
		}
	}
	return st.IsEmpty()
}
