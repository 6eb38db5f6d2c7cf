package strcomp

// EqualFold compares two strings ignoring the case of ASCII letters only. Unlike the plain
// `c|0x20` trick, pairs like '^' and '~' or '@' and '`' are not considered equal.
func EqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}

	return true
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c | 0x20
	}

	return c
}
