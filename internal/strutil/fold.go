package strutil

// IsUpperASCII tells whether the character is an ASCII capital letter.
func IsUpperASCII(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// AppendLower appends str to dst with every ASCII capital letter lowercased. Other bytes,
// including non-ASCII ones, are copied as is.
func AppendLower(dst []byte, str string) []byte {
	for i := 0; i < len(str); i++ {
		c := str[i]
		if IsUpperASCII(c) {
			c |= 0x20
		}

		dst = append(dst, c)
	}

	return dst
}

// ToLower lowercases ASCII letters. In case there's nothing to lowercase, the string is
// returned without allocating.
func ToLower(str string) string {
	for i := 0; i < len(str); i++ {
		if IsUpperASCII(str[i]) {
			buff := make([]byte, i, len(str))
			copy(buff, str[:i])
			return string(AppendLower(buff, str[i:]))
		}
	}

	return str
}
