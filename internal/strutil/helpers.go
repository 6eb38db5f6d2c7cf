package strutil

import "strings"

func LStripWS(str string) string {
	for i, c := range str {
		switch c {
		case ' ', '\t':
		default:
			return str[i:]
		}
	}

	return ""
}

func RStripWS(str string) string {
	for i := len(str); i > 0; i-- {
		switch str[i-1] {
		case ' ', '\t', '\r':
		default:
			return str[:i]
		}
	}

	return ""
}

// CutField splits a `Key: value` line. Optional whitespace around the value is stripped,
// the key is kept exactly as is. Pseudo-header keys (":status") are supported, so the colon
// separating the key from the value is searched starting from the second character.
func CutField(line string) (key, value string, ok bool) {
	if len(line) < 2 {
		return "", "", false
	}

	colon := strings.IndexByte(line[1:], ':')
	if colon == -1 {
		return "", "", false
	}

	colon++
	key = line[:colon]
	if len(RStripWS(key)) != len(key) {
		return "", "", false
	}

	return key, RStripWS(LStripWS(line[colon+1:])), true
}
