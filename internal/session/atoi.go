package session

import "math"

// Atoi reads a leading decimal integer the lenient way: leading whitespace
// and a sign are accepted, parsing stops at the first non-digit and no
// digits at all read as 0. Values saturate instead of overflowing.
func Atoi(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || (s[i] >= '\t' && s[i] <= '\r')) {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := int(s[i] - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
			continue
		}
		n = n*10 + d
	}
	if neg {
		return -n
	}
	return n
}
