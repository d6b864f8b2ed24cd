package domain

// IsFinalCode reports whether a team code is a definitive 3-letter
// IIHF country code such as "CAN". Anything else is a placeholder.
func IsFinalCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}
