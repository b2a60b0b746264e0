package label

// Symbol is an ISO-4217 style three-letter currency code, e.g. USD
type Symbol string

func (s Symbol) String() string {
	return string(s)
}

// Valid reports whether s has the shape of a currency code: exactly three ASCII uppercase letters
func (s Symbol) Valid() bool {
	if len(s) != 3 {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}

	return true
}
