package alphabet

import "wheelsolve/internal/domain"

// Size mirrors domain.AlphabetSize for local arithmetic.
const Size = domain.AlphabetSize

// Mod reduces x into 0..25, handling negative values.
func Mod(x int) int {
	x %= Size
	if x < 0 {
		x += Size
	}
	return x
}

// Add returns (s + k) mod 26 as a symbol.
func Add(s domain.Symbol, k int) domain.Symbol {
	return domain.Symbol(Mod(int(s) + k))
}

// Sub returns (s - k) mod 26 as a symbol.
func Sub(s domain.Symbol, k int) domain.Symbol {
	return domain.Symbol(Mod(int(s) - k))
}
