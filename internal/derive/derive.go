// Package derive decrypts every position whose wheel slot is known, leaving
// the rest as the explicit unknown sentinel.
package derive

import (
	"wheelsolve/internal/domain"
	"wheelsolve/internal/route"
	"wheelsolve/internal/wheel"
)

// DefaultMaxPasses bounds the autokey fixed-point iteration.
const DefaultMaxPasses = 3

// Options selects the optional running-key feedback mode.
type Options struct {
	// Autokey enables fixed-point iteration: positions whose slot is
	// unknown may instead take their key from plaintext derived at an
	// earlier position.
	Autokey bool
	// Delay is the feedback distance: the key for wheel-order position j
	// is the plaintext derived at j - Delay.
	Delay int
	// MaxPasses caps the iteration; zero means DefaultMaxPasses.
	MaxPasses int
}

// Derive maps the ciphertext through the route, decrypts each position whose
// wheel residue is known, then unmaps back to original order. The returned
// count is the number of determined positions.
//
// With autokey enabled the single pass repeats: each pass may use plaintext
// derived in an earlier pass as key material for still-undetermined slots.
// Iteration halts when a pass makes no new determination or the pass cap is
// reached. This is the one sequential dependency inside a combination.
func Derive(bank *wheel.Bank, ciphertext []domain.Symbol, rt *route.Route, opt Options) ([]domain.Symbol, int) {
	routed := rt.Apply(ciphertext)
	plain := make([]domain.Symbol, len(routed))
	for i := range plain {
		plain[i] = domain.Unknown
	}

	passes := 1
	if opt.Autokey {
		passes = opt.MaxPasses
		if passes <= 0 {
			passes = DefaultMaxPasses
		}
	}

	forced := 0
	for pass := 0; pass < passes; pass++ {
		progressed := false
		for j, c := range routed {
			if plain[j].Known() {
				continue
			}
			w, slot := bank.WheelFor(j)
			if k, ok := w.Residue(slot); ok {
				plain[j] = w.Family.Decrypt(c, k)
				forced++
				progressed = true
				continue
			}
			if opt.Autokey {
				if fed, ok := feedbackKey(plain, j, opt.Delay); ok {
					plain[j] = w.Family.Decrypt(c, fed)
					forced++
					progressed = true
				}
			}
		}
		if !progressed {
			break
		}
	}

	return rt.Invert(plain), forced
}

// feedbackKey returns the running-key residue for wheel-order position j,
// when the plaintext it depends on has already been derived.
func feedbackKey(plain []domain.Symbol, j, delay int) (int, bool) {
	if delay <= 0 {
		delay = 1
	}
	src := j - delay
	if src < 0 || !plain[src].Known() {
		return 0, false
	}
	return int(plain[src]), true
}

// Reencrypt runs the wheel bank forward over a fully derived plaintext,
// reapplying the route, to check closure round-trips. Positions whose slot is
// unknown come back as Unknown.
func Reencrypt(bank *wheel.Bank, plaintext []domain.Symbol, rt *route.Route) []domain.Symbol {
	routed := rt.Apply(plaintext)
	cipher := make([]domain.Symbol, len(routed))
	for j, p := range routed {
		w, slot := bank.WheelFor(j)
		if k, ok := w.Residue(slot); ok && p.Known() {
			cipher[j] = w.Family.Encrypt(p, k)
		} else {
			cipher[j] = domain.Unknown
		}
	}
	return rt.Invert(cipher)
}
