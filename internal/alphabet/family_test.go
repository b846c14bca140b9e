package alphabet_test

import (
	"testing"

	"wheelsolve/internal/alphabet"
	"wheelsolve/internal/domain"
)

// allFamilies returns one instance of every family kind.
func allFamilies(t *testing.T) []alphabet.Family {
	t.Helper()
	return []alphabet.Family{
		alphabet.VigenereFamily,
		alphabet.BeaufortFamily,
		alphabet.VariantBeaufortFamily,
		alphabet.Keyed(alphabet.Porta()),
		alphabet.Keyed(alphabet.QuagmireII("PALIMPSEST")),
		alphabet.Keyed(alphabet.QuagmireIII("ABSCISSA")),
		alphabet.Keyed(alphabet.QuagmireIV("PALIMPSEST", "ABSCISSA")),
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	for _, fam := range allFamilies(t) {
		for k := 0; k < fam.Residues(); k++ {
			for p := domain.Symbol(0); p < domain.AlphabetSize; p++ {
				c := fam.Encrypt(p, k)
				if !c.Known() {
					t.Fatalf("%s: Encrypt(%d, %d) out of alphabet", fam.Name(), p, k)
				}
				if got := fam.Decrypt(c, k); got != p {
					t.Fatalf("%s: Decrypt(Encrypt(%d, %d)) = %d", fam.Name(), p, k, got)
				}
			}
		}
	}
}

func TestKeyForInvertsEncrypt(t *testing.T) {
	for _, fam := range allFamilies(t) {
		for k := 0; k < fam.Residues(); k++ {
			for p := domain.Symbol(0); p < domain.AlphabetSize; p++ {
				c := fam.Encrypt(p, k)
				got, ok := fam.KeyFor(p, c)
				if !ok {
					t.Fatalf("%s: KeyFor(%d, %d) found no residue", fam.Name(), p, c)
				}
				if got != k {
					t.Fatalf("%s: KeyFor(%d, %d) = %d, want %d", fam.Name(), p, c, got, k)
				}
			}
		}
	}
}

func TestVigenereRelations(t *testing.T) {
	// c = p + k: spot-check the arithmetic is not just self-consistent.
	if c := alphabet.VigenereFamily.Encrypt(7, 3); c != 10 {
		t.Fatalf("vigenere Encrypt(7, 3) = %d, want 10", c)
	}
	if c := alphabet.BeaufortFamily.Encrypt(7, 3); c != 22 {
		t.Fatalf("beaufort Encrypt(7, 3) = %d, want 22", c) // k - p = 3 - 7 mod 26
	}
	if c := alphabet.VariantBeaufortFamily.Encrypt(7, 3); c != 4 {
		t.Fatalf("variant-beaufort Encrypt(7, 3) = %d, want 4", c)
	}
}

func TestPortaIsReciprocal(t *testing.T) {
	fam := alphabet.Keyed(alphabet.Porta())
	for k := 0; k < fam.Residues(); k++ {
		for p := domain.Symbol(0); p < domain.AlphabetSize; p++ {
			c := fam.Encrypt(p, k)
			if (p < 13) == (c < 13) {
				t.Fatalf("porta row %d keeps %c in its own half (%c)", k, p.Rune(), c.Rune())
			}
			if back := fam.Encrypt(c, k); back != p {
				t.Fatalf("porta row %d not reciprocal: %c -> %c -> %c", k, p.Rune(), c.Rune(), back.Rune())
			}
		}
	}
}

func TestPortaKeyForSameHalfImpossible(t *testing.T) {
	fam := alphabet.Keyed(alphabet.Porta())
	if _, ok := fam.KeyFor(0, 1); ok {
		t.Fatal("porta KeyFor(A, B) should have no row: both letters in the first half")
	}
}

func TestMixedAlphabet(t *testing.T) {
	got := alphabet.MixedAlphabet("KRYPTOS")
	want, err := domain.ParseText("KRYPTOSABCDEFGHIJLMNQUVWXZ")
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("mixed alphabet length %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("mixed alphabet[%d] = %c, want %c", i, got[i].Rune(), want[i].Rune())
		}
	}
}

func TestParseFamily(t *testing.T) {
	for _, name := range []string{"vigenere", "beaufort", "variant-beaufort", "porta", "quagmire2:LEMON", "quagmire3:LEMON", "quagmire4:LEMON,ORANGE"} {
		fam, err := alphabet.ParseFamily(name)
		if err != nil {
			t.Fatalf("ParseFamily(%q): %v", name, err)
		}
		if fam.Kind == alphabet.TableKeyed && fam.Table == nil {
			t.Fatalf("ParseFamily(%q) lost its tableau", name)
		}
	}
	if _, err := alphabet.ParseFamily("caesar"); err == nil {
		t.Fatal("ParseFamily accepted an unknown family")
	}
	if _, err := alphabet.ParseFamily("quagmire3"); err == nil {
		t.Fatal("ParseFamily accepted quagmire3 without a keyword")
	}
}
