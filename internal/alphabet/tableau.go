package alphabet

import (
	"fmt"
	"strings"

	"wheelsolve/internal/domain"
)

// Tableau is a fixed table of substitution rows. A wheel residue for a
// table-keyed family selects one row; each row is a bijection on as much of
// the alphabet as the family reaches (Porta rows swap halves).
type Tableau struct {
	name   string
	rows   [][]domain.Symbol // rows[k][p] = c
	inv    [][]domain.Symbol // inv[k][c] = p
	rowFor [][]int           // rowFor[p][c] = k, or -1 when unreachable
}

// Name identifies the tableau in family names and result records.
func (t *Tableau) Name() string { return t.name }

// Rows is the number of residue values the tableau admits.
func (t *Tableau) Rows() int { return len(t.rows) }

// Encrypt maps plaintext p through row k.
func (t *Tableau) Encrypt(p domain.Symbol, k int) domain.Symbol { return t.rows[k][p] }

// Decrypt maps ciphertext c back through row k.
func (t *Tableau) Decrypt(c domain.Symbol, k int) domain.Symbol { return t.inv[k][c] }

// RowFor returns the unique row mapping p to c, if any.
func (t *Tableau) RowFor(p, c domain.Symbol) (int, bool) {
	k := t.rowFor[p][c]
	if k < 0 {
		return 0, false
	}
	return k, true
}

// build finalizes inv and rowFor from rows. Rows sharing a (p, c) mapping
// would make forcing ambiguous, so duplicates panic: every shipped tableau is
// constructed here and must be well formed.
func build(name string, rows [][]domain.Symbol) *Tableau {
	t := &Tableau{name: name, rows: rows}
	t.inv = make([][]domain.Symbol, len(rows))
	t.rowFor = make([][]int, Size)
	for p := range t.rowFor {
		t.rowFor[p] = make([]int, Size)
		for c := range t.rowFor[p] {
			t.rowFor[p][c] = -1
		}
	}
	for k, row := range rows {
		t.inv[k] = make([]domain.Symbol, Size)
		for c := range t.inv[k] {
			t.inv[k][c] = domain.Unknown
		}
		for p, c := range row {
			if t.inv[k][c].Known() {
				panic(fmt.Sprintf("alphabet: tableau %s row %d is not a bijection", name, k))
			}
			t.inv[k][c] = domain.Symbol(p)
			if t.rowFor[p][c] >= 0 {
				panic(fmt.Sprintf("alphabet: tableau %s rows %d and %d both map %c to %c",
					name, t.rowFor[p][c], k, 'A'+p, 'A'+c))
			}
			t.rowFor[p][c] = k
		}
	}
	return t
}

// Porta builds the classical reciprocal 13-row Porta tableau. Row r maps the
// first half of the alphabet into the second and vice versa; encryption and
// decryption coincide.
func Porta() *Tableau {
	const half = Size / 2
	rows := make([][]domain.Symbol, half)
	for r := range rows {
		row := make([]domain.Symbol, Size)
		for p := 0; p < half; p++ {
			row[p] = domain.Symbol(half + (p+r)%half)
		}
		for p := half; p < Size; p++ {
			row[p] = domain.Symbol((p - half - r + half) % half)
		}
		rows[r] = row
	}
	return build("porta", rows)
}

// QuagmireII keys the ciphertext alphabet: row r maps p to M[(p + r) mod 26]
// where M is the keyword-mixed alphabet.
func QuagmireII(keyword string) *Tableau {
	mixed := MixedAlphabet(keyword)
	rows := make([][]domain.Symbol, Size)
	for r := range rows {
		row := make([]domain.Symbol, Size)
		for p := 0; p < Size; p++ {
			row[p] = mixed[(p+r)%Size]
		}
		rows[r] = row
	}
	return build("quagmire2:"+normalizeKeyword(keyword), rows)
}

// QuagmireIII keys both alphabets with the same keyword: row r maps p to
// M[(M⁻¹[p] + r) mod 26].
func QuagmireIII(keyword string) *Tableau {
	mixed := MixedAlphabet(keyword)
	inv := invertAlphabet(mixed)
	rows := make([][]domain.Symbol, Size)
	for r := range rows {
		row := make([]domain.Symbol, Size)
		for p := 0; p < Size; p++ {
			row[p] = mixed[(int(inv[p])+r)%Size]
		}
		rows[r] = row
	}
	return build("quagmire3:"+normalizeKeyword(keyword), rows)
}

// QuagmireIV keys the plaintext and ciphertext alphabets independently:
// row r maps p to M2[(M1⁻¹[p] + r) mod 26].
func QuagmireIV(ptKeyword, ctKeyword string) *Tableau {
	pt := MixedAlphabet(ptKeyword)
	ct := MixedAlphabet(ctKeyword)
	inv := invertAlphabet(pt)
	rows := make([][]domain.Symbol, Size)
	for r := range rows {
		row := make([]domain.Symbol, Size)
		for p := 0; p < Size; p++ {
			row[p] = ct[(int(inv[p])+r)%Size]
		}
		rows[r] = row
	}
	return build("quagmire4:"+normalizeKeyword(ptKeyword)+","+normalizeKeyword(ctKeyword), rows)
}

// MixedAlphabet builds a keyword-mixed alphabet: the keyword's distinct
// letters first, then the remaining letters in order.
func MixedAlphabet(keyword string) []domain.Symbol {
	out := make([]domain.Symbol, 0, Size)
	var seen [Size]bool
	for _, r := range strings.ToUpper(keyword) {
		if r < 'A' || r > 'Z' {
			continue
		}
		s := domain.Symbol(r - 'A')
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for s := domain.Symbol(0); s < Size; s++ {
		if !seen[s] {
			out = append(out, s)
		}
	}
	return out
}

func invertAlphabet(mixed []domain.Symbol) []domain.Symbol {
	inv := make([]domain.Symbol, Size)
	for i, s := range mixed {
		inv[s] = domain.Symbol(i)
	}
	return inv
}

func normalizeKeyword(keyword string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(keyword) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
