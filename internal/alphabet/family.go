package alphabet

import (
	"fmt"
	"strings"

	"wheelsolve/internal/domain"
)

// Kind enumerates the supported cipher families.
type Kind uint8

const (
	Vigenere Kind = iota
	Beaufort
	VariantBeaufort
	TableKeyed
)

// Family is a closed tagged variant: an additive cipher identified by Kind
// alone, or a table-keyed cipher carrying its tableau.
type Family struct {
	Kind  Kind
	Table *Tableau // set iff Kind == TableKeyed
	name  string
}

// The three additive families.
var (
	VigenereFamily        = Family{Kind: Vigenere, name: "vigenere"}
	BeaufortFamily        = Family{Kind: Beaufort, name: "beaufort"}
	VariantBeaufortFamily = Family{Kind: VariantBeaufort, name: "variant-beaufort"}
)

// Keyed wraps a tableau as a table-keyed family.
func Keyed(t *Tableau) Family {
	return Family{Kind: TableKeyed, Table: t, name: t.Name()}
}

// Name is the stable identifier used in result records and plans.
func (f Family) Name() string { return f.name }

// Additive reports whether residues are raw add/sub key values, which is the
// precondition for the Option-A identity-residue policy.
func (f Family) Additive() bool { return f.Kind != TableKeyed }

// Residues is the number of legal residue values: 26 for additive families,
// the tableau row count otherwise.
func (f Family) Residues() int {
	if f.Kind == TableKeyed {
		return f.Table.Rows()
	}
	return Size
}

// Encrypt applies the family's encryption relation for residue k.
func (f Family) Encrypt(p domain.Symbol, k int) domain.Symbol {
	switch f.Kind {
	case Vigenere:
		return Add(p, k)
	case Beaufort:
		return domain.Symbol(Mod(k - int(p)))
	case VariantBeaufort:
		return Sub(p, k)
	case TableKeyed:
		return f.Table.Encrypt(p, k)
	}
	panic(fmt.Sprintf("alphabet: unhandled family kind %d", f.Kind))
}

// Decrypt inverts Encrypt for residue k.
func (f Family) Decrypt(c domain.Symbol, k int) domain.Symbol {
	switch f.Kind {
	case Vigenere:
		return Sub(c, k)
	case Beaufort:
		return domain.Symbol(Mod(k - int(c)))
	case VariantBeaufort:
		return Add(c, k)
	case TableKeyed:
		return f.Table.Decrypt(c, k)
	}
	panic(fmt.Sprintf("alphabet: unhandled family kind %d", f.Kind))
}

// KeyFor returns the residue that encrypts p to c. For additive families one
// always exists; for table-keyed families ok is false when no tableau row maps
// p to c (Porta never maps a letter within its own half).
func (f Family) KeyFor(p, c domain.Symbol) (k int, ok bool) {
	switch f.Kind {
	case Vigenere:
		return Mod(int(c) - int(p)), true
	case Beaufort:
		return Mod(int(p) + int(c)), true
	case VariantBeaufort:
		return Mod(int(p) - int(c)), true
	case TableKeyed:
		return f.Table.RowFor(p, c)
	}
	panic(fmt.Sprintf("alphabet: unhandled family kind %d", f.Kind))
}

// ParseFamily resolves a plan/CLI family name. Table-keyed names take the
// form "porta", "quagmire2:KEYWORD", "quagmire3:KEYWORD" or
// "quagmire4:PTKEY,CTKEY".
func ParseFamily(name string) (Family, error) {
	base, arg, _ := strings.Cut(name, ":")
	switch strings.ToLower(base) {
	case "vigenere":
		return VigenereFamily, nil
	case "beaufort":
		return BeaufortFamily, nil
	case "variant-beaufort":
		return VariantBeaufortFamily, nil
	case "porta":
		return Keyed(Porta()), nil
	case "quagmire2":
		if arg == "" {
			return Family{}, fmt.Errorf("family %q requires a keyword", name)
		}
		return Keyed(QuagmireII(arg)), nil
	case "quagmire3":
		if arg == "" {
			return Family{}, fmt.Errorf("family %q requires a keyword", name)
		}
		return Keyed(QuagmireIII(arg)), nil
	case "quagmire4":
		pt, ct, found := strings.Cut(arg, ",")
		if !found || pt == "" || ct == "" {
			return Family{}, fmt.Errorf("family %q requires two keywords", name)
		}
		return Keyed(QuagmireIV(pt, ct)), nil
	}
	return Family{}, fmt.Errorf("unknown cipher family %q", name)
}
