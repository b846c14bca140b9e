// Package alphabet exposes the fixed-radix arithmetic used by every wheel.
//
// Contents
//
//   - Mod-26 helpers over domain.Symbol values (Mod, Add, Sub)
//   - A closed Family type covering the additive ciphers (Vigenère,
//     Beaufort, Variant-Beaufort) and fixed-tableau variants (Porta,
//     Quagmire II/III/IV) behind one exhaustive switch
//   - Tableau construction for the table-keyed families, including
//     keyword-mixed alphabets
//
// # Notes
//
// For additive families a wheel residue is the raw key value 0..25; for
// table-keyed families it is a row index into the family's tableau. Family
// methods never dispatch on strings: the Kind enum is matched exhaustively,
// so adding a family is a compiler-checked change.
package alphabet
