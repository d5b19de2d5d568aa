// Package dotbracket parses dot-bracket secondary structures into base-pair
// maps and extracts stacked helices from them.
//
// Positions are byte offsets into the structure string. Intermolecular
// structures keep their '&' separator as an ordinary unpaired position.
package dotbracket
