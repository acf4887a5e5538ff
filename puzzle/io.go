package puzzle

import (
	"strings"
)

/*

Print forms of grid values

*/

var (
	valueStrings = []string{
		"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
		"A", "B", "C", "D", "E", "F", "G", "H", "I", "J",
		"K", "L", "M", "N", "O", "P",
	}
	nonValueString = "?"
	bigValueString = "!"
)

func vstr(i int) string {
	if i < 0 {
		return nonValueString
	}
	if i < len(valueStrings) {
		return valueStrings[i]
	}
	return bigValueString
}

/*

Diagnostic rendering

*/

// String renders a grid for diagnostics: one line per row of
// value characters (0 for unknown cells), each row broken into
// sector-size chunks separated by "|", and a separator line of
// sector-size dash groups joined by "+" between sector bands.
func (g *Grid) String() string {
	if g == nil {
		return ""
	}
	slen, seclen := g.mapping.sidelen, g.mapping.sectorLen
	dashes := strings.Repeat("-", seclen)
	var b strings.Builder
	for ri := 0; ri < slen; ri++ {
		if ri > 0 && ri%seclen == 0 {
			for si := 0; si < seclen; si++ {
				if si > 0 {
					b.WriteString("+")
				}
				b.WriteString(dashes)
			}
			b.WriteString("\n")
		}
		for ci := 0; ci < slen; ci++ {
			if ci > 0 && ci%seclen == 0 {
				b.WriteString("|")
			}
			b.WriteString(vstr(g.values[g.mapping.cellIndex(ri, ci)]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

/*

Compact value strings, for storage and test fixtures

*/

// ValueString renders a grid as a single line of value
// characters in reading order, 0 for unknown cells.
func (g *Grid) ValueString() string {
	if g == nil {
		return ""
	}
	var b strings.Builder
	for _, v := range g.values {
		b.WriteString(vstr(v))
	}
	return b.String()
}

// ParseValueString builds a grid from a line of value
// characters as produced by ValueString.  A '.' is accepted as
// an alternate spelling of an unknown cell.
func ParseValueString(s string) (*Grid, error) {
	values := make([]int, 0, len(s))
	for _, ch := range s {
		switch {
		case ch == '.':
			values = append(values, 0)
		case ch >= '0' && ch <= '9':
			values = append(values, int(ch-'0'))
		case ch >= 'A' && ch <= 'Z':
			values = append(values, int(ch-'A')+10)
		default:
			return nil, Error{
				Scope:     ArgumentScope,
				Structure: AttributeValueStructure,
				Attribute: ValueAttribute,
				Condition: GeneralCondition,
				Values:    ErrorData{string(ch), "not a value character"},
			}
		}
	}
	return NewGridFromValues(values)
}
