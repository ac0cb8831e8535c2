package templates

import (
	"strconv"
	"strings"
)

// prefixedStrings returns "p0, p1, ..." for count entries.
func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// pairedStrings returns "n0 t0, n1 t1, ..." for count entries, the parameter
// list matching prefixedStrings(typePrefix, count).
func pairedStrings(namePrefix, typePrefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		idx := strconv.Itoa(i)
		sb.WriteString(namePrefix)
		sb.WriteString(idx)
		sb.WriteByte(' ')
		sb.WriteString(typePrefix)
		sb.WriteString(idx)
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func arityNoun(count int) string {
	switch count {
	case 0:
		return "no arguments"
	case 1:
		return "one argument"
	default:
		return strconv.Itoa(count) + " arguments"
	}
}
