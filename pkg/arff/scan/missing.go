package scan

// HasMissing reports whether a data row contains an unquoted '?', the
// ARFF marker for a missing value. The scan is quote-aware: a '?'
// inside a single- or double-quoted span does not count, and a quote
// character inside a differently-quoted span does not open a new span.
// Escaped quotes are not handled.
func HasMissing(line string) bool {
	inQuotes := false
	var quote byte

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case !inQuotes && (c == '\'' || c == '"'):
			inQuotes = true
			quote = c
		case inQuotes && c == quote:
			inQuotes = false
			quote = 0
		case !inQuotes && c == '?':
			return true
		}
	}
	return false
}
