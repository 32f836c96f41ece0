package core

// splitLines splits content on "\n", "\r\n" and a lone "\r". A trailing
// terminator does not produce an extra empty line.
func splitLines(content string) []string {
	lines := []string{}
	start := 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			lines = append(lines, content[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, content[start:i])
			if i+1 < len(content) && content[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}
