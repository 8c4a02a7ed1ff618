package markdown

import "strings"

// ReplaceManagedBlock rewrites the generated region between startMarker and
// endMarker, leaving everything outside the markers untouched. If the markers
// are missing the block is appended, so a fresh file and a hand-edited one
// end up with the same shape.
func ReplaceManagedBlock(body, startMarker, endMarker, generated string) string {
	block := startMarker + "\n" + generated + "\n" + endMarker

	start := strings.Index(body, startMarker)
	end := strings.Index(body, endMarker)
	if start >= 0 && end > start {
		return body[:start] + block + body[end+len(endMarker):]
	}

	if strings.TrimSpace(body) == "" {
		return block + "\n"
	}
	if strings.HasSuffix(body, "\n") {
		return body + "\n" + block + "\n"
	}
	return body + "\n\n" + block + "\n"
}
