package ui

import "strings"

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// truncateMiddle keeps the head and tail of value, which suits URLs and
// paths where both the host and the file name matter.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	keep := limit - 1
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + "…" + string(runes[len(runes)-suffix:])
}

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(r))
}

// wrap breaks text on word boundaries into at most maxLines lines of width
// runes. The last line is truncated when text does not fit.
func wrap(text string, width, maxLines int) []string {
	words := strings.Fields(text)
	if width <= 0 || maxLines <= 0 || len(words) == 0 {
		return nil
	}
	var lines []string
	var cur strings.Builder
	for i, w := range words {
		switch {
		case cur.Len() == 0:
			cur.WriteString(w)
		case len([]rune(cur.String()))+1+len([]rune(w)) <= width:
			cur.WriteString(" ")
			cur.WriteString(w)
		default:
			if len(lines) == maxLines-1 {
				rest := cur.String() + " " + strings.Join(words[i:], " ")
				return append(lines, truncate(rest, width))
			}
			lines = append(lines, truncate(cur.String(), width))
			cur.Reset()
			cur.WriteString(w)
		}
	}
	return append(lines, truncate(cur.String(), width))
}
