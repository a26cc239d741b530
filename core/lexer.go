package core

import "strings"

// NormalizeComment strips the comment framing and returns the body as an
// ordered sequence of logical lines. It accepts both fully delimited text
// (/** ... */) and text that has already been stripped of delimiters. For
// every interior line the leading whitespace, an optional asterisk, and at
// most one following space are removed, so deeper indentation (as in
// example code) survives. Blank lines are preserved as empty strings.
//
// A literal */ before the end of the comment truncates the input at its
// first occurrence; embedded closing delimiters are a documented
// limitation, not an error. A /** with no closing */ at all, or a trailing
// */ with no opener, returns a *MalformedCommentError.
func NormalizeComment(text string) ([]string, error) {
	body := strings.TrimSpace(text)

	if strings.HasPrefix(body, "/**") {
		body = body[3:]
		end := strings.Index(body, "*/")
		if end < 0 {
			return nil, &MalformedCommentError{Reason: "missing closing */"}
		}
		body = body[:end]
	} else if strings.HasSuffix(body, "*/") {
		return nil, &MalformedCommentError{Reason: "closing */ without opening /**"}
	} else if end := strings.Index(body, "*/"); end >= 0 {
		// Embedded closer in pre-stripped text: truncate, same as above.
		body = body[:end]
	}

	rawLines := strings.Split(body, "\n")
	lines := make([]string, 0, len(rawLines))
	for _, raw := range rawLines {
		lines = append(lines, normalizeLine(raw))
	}

	// The opener and closer sit on their own lines in conventional comments,
	// leaving empty first/last logical lines that are framing, not content.
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// normalizeLine strips a line's leading whitespace, one optional asterisk,
// and at most one space after the asterisk. Trailing whitespace is dropped.
func normalizeLine(line string) string {
	line = strings.TrimRight(line, " \t\r")

	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i < len(line) && line[i] == '*' {
		i++
		if i < len(line) && line[i] == ' ' {
			i++
		}
	}
	return line[i:]
}
