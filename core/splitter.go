package core

import "strings"

// Block is the raw text belonging to one tag: everything from its @name
// line up to (not including) the next tag line or end of input.
type Block struct {
	Name  string // tag word without the @
	Body  string // raw body, source lines joined with \n
	Index int    // 0-based position among the comment's tag blocks
}

// splitState tracks which block the splitter is currently accumulating.
type splitState int

const (
	stateDescription splitState = iota
	stateTagBody
)

// SplitBlocks groups logical lines into a description block followed by
// zero or more tag blocks. A line starts a new tag block when it matches
// @name (name = letter followed by letters, digits, _ or -) and the brace
// depth carried over from previous lines is zero, so an @-word inside a
// multi-line {type} expression stays part of its tag's body. The returned
// description has leading and trailing blank lines trimmed; interior blank
// lines are preserved.
func SplitBlocks(lines []string) (string, []Block) {
	var (
		descLines []string
		blocks    []Block
		bodyLines []string
		tagName   string
	)
	state := stateDescription
	depth := 0

	flush := func() {
		blocks = append(blocks, Block{
			Name:  tagName,
			Body:  strings.Join(bodyLines, "\n"),
			Index: len(blocks),
		})
	}

	for _, line := range lines {
		if depth == 0 {
			if name, rest, ok := tagStart(line); ok {
				if state == stateTagBody {
					flush()
				}
				state = stateTagBody
				tagName = name
				bodyLines = []string{rest}
				depth = nextDepth(depth, rest)
				continue
			}
		}
		depth = nextDepth(depth, line)
		if state == stateTagBody {
			bodyLines = append(bodyLines, line)
		} else {
			descLines = append(descLines, line)
		}
	}
	if state == stateTagBody {
		flush()
	}

	desc := strings.Join(descLines, "\n")
	return strings.Trim(desc, "\n"), blocks
}

// tagStart reports whether a line begins a tag block, returning the tag
// word and the remainder of the line with leading whitespace removed.
func tagStart(line string) (name, rest string, ok bool) {
	if len(line) < 2 || line[0] != '@' || !isAlpha(line[1]) {
		return "", "", false
	}
	i := 2
	for i < len(line) && isNameChar(line[i]) {
		i++
	}
	return line[1:i], strings.TrimLeft(line[i:], " \t"), true
}

// nextDepth advances the brace depth across one line. Depth never goes
// negative: a stray closing brace must not swallow later tag lines.
func nextDepth(depth int, line string) int {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		}
	}
	return depth
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isNameChar reports whether a byte may appear in a tag word after the
// first letter.
func isNameChar(b byte) bool {
	return isAlpha(b) || isDigit(b) || b == '_' || b == '-'
}
