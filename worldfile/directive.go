package worldfile

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Tag is the keyword at the start of a directive.
type Tag string

// The recognized tags.
const (
	Boundary Tag = "boundary"
	Start    Tag = "start"
	Goal     Tag = "goal"
	Obstacle Tag = "obstacle"
)

// Arity returns how many numbers a directive with this tag must carry, or 0 for unknown tags.
func (t Tag) Arity() int {
	switch t {
	case Boundary, Obstacle:
		return 6
	case Start, Goal:
		return 3
	default:
		return 0
	}
}

// Unique reports whether the tag may appear at most once per file.
func (t Tag) Unique() bool {
	return t == Boundary || t == Start || t == Goal
}

// Directive is one parsed `tag: values` line.
type Directive struct {
	Line   int
	Tag    Tag
	Values []float64
	// Raw is the line as it appeared in the file.
	Raw string
}

// ParseLine parses a single line of a world description. Blank lines and comment lines yield a
// nil directive and no error. Anything after a '#' on a directive line is also a comment.
func ParseLine(line string, lineNo int) (*Directive, error) {
	content := strings.TrimSpace(line)
	if idx := strings.IndexByte(content, '#'); idx >= 0 {
		content = strings.TrimSpace(content[:idx])
	}
	if content == "" {
		return nil, nil
	}

	tagPart, valuePart, found := strings.Cut(content, ":")
	if !found {
		return nil, &SyntaxError{Line: lineNo, Content: line, Reason: "expected `tag: values`"}
	}
	tag := Tag(strings.TrimSpace(tagPart))
	if tag.Arity() == 0 {
		return nil, &SyntaxError{Line: lineNo, Content: line, Reason: "unknown tag " + strconv.Quote(string(tag))}
	}

	values, err := splitNumbers(valuePart)
	if err != nil {
		return nil, &SyntaxError{Line: lineNo, Content: line, Reason: err.Error()}
	}
	if len(values) == 0 {
		return nil, &SyntaxError{Line: lineNo, Content: line, Reason: "no values for " + string(tag)}
	}
	if len(values) != tag.Arity() {
		return nil, &ValueError{
			Line:    lineNo,
			Content: line,
			Tag:     tag,
			Got:     len(values),
			Want:    tag.Arity(),
			Err:     ErrWrongArity,
		}
	}

	return &Directive{Line: lineNo, Tag: tag, Values: values, Raw: line}, nil
}

// splitNumbers splits on commas and whitespace, in any mix and repetition, and parses every
// token as a finite float.
func splitNumbers(s string) ([]float64, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	values := make([]float64, 0, len(tokens))
	for _, token := range tokens {
		// hex floats and digit separators are valid Go syntax but not decimal literals
		if strings.ContainsAny(token, "xX_") {
			return nil, &numberError{token}
		}
		value, err := strconv.ParseFloat(token, 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, &numberError{token}
		}
		values = append(values, value)
	}
	return values, nil
}

type numberError struct {
	token string
}

func (e *numberError) Error() string {
	return strconv.Quote(e.token) + " is not a number"
}
