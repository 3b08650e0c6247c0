package worldfile

import (
	"errors"
	"testing"

	"go.viam.com/test"
)

func TestParseLine(t *testing.T) {
	testCases := []struct {
		name   string
		line   string
		tag    Tag
		values []float64
	}{
		{"commas", "boundary: 0, -5, 0, 10, 20, 6", Boundary, []float64{0, -5, 0, 10, 20, 6}},
		{"spaces", "start: 1 2 3", Start, []float64{1, 2, 3}},
		{"mixed separators", "goal:10 ,20,, 6", Goal, []float64{10, 20, 6}},
		{"tabs and padding", "\tobstacle :  0,\t2, 0, 10, 2.5, 1.5  ", Obstacle, []float64{0, 2, 0, 10, 2.5, 1.5}},
		{"scientific", "start: 1e3, +2, -3.5E-1", Start, []float64{1000, 2, -0.35}},
		{"trailing comment", "goal: 1, 2, 3 # the charger", Goal, []float64{1, 2, 3}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := ParseLine(tc.line, 7)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, d, test.ShouldNotBeNil)
			test.That(t, d.Tag, test.ShouldEqual, tc.tag)
			test.That(t, d.Values, test.ShouldResemble, tc.values)
			test.That(t, d.Line, test.ShouldEqual, 7)
			test.That(t, d.Raw, test.ShouldEqual, tc.line)
		})
	}
}

func TestParseLineSkips(t *testing.T) {
	for _, line := range []string{"", "   ", "\t", "# comment", "  # indented comment", "#boundary: 1, 2, 3, 4, 5, 6"} {
		d, err := ParseLine(line, 1)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, d, test.ShouldBeNil)
	}
}

func TestParseLineSyntaxErrors(t *testing.T) {
	testCases := []struct {
		name   string
		line   string
		reason string
	}{
		{"unknown tag", "foo: 1,2,3", `unknown tag "foo"`},
		{"random text with colon", "ajlkflkfsdajlkf:", `unknown tag "ajlkflkfsdajlkf"`},
		{"no delimiter", "boundary 0 -5 0 10 20 6", "expected `tag: values`"},
		{"no values", "goal:", "no values for goal"},
		{"only separators", "goal: , ,", "no values for goal"},
		{"not a number", "start: 1, two, 3", `"two" is not a number`},
		{"nan", "start: 1, NaN, 3", `"NaN" is not a number`},
		{"inf", "start: 1, inf, 3", `"inf" is not a number`},
		{"overflow", "start: 1, 1e999, 3", `"1e999" is not a number`},
		{"hex", "start: 0x10, 1, 3", `"0x10" is not a number`},
		{"capitalized tag", "Boundary: 0, -5, 0, 10, 20, 6", `unknown tag "Boundary"`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := ParseLine(tc.line, 3)
			test.That(t, d, test.ShouldBeNil)
			var syntaxErr *SyntaxError
			test.That(t, errors.As(err, &syntaxErr), test.ShouldBeTrue)
			test.That(t, syntaxErr.Line, test.ShouldEqual, 3)
			test.That(t, syntaxErr.Content, test.ShouldEqual, tc.line)
			test.That(t, syntaxErr.Reason, test.ShouldEqual, tc.reason)
		})
	}
}

func TestParseLineArity(t *testing.T) {
	testCases := []struct {
		line string
		tag  Tag
		got  int
		want int
	}{
		{"boundary: 0, -5, 0, 10, 20", Boundary, 5, 6},
		{"obstacle: 1, 2, 3, 4, 5, 6, 7", Obstacle, 7, 6},
		{"start: 0, 0", Start, 2, 3},
		{"goal: 1 2 3 4", Goal, 4, 3},
	}
	for _, tc := range testCases {
		d, err := ParseLine(tc.line, 2)
		test.That(t, d, test.ShouldBeNil)
		test.That(t, errors.Is(err, ErrWrongArity), test.ShouldBeTrue)
		var valueErr *ValueError
		test.That(t, errors.As(err, &valueErr), test.ShouldBeTrue)
		test.That(t, valueErr.Tag, test.ShouldEqual, tc.tag)
		test.That(t, valueErr.Got, test.ShouldEqual, tc.got)
		test.That(t, valueErr.Want, test.ShouldEqual, tc.want)
		test.That(t, err.Error(), test.ShouldContainSubstring, string(tc.tag))
	}
}

func TestTag(t *testing.T) {
	test.That(t, Boundary.Arity(), test.ShouldEqual, 6)
	test.That(t, Obstacle.Arity(), test.ShouldEqual, 6)
	test.That(t, Start.Arity(), test.ShouldEqual, 3)
	test.That(t, Goal.Arity(), test.ShouldEqual, 3)
	test.That(t, Tag("foo").Arity(), test.ShouldEqual, 0)
	test.That(t, Boundary.Unique(), test.ShouldBeTrue)
	test.That(t, Obstacle.Unique(), test.ShouldBeFalse)
}
