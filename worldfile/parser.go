// Package worldfile reads the line-oriented text description of a static world:
//
//	# comment
//	boundary: 0, -5, 0, 10, 20, 6
//	start: 0, 0, 0
//	goal: 10, 20, 6
//	obstacle: 0, 2, 0, 10, 2.5, 1.5
//
// A description needs a boundary. A missing start defaults to the origin, a missing goal is left
// unset, and any number of obstacles may be given; these cases produce warnings. Parsing is a
// single pass that stops at the first malformed line, and never returns a partial result.
package worldfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/robo-bootcamp/gobotic/logging"
)

// ObstaclePrefix is the prefix of the synthesized obstacle names.
const ObstaclePrefix = "obstacle_"

const maxLineLength = 1 << 20

// RecordSet holds the numeric arrays of a world description before they become geometries.
type RecordSet struct {
	Boundary []float64
	// Start is the origin when the file has no start directive.
	Start []float64
	// Goal is nil when the file has no goal directive.
	Goal []float64
	// Obstacles maps obstacle_<n> to its bounds, n counting from 0 in file order.
	Obstacles map[string][]float64
}

// ObstacleNames returns the obstacle names in file order.
func (rs *RecordSet) ObstacleNames() []string {
	names := make([]string, len(rs.Obstacles))
	for i := range names {
		names[i] = ObstacleName(i)
	}
	return names
}

// ObstacleName returns the name given to the i-th obstacle of a file.
func ObstacleName(i int) string {
	return ObstaclePrefix + strconv.Itoa(i)
}

// Result is a parsed world description and the findings raised while parsing it. Notices are
// informational, such as an empty obstacle set, and never fail a strict parse.
type Result struct {
	RecordSet
	Warnings []Warning
	Notices  []Warning
}

// parser accumulates directives. It holds no state across calls to Parse.
type parser struct {
	logger logging.Logger
	opts   options

	records  RecordSet
	seenTags map[Tag]int
	// seenObstacles maps obstacle bounds to the line that first gave them.
	seenObstacles map[[6]float64]int
	warnings      []Warning
	notices       []Warning
}

func newParser(logger logging.Logger, opts options) *parser {
	return &parser{
		logger:        logger,
		opts:          opts,
		records:       RecordSet{Obstacles: map[string][]float64{}},
		seenTags:      map[Tag]int{},
		seenObstacles: map[[6]float64]int{},
	}
}

// Parse reads a world description from r.
func Parse(r io.Reader, logger logging.Logger, opts ...Option) (*Result, error) {
	p := newParser(logger, newOptions(opts))

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		directive, err := ParseLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		if directive == nil {
			continue
		}
		if err := p.add(directive); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read world description")
	}

	return p.finalize()
}

func (p *parser) add(d *Directive) error {
	p.logger.Debugw("directive", logging.LineKey, d.Line, "tag", string(d.Tag), "values", d.Values)

	if d.Tag.Unique() {
		if first, ok := p.seenTags[d.Tag]; ok {
			return &ValueError{
				Line:    d.Line,
				Content: d.Raw,
				Tag:     d.Tag,
				Err:     errors.Wrapf(ErrDuplicateKeyword, "first given on line %d", first),
			}
		}
		p.seenTags[d.Tag] = d.Line
	}

	switch d.Tag {
	case Boundary:
		p.records.Boundary = d.Values
	case Start:
		p.records.Start = d.Values
	case Goal:
		p.records.Goal = d.Values
	case Obstacle:
		return p.addObstacle(d)
	}
	return nil
}

func (p *parser) addObstacle(d *Directive) error {
	n := len(p.records.Obstacles)
	if p.opts.maxObstacles > 0 && n >= p.opts.maxObstacles {
		return &ValueError{
			Line:    d.Line,
			Content: d.Raw,
			Tag:     d.Tag,
			Err:     errors.Wrapf(ErrTooManyObstacles, "limit is %d", p.opts.maxObstacles),
		}
	}
	name := ObstacleName(n)
	p.records.Obstacles[name] = d.Values

	var key [6]float64
	copy(key[:], d.Values)
	if first, ok := p.seenObstacles[key]; ok {
		p.warn(Warning{
			Kind:    RepeatedObstacle,
			Line:    d.Line,
			Message: fmt.Sprintf("%s repeats the obstacle on line %d", name, first),
		})
		return nil
	}
	p.seenObstacles[key] = d.Line
	return nil
}

func (p *parser) finalize() (*Result, error) {
	if p.records.Boundary == nil {
		return nil, &KeyError{Tag: Boundary}
	}
	if p.records.Goal == nil {
		p.warn(Warning{Kind: MissingGoal, Message: "goal not specified in the file, it is left unset"})
	}
	if p.records.Start == nil {
		p.records.Start = make([]float64, Start.Arity())
		p.warn(Warning{Kind: MissingStart, Message: "start not specified in the file, using the origin"})
	}
	if len(p.records.Obstacles) == 0 {
		p.notice(Warning{Kind: NoObstacles, Message: "no obstacles in the file"})
	}

	if p.opts.strict && len(p.warnings) > 0 {
		var errs error
		for _, w := range p.warnings {
			errs = multierr.Append(errs, errors.New(w.String()))
		}
		return nil, errors.Wrapf(ErrStrict, "%v", errs)
	}

	return &Result{RecordSet: p.records, Warnings: p.warnings, Notices: p.notices}, nil
}

func (p *parser) warn(w Warning) {
	p.warnings = append(p.warnings, w)
	p.logger.Warnw(w.Message, logging.KindKey, w.Kind, logging.LineKey, w.Line)
}

func (p *parser) notice(w Warning) {
	p.notices = append(p.notices, w)
	p.logger.Infow(w.Message, logging.KindKey, w.Kind)
}
