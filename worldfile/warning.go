package worldfile

import "fmt"

// WarningKind classifies a non-fatal finding.
type WarningKind string

// The kinds of findings raised while parsing. NoObstacles is only ever a notice.
const (
	RepeatedObstacle WarningKind = "repeated_obstacle"
	MissingStart     WarningKind = "missing_start"
	MissingGoal      WarningKind = "missing_goal"
	NoObstacles      WarningKind = "no_obstacles"
)

// Warning is a suspicious but legal property of a world description. Line is 0 for warnings
// about the file as a whole.
type Warning struct {
	Kind    WarningKind
	Line    int
	Message string
}

func (w Warning) String() string {
	if w.Line == 0 {
		return fmt.Sprintf("%s: %s", w.Kind, w.Message)
	}
	return fmt.Sprintf("%s (line %d): %s", w.Kind, w.Line, w.Message)
}
