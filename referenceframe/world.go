// Package referenceframe holds the state of a static world: its boundary, its obstacles, the
// start and goal points, and the current pose of the robot.
package referenceframe

import (
	"fmt"
	"io"
	"sync"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/robo-bootcamp/gobotic/spatialmath"
)

// A Static3DWorld is a world whose only moving part is the robot.
type Static3DWorld interface {
	// State returns a snapshot of the world.
	State() WorldState
	// UpdateState moves the robot to pose.
	UpdateState(pose spatialmath.Point3D)
	// Render writes a human readable description of the world to w.
	Render(w io.Writer) error
}

// Continuous3DStatic is a continuous 3D world with static obstacles.
type Continuous3DStatic struct {
	boundary  spatialmath.Cuboid
	obstacles map[string]spatialmath.Cuboid
	start     spatialmath.Point3D
	goal      spatialmath.Point3D

	mu        sync.Mutex
	robotPose spatialmath.Point3D
}

var _ Static3DWorld = (*Continuous3DStatic)(nil)

// NewContinuous3DStatic returns a world with the robot at start.
func NewContinuous3DStatic(
	boundary spatialmath.Cuboid,
	obstacles map[string]spatialmath.Cuboid,
	start, goal spatialmath.Point3D,
) *Continuous3DStatic {
	return &Continuous3DStatic{
		boundary:  boundary,
		obstacles: lo.Assign(obstacles),
		start:     start,
		goal:      goal,
		robotPose: start,
	}
}

// State returns a snapshot of the world. The obstacle map is a copy.
func (w *Continuous3DStatic) State() WorldState {
	w.mu.Lock()
	pose := w.robotPose
	w.mu.Unlock()
	return WorldState{
		Boundary:  w.boundary,
		Obstacles: lo.Assign(w.obstacles),
		Start:     w.start,
		Goal:      w.goal,
		RobotPose: pose,
	}
}

// UpdateState moves the robot to pose.
func (w *Continuous3DStatic) UpdateState(pose spatialmath.Point3D) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.robotPose = pose
}

// Render writes a table with one row per entity of the world.
func (w *Continuous3DStatic) Render(out io.Writer) error {
	_, err := fmt.Fprintln(out, w.String())
	return err
}

// String prints out a table of the world, with columns of name, kind, min and max. Points only
// fill the min column.
func (w *Continuous3DStatic) String() string {
	state := w.State()
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Name", "Kind", "Min", "Max"})
	appendShape := func(i int, name string, c spatialmath.Cuboid) {
		t.AppendRow(table.Row{i, name, "cuboid", formatPoint(c.Min()), formatPoint(c.Max())})
	}
	appendShape(0, "boundary", state.Boundary)
	for i, name := range state.ObstacleNames() {
		appendShape(i+1, name, state.Obstacles[name])
	}
	t.AppendSeparator()
	t.AppendRow(table.Row{"", "start", "point", formatPoint(state.Start), ""})
	t.AppendRow(table.Row{"", "goal", "point", formatPoint(state.Goal), ""})
	t.AppendRow(table.Row{"", "robot", "point", formatPoint(state.RobotPose), ""})
	return t.Render()
}

func formatPoint(p spatialmath.Point3D) string {
	return fmt.Sprintf("X:%g, Y:%g, Z:%g", p.X, p.Y, p.Z)
}
