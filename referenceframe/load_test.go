package referenceframe

import (
	"errors"
	"testing"

	"go.viam.com/test"

	"github.com/robo-bootcamp/gobotic/logging"
	"github.com/robo-bootcamp/gobotic/spatialmath"
	"github.com/robo-bootcamp/gobotic/testutils"
	"github.com/robo-bootcamp/gobotic/utils"
	"github.com/robo-bootcamp/gobotic/worldfile"
)

func TestNewContinuous3DStaticFromFile(t *testing.T) {
	world, warnings, err := NewContinuous3DStaticFromFile(
		utils.ResolveFile("worldfile/data/sample_world.txt"), logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, warnings, test.ShouldBeEmpty)

	state := world.State()
	test.That(t, state.Boundary, test.ShouldResemble, spatialmath.NewCuboid(0, -5, 0, 10, 20, 6))
	test.That(t, state.Start, test.ShouldResemble, spatialmath.NewPoint3D(0, 0, 0))
	test.That(t, state.Goal, test.ShouldResemble, spatialmath.NewPoint3D(10, 20, 6))
	test.That(t, state.RobotPose, test.ShouldResemble, state.Start)
	test.That(t, state.ObstacleNames(), test.ShouldResemble, []string{"obstacle_0", "obstacle_1", "obstacle_2", "obstacle_3"})
	test.That(t, state.Obstacles["obstacle_1"], test.ShouldResemble, spatialmath.NewCuboid(0, 2, 4.5, 10, 2.5, 6))
}

func TestMissingGoalFallsBackToOrigin(t *testing.T) {
	path := testutils.WriteTempFile(t, "world.txt", "boundary: 0, -5, 0, 10, 20, 6\nstart: 1, 2, 3\n")
	world, warnings, err := NewContinuous3DStaticFromFile(path, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, warnings, test.ShouldHaveLength, 2)
	test.That(t, world.State().Goal, test.ShouldResemble, spatialmath.Point3D{})
	test.That(t, world.State().Start, test.ShouldResemble, spatialmath.NewPoint3D(1, 2, 3))
	test.That(t, world.State().Obstacles, test.ShouldBeEmpty)
}

func TestNewContinuous3DStaticFromFileErrors(t *testing.T) {
	_, _, err := NewContinuous3DStaticFromFile("missing.txt", logging.NewTestLogger(t))
	test.That(t, errors.Is(err, worldfile.ErrNotFound), test.ShouldBeTrue)

	path := testutils.WriteTempFile(t, "world.txt", "boundary: 0, -5, 0, 10, 20, 6\nboundary: 0, -5, 0, 10, 20, 6\n")
	world, warnings, err := NewContinuous3DStaticFromFile(path, logging.NewTestLogger(t))
	test.That(t, errors.Is(err, worldfile.ErrDuplicateKeyword), test.ShouldBeTrue)
	test.That(t, world, test.ShouldBeNil)
	test.That(t, warnings, test.ShouldBeNil)
}

func TestNewContinuous3DStaticFromRecords(t *testing.T) {
	logger, observed := logging.NewObservedTestLogger(t)
	records := worldfile.RecordSet{
		Boundary:  []float64{10, 20, 6, 0, -5, 0},
		Start:     []float64{0, 0, 0},
		Obstacles: map[string][]float64{"obstacle_0": {1, 1, 1, 0, 0, 0}},
	}
	world, err := NewContinuous3DStaticFromRecords(records, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, world.State().Boundary.IsOrdered(), test.ShouldBeFalse)
	test.That(t, observed.FilterMessage("boundary min bounds exceed its max bounds").Len(), test.ShouldEqual, 1)
	test.That(t, observed.FilterMessage("obstacle min bounds exceed its max bounds").Len(), test.ShouldEqual, 1)

	records.Boundary = []float64{1, 2, 3}
	_, err = NewContinuous3DStaticFromRecords(records, logger)
	var typeErr *spatialmath.TypeValidationError
	test.That(t, errors.As(err, &typeErr), test.ShouldBeTrue)
	test.That(t, typeErr.Type, test.ShouldEqual, "Cuboid")
}
