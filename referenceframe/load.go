package referenceframe

import (
	"github.com/pkg/errors"

	"github.com/robo-bootcamp/gobotic/logging"
	"github.com/robo-bootcamp/gobotic/spatialmath"
	"github.com/robo-bootcamp/gobotic/worldfile"
)

// NewContinuous3DStaticFromFile loads a world description from path and builds the world it
// describes. The warnings raised while parsing are returned alongside the world.
func NewContinuous3DStaticFromFile(
	path string,
	logger logging.Logger,
	opts ...worldfile.Option,
) (*Continuous3DStatic, []worldfile.Warning, error) {
	result, err := worldfile.LoadFile(path, logger, opts...)
	if err != nil {
		return nil, nil, err
	}
	world, err := NewContinuous3DStaticFromRecords(result.RecordSet, logger)
	if err != nil {
		return nil, nil, err
	}
	return world, result.Warnings, nil
}

// NewContinuous3DStaticFromRecords converts parsed records into geometries. A record set without
// a goal gets the origin as its goal.
func NewContinuous3DStaticFromRecords(records worldfile.RecordSet, logger logging.Logger) (*Continuous3DStatic, error) {
	boundary, err := spatialmath.CuboidFromIter(records.Boundary)
	if err != nil {
		return nil, errors.Wrap(err, "invalid boundary")
	}
	if !boundary.IsOrdered() {
		logger.Debugw("boundary min bounds exceed its max bounds", "boundary", boundary.String())
	}

	obstacles := make(map[string]spatialmath.Cuboid, len(records.Obstacles))
	for name, values := range records.Obstacles {
		obstacle, err := spatialmath.CuboidFromIter(values)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid obstacle %s", name)
		}
		if !obstacle.IsOrdered() {
			logger.Debugw("obstacle min bounds exceed its max bounds", "name", name, "obstacle", obstacle.String())
		}
		obstacles[name] = obstacle
	}

	start, err := spatialmath.Point3DFromIter(records.Start)
	if err != nil {
		return nil, errors.Wrap(err, "invalid start")
	}

	var goal spatialmath.Point3D
	if records.Goal != nil {
		if goal, err = spatialmath.Point3DFromIter(records.Goal); err != nil {
			return nil, errors.Wrap(err, "invalid goal")
		}
	}

	return NewContinuous3DStatic(boundary, obstacles, start, goal), nil
}
