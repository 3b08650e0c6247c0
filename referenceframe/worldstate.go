package referenceframe

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	commonpb "go.viam.com/api/common/v1"

	"github.com/robo-bootcamp/gobotic/spatialmath"
)

// World is the name of the frame every geometry of a static world is expressed in.
const World = "world"

// WorldState is a snapshot of a static world and the robot in it.
type WorldState struct {
	Boundary  spatialmath.Cuboid
	Obstacles map[string]spatialmath.Cuboid
	Start     spatialmath.Point3D
	Goal      spatialmath.Point3D
	RobotPose spatialmath.Point3D
}

// ObstacleNames returns the obstacle names in natural order, so that obstacle_2 sorts before
// obstacle_10.
func (ws WorldState) ObstacleNames() []string {
	return sortedNames(lo.Keys(ws.Obstacles))
}

func sortedNames(names []string) []string {
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) < len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}

// WorldStateToProtobuf converts the obstacles of a WorldState to the protobuf definition of a
// WorldState, as one set of boxes in the world frame.
func WorldStateToProtobuf(ws WorldState) *commonpb.WorldState {
	geometries := lo.Map(ws.ObstacleNames(), func(name string, _ int) *commonpb.Geometry {
		return ws.Obstacles[name].ToProtobuf(name)
	})
	return &commonpb.WorldState{
		Obstacles: []*commonpb.GeometriesInFrame{
			{ReferenceFrame: World, Geometries: geometries},
		},
	}
}

// ObstaclesFromProtobuf takes the protobuf definition of a WorldState and returns its box
// obstacles keyed by label. Only geometries in the world frame are accepted.
func ObstaclesFromProtobuf(proto *commonpb.WorldState) (map[string]spatialmath.Cuboid, error) {
	obstacles := map[string]spatialmath.Cuboid{}
	for _, inFrame := range proto.GetObstacles() {
		if inFrame.GetReferenceFrame() != World {
			return nil, errors.Errorf("obstacles must be in the %q frame, got %q", World, inFrame.GetReferenceFrame())
		}
		for _, geometry := range inFrame.GetGeometries() {
			cuboid, err := spatialmath.CuboidFromProtobuf(geometry)
			if err != nil {
				return nil, err
			}
			if _, present := obstacles[geometry.GetLabel()]; present {
				return nil, errors.Errorf("cannot specify multiple geometries with the same name: %s", geometry.GetLabel())
			}
			obstacles[geometry.GetLabel()] = cuboid
		}
	}
	return obstacles, nil
}
