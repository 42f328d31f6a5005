package component

import "github.com/milk9111/elemental/geom"

type Transform struct {
	Position geom.Vec3
	// Facing is a unit direction, or zero when unknown.
	Facing geom.Vec3
	// Scale is a cosmetic size multiplier for renderers.
	Scale float64
}

var TransformComponent = NewComponent[Transform]("transform")
