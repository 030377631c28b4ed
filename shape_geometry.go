package probe

import "github.com/go-gl/mathgl/mgl32"

// ShapeKind is a closed tag over the collision primitives a physics source
// can report. Anything outside the known kinds is ShapeOther and gets a
// placeholder geometry instead of failing.
type ShapeKind int

const (
	ShapeSphere ShapeKind = iota
	ShapeBox
	ShapePlane
	ShapeCylinder
	ShapeOther
)

// ShapeDescriptor is a read-only view of one collision shape, re-read from
// the physics source on every reconciliation. Only the fields for the given
// Kind are meaningful.
type ShapeDescriptor struct {
	Kind ShapeKind

	Radius      float32    // Sphere
	HalfExtents mgl32.Vec3 // Box

	// Cylinder
	TopRadius      float32
	BottomRadius   float32
	Height         float32
	RadialSegments int
}

func SphereShape(radius float32) ShapeDescriptor {
	return ShapeDescriptor{
		Kind:   ShapeSphere,
		Radius: radius,
	}
}

func BoxShape(halfExtents mgl32.Vec3) ShapeDescriptor {
	return ShapeDescriptor{
		Kind:        ShapeBox,
		HalfExtents: halfExtents,
	}
}

func PlaneShape() ShapeDescriptor {
	return ShapeDescriptor{
		Kind: ShapePlane,
	}
}

func CylinderShape(topRadius, bottomRadius, height float32, radialSegments int) ShapeDescriptor {
	return ShapeDescriptor{
		Kind:           ShapeCylinder,
		TopRadius:      topRadius,
		BottomRadius:   bottomRadius,
		Height:         height,
		RadialSegments: radialSegments,
	}
}

type GeometryKind int

const (
	GeometrySphere GeometryKind = iota
	GeometryBox
	GeometryPlane
	GeometryCylinder
)

// WireGeometry describes a wireframe mesh for a renderer to tessellate.
type WireGeometry struct {
	Kind GeometryKind

	Radius         float32
	WidthSegments  int
	HeightSegments int

	Extents mgl32.Vec3 // Box, full extents

	// Plane, a bounded patch
	Width float32
	Depth float32

	// Cylinder
	TopRadius      float32
	BottomRadius   float32
	Height         float32
	RadialSegments int
}

const (
	sphereSegments = 16

	// Planes are conceptually infinite; the visualizer substitutes a bounded
	// patch. Documented limitation, not a bug.
	planePatchSize = 10

	fallbackRadius   = 0.1
	fallbackSegments = 8
)

// WireGeometryFor maps a collision shape to a renderable wireframe geometry.
// Pure and total: an unrecognized kind yields a small placeholder sphere so
// unknown physics content is always visualizable.
func WireGeometryFor(shape ShapeDescriptor) WireGeometry {
	switch shape.Kind {
	case ShapeSphere:
		return WireGeometry{
			Kind:           GeometrySphere,
			Radius:         shape.Radius,
			WidthSegments:  sphereSegments,
			HeightSegments: sphereSegments,
		}
	case ShapeBox:
		return WireGeometry{
			Kind:    GeometryBox,
			Extents: shape.HalfExtents.Mul(2),
		}
	case ShapePlane:
		return WireGeometry{
			Kind:  GeometryPlane,
			Width: planePatchSize,
			Depth: planePatchSize,
		}
	case ShapeCylinder:
		return WireGeometry{
			Kind:           GeometryCylinder,
			TopRadius:      shape.TopRadius,
			BottomRadius:   shape.BottomRadius,
			Height:         shape.Height,
			RadialSegments: shape.RadialSegments,
		}
	default:
		return WireGeometry{
			Kind:           GeometrySphere,
			Radius:         fallbackRadius,
			WidthSegments:  fallbackSegments,
			HeightSegments: fallbackSegments,
		}
	}
}
