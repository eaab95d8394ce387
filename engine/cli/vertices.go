package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/spaghettifunk/icemath/engine/core"
	"github.com/spaghettifunk/icemath/engine/geometry"
	"github.com/spaghettifunk/icemath/engine/math"
)

type verticesOptions struct {
	center    []float64
	points    []float64
	size      []float64
	rect      []float64
	texture   []float64
	radius    float64
	sides     int
	segments  int
	rings     int
	sectors   int
	translate []float64
	rotate    []float64
	scale     []float64
	mesh      bool
}

var primitives = []string{
	"point2d", "point3d", "line2d", "line3d", "rect", "rect-uv", "triangle",
	"polygon", "circle", "cube", "cuboid", "sphere",
}

func newVerticesCommand(_ *app) *cobra.Command {
	o := &verticesOptions{}

	cmd := &cobra.Command{
		Use:       "vertices <primitive>",
		Short:     "Print the vertex buffer of a primitive, one vertex per line",
		Long:      "Primitives: " + strings.Join(primitives, ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: primitives,
		Example: `  icemath vertices rect --rect 0,0,4,2
  icemath vertices circle --radius 2 --segments 8
  icemath vertices sphere --rings 4 --sectors 8 --mesh
  icemath vertices cube --size 2 --rotate 0,0,1,0.785 --translate 0,0,-5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, dim, err := o.generate(args[0])
			if err != nil {
				return err
			}
			if buf, err = o.transform(buf, dim); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if o.mesh {
				return printMesh(out, buf, dim)
			}
			printBuffer(out, args[0], buf, dim)
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64SliceVar(&o.center, "center", nil, "center as x,y or x,y,z")
	f.Float64SliceVar(&o.points, "points", nil, "coordinates of point, line and triangle vertices")
	f.Float64SliceVar(&o.size, "size", []float64{1}, "edge length of a cube, or x,y,z sizes of a cuboid")
	f.Float64SliceVar(&o.rect, "rect", []float64{0, 0, 1, 1}, "rectangle as x,y,w,h")
	f.Float64SliceVar(&o.texture, "texture", []float64{1, 1}, "texture size as w,h for rect-uv")
	f.Float64Var(&o.radius, "radius", 1, "radius of polygons, circles and spheres")
	f.IntVar(&o.sides, "sides", 6, "number of polygon sides")
	f.IntVar(&o.segments, "segments", 0, "circle segments (default from config)")
	f.IntVar(&o.rings, "rings", 0, "sphere rings (default from config)")
	f.IntVar(&o.sectors, "sectors", 0, "sphere sectors (default from config)")
	f.Float64SliceVar(&o.translate, "translate", nil, "translate the buffer by x,y,z")
	f.Float64SliceVar(&o.rotate, "rotate", nil, "rotate the buffer around axis x,y,z by angle radians: x,y,z,angle")
	f.Float64SliceVar(&o.scale, "scale", nil, "scale the buffer by x,y,z")
	f.BoolVar(&o.mesh, "mesh", false, "print an indexed mesh with face normals instead (3D triangle lists only)")
	return cmd
}

func vec2(name string, v []float64) (math.Vec2, error) {
	if len(v) == 0 {
		return math.NewVec2Zero(), nil
	}
	if len(v) != 2 {
		return math.Vec2{}, fmt.Errorf("--%s needs 2 values, got %d: %w", name, len(v), core.ErrArity)
	}
	return math.NewVec2(v[0], v[1]), nil
}

func vec3(name string, v []float64) (math.Vec3, error) {
	switch len(v) {
	case 0:
		return math.NewVec3Zero(), nil
	case 2:
		return math.NewVec3(v[0], v[1], 0), nil
	case 3:
		return math.NewVec3(v[0], v[1], v[2]), nil
	}
	return math.Vec3{}, fmt.Errorf("--%s needs 3 values, got %d: %w", name, len(v), core.ErrArity)
}

// pointArgs splits --points into count vertices of dim components.
func (o *verticesOptions) pointArgs(count, dim int) ([][]float64, error) {
	if len(o.points) != count*dim {
		return nil, fmt.Errorf("--points needs %d values, got %d: %w", count*dim, len(o.points), core.ErrArity)
	}
	return lo.Chunk(o.points, dim), nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func (o *verticesOptions) generate(primitive string) ([]float64, int, error) {
	switch primitive {
	case "point2d":
		p, err := o.pointArgs(1, 2)
		if err != nil {
			return nil, 0, err
		}
		return geometry.Point2D(math.NewVec2(p[0][0], p[0][1])), 2, nil
	case "point3d":
		p, err := o.pointArgs(1, 3)
		if err != nil {
			return nil, 0, err
		}
		return geometry.Point3D(math.NewVec3(p[0][0], p[0][1], p[0][2])), 3, nil
	case "line2d":
		p, err := o.pointArgs(2, 2)
		if err != nil {
			return nil, 0, err
		}
		return geometry.Line2D(math.NewVec2(p[0][0], p[0][1]), math.NewVec2(p[1][0], p[1][1])), 2, nil
	case "line3d":
		p, err := o.pointArgs(2, 3)
		if err != nil {
			return nil, 0, err
		}
		return geometry.Line3D(math.NewVec3(p[0][0], p[0][1], p[0][2]), math.NewVec3(p[1][0], p[1][1], p[1][2])), 3, nil
	case "triangle":
		p, err := o.pointArgs(3, 2)
		if err != nil {
			return nil, 0, err
		}
		return geometry.Triangle(
			math.NewVec2(p[0][0], p[0][1]),
			math.NewVec2(p[1][0], p[1][1]),
			math.NewVec2(p[2][0], p[2][1]),
		), 2, nil
	case "rect", "rect-uv":
		if len(o.rect) != 4 {
			return nil, 0, fmt.Errorf("--rect needs 4 values, got %d: %w", len(o.rect), core.ErrArity)
		}
		r := math.Rect{X: o.rect[0], Y: o.rect[1], W: o.rect[2], H: o.rect[3]}
		if primitive == "rect" {
			buf, err := geometry.Rect(r)
			return buf, 2, err
		}
		tex, err := vec2("texture", o.texture)
		if err != nil {
			return nil, 0, err
		}
		buf, err := geometry.RectUV(r, tex.X, tex.Y)
		return buf, 2, err
	case "polygon", "circle":
		center, err := vec2("center", o.center)
		if err != nil {
			return nil, 0, err
		}
		if primitive == "polygon" {
			buf, err := geometry.Polygon(center, o.radius, o.sides)
			return buf, 2, err
		}
		buf, err := geometry.Circle(center, o.radius, orDefault(o.segments, geometry.DefaultCircleSegments))
		return buf, 2, err
	case "cube", "cuboid", "sphere":
		center, err := vec3("center", o.center)
		if err != nil {
			return nil, 0, err
		}
		var buf []float64
		switch {
		case primitive == "sphere":
			buf, err = geometry.Sphere(center, o.radius,
				orDefault(o.rings, geometry.DefaultSphereRings),
				orDefault(o.sectors, geometry.DefaultSphereSectors))
		case len(o.size) == 1:
			buf, err = geometry.Cube(center, o.size[0])
		default:
			var size math.Vec3
			if size, err = vec3("size", o.size); err == nil {
				buf, err = geometry.Cuboid(center, size)
			}
		}
		return buf, 3, err
	}
	return nil, 0, fmt.Errorf("unknown primitive %q, expected one of %s: %w", primitive, strings.Join(primitives, ", "), core.ErrDomain)
}

// transform applies --scale, --rotate and --translate, in that order.
func (o *verticesOptions) transform(buf []float64, dim int) ([]float64, error) {
	if o.translate == nil && o.rotate == nil && o.scale == nil {
		return buf, nil
	}
	t := math.NewTransform()
	if o.translate != nil {
		p, err := vec3("translate", o.translate)
		if err != nil {
			return nil, err
		}
		t.SetPosition(p)
	}
	if o.rotate != nil {
		if len(o.rotate) != 4 {
			return nil, fmt.Errorf("--rotate needs x,y,z,angle: %w", core.ErrArity)
		}
		axis := math.NewVec3(o.rotate[0], o.rotate[1], o.rotate[2])
		t.SetRotation(math.NewQuatFromAxisAngle(axis, o.rotate[3], true))
	}
	if o.scale != nil {
		s, err := vec3("scale", o.scale)
		if err != nil {
			return nil, err
		}
		t.SetScale(s)
	}
	return geometry.TransformBuffer(buf, dim, t)
}

func printBuffer(w io.Writer, primitive string, buf []float64, dim int) {
	printTitle(w, fmt.Sprintf("%s: %d vertices, %d values", primitive, len(buf)/dim, len(buf)))
	for _, v := range lo.Chunk(buf, dim) {
		fmt.Fprintln(w, formatArgs(v))
	}
}

func printMesh(w io.Writer, buf []float64, dim int) error {
	if dim != 3 {
		return fmt.Errorf("--mesh needs a 3D triangle list: %w", core.ErrDomain)
	}
	mesh, err := geometry.NewMesh(buf)
	if err != nil {
		return err
	}
	printTitle(w, fmt.Sprintf("mesh: %d vertices, %d triangles", len(mesh.Vertices), mesh.TriangleCount()))
	fmt.Fprintf(w, "%s %s\n", mutedStyle.Render("extents min"), formatVec3(mesh.Extents.Min))
	fmt.Fprintf(w, "%s %s\n", mutedStyle.Render("extents max"), formatVec3(mesh.Extents.Max))
	for i, v := range mesh.Vertices {
		fmt.Fprintf(w, "v%-4d %s  n %s\n", i, formatVec3(v.Position), formatVec3(v.Normal))
	}
	for _, tri := range lo.Chunk(mesh.Indices, 3) {
		fmt.Fprintf(w, "f %d %d %d\n", tri[0], tri[1], tri[2])
	}
	return nil
}

func formatVec3(v math.Vec3) string {
	return formatArgs([]float64{v.X, v.Y, v.Z})
}
