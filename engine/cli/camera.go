package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/spaghettifunk/icemath/engine/core"
	"github.com/spaghettifunk/icemath/engine/math"
)

type cameraOptions struct {
	position    []float64
	rotation    []float64
	perspective []float64
	moves       []string
}

func newCameraCommand(_ *app) *cobra.Command {
	o := &cameraOptions{}

	cmd := &cobra.Command{
		Use:   "camera",
		Short: "Print the view matrix and axes of a free-look camera",
		Long: `Builds a camera from --position and --rotation (pitch, yaw, roll in radians),
applies --move steps in order and prints its view matrix, optionally multiplied
by a perspective projection. Move steps are forward, backward, left, right,
up, down, yaw or pitch followed by an amount, e.g. forward=2 or yaw=0.5.`,
		Example: `  icemath camera --position 0,1,5
  icemath camera --move yaw=1.5708 --move forward=2 --perspective 0.785,1.777,0.1,100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.perspective != nil && len(o.perspective) != 4 {
				return fmt.Errorf("--perspective needs fov,aspect,near,far: %w", core.ErrArity)
			}
			c := math.NewCamera()
			position, err := vec3("position", o.position)
			if err != nil {
				return err
			}
			rotation, err := vec3("rotation", o.rotation)
			if err != nil {
				return err
			}
			c.SetPosition(position)
			c.SetEulerRotation(rotation)
			for _, m := range o.moves {
				if err := applyMove(c, m); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			printTitle(out, "camera")
			fmt.Fprintf(out, "%s %s\n", mutedStyle.Render("position"), formatVec3(c.Position))
			fmt.Fprintf(out, "%s %s\n", mutedStyle.Render("forward "), formatVec3(c.Forward()))
			fmt.Fprintf(out, "%s %s\n", mutedStyle.Render("right   "), formatVec3(c.Right()))

			view := c.GetView()
			printMatrix(out, "view", view)
			if o.perspective != nil {
				p := o.perspective
				projection := math.NewMat4Perspective(p[0], p[1], p[2], p[3])
				printMatrix(out, "view-projection", view.Mul(projection))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64SliceVar(&o.position, "position", nil, "camera position x,y,z")
	f.Float64SliceVar(&o.rotation, "rotation", nil, "pitch,yaw,roll in radians")
	f.Float64SliceVar(&o.perspective, "perspective", nil, "also print view*projection for fov,aspect,near,far")
	f.StringArrayVar(&o.moves, "move", nil, "move step as name=amount, repeatable")
	return cmd
}

func applyMove(c *math.Camera, step string) error {
	name, value, ok := strings.Cut(step, "=")
	if !ok {
		return fmt.Errorf("move %q is not name=amount: %w", step, core.ErrDomain)
	}
	amount, err := parseArgs([]string{value})
	if err != nil {
		return fmt.Errorf("move %q: %w", step, err)
	}

	moves := map[string]func(float64){
		"forward":  c.MoveForward,
		"backward": c.MoveBackward,
		"left":     c.MoveLeft,
		"right":    c.MoveRight,
		"up":       c.MoveUp,
		"down":     c.MoveDown,
		"yaw":      c.Yaw,
		"pitch":    c.Pitch,
	}
	fn, ok := moves[name]
	if !ok {
		names := lo.Keys(moves)
		sort.Strings(names)
		return fmt.Errorf("unknown move %q, expected one of %s: %w", name, strings.Join(names, ", "), core.ErrDomain)
	}
	fn(amount[0])
	return nil
}

// printMatrix prints m row by row, as it reads on paper.
func printMatrix(w io.Writer, title string, m math.Mat4) {
	printTitle(w, title)
	for row := 0; row < 4; row++ {
		fmt.Fprintf(w, "  [%s]\n", formatArgs([]float64{
			m.Data[row], m.Data[4+row], m.Data[8+row], m.Data[12+row],
		}))
	}
}
