package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/math/f64"
	"k8s.io/klog/v2"

	rotio "simdmath/io"
	"simdmath/math"
	"simdmath/scene"
)

// Negative numbers must follow "--" so they are not read as flags.
const argsExample = `  rotconv axis-angle --degrees 90 0 0 1
  rotconv from-to -o json -- 1 0 0 -1 0 0`

func newAxisAngleCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "axis-angle ANGLE X Y Z",
		Short:   "Convert a rotation by ANGLE about the axis (X, Y, Z)",
		Example: argsExample,
		Args:    cobra.ExactArgs(4),
		RunE: func(c *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			return runEntry(c, rotio.RotationEntry{
				AxisAngle: &rotio.AxisAngleData{Angle: v[0], Axis: [3]float64{v[1], v[2], v[3]}},
			})
		},
	}
}

func newQuatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "quat X Y Z W",
		Short: "Describe the rotation of a quaternion, normalizing it first",
		Args:  cobra.ExactArgs(4),
		RunE: func(c *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			return runEntry(c, rotio.RotationEntry{Quaternion: &[4]float64{v[0], v[1], v[2], v[3]}})
		},
	}
}

func newMatrixCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix M00 M01 M02 M10 M11 M12 M20 M21 M22",
		Short: "Convert a 3x3 rotation matrix given row by row",
		Args:  cobra.ExactArgs(9),
		RunE: func(c *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			m := f64.Mat3(v)
			return runEntry(c, rotio.RotationEntry{Matrix: &m})
		},
	}
}

func newFromToCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "from-to FX FY FZ TX TY TZ",
		Short:   "Find the shortest rotation taking one direction onto another",
		Example: argsExample,
		Args:    cobra.ExactArgs(6),
		RunE: func(c *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			return runEntry(c, rotio.RotationEntry{
				FromTo: &rotio.FromToData{From: [3]float64{v[0], v[1], v[2]}, To: [3]float64{v[3], v[4], v[5]}},
			})
		},
	}
}

func newBatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Convert every rotation in a YAML or JSON rotation file",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			f, err := rotio.LoadRotations(args[0])
			if err != nil {
				return err
			}
			klog.V(2).Infof("rotconv: %d rotations in %s", len(f.Rotations), args[0])

			results, err := rotio.Convert(f, cfg.Converter(), cfg.Degrees)
			if err != nil {
				return err
			}
			return newPrinter(c.OutOrStdout(), cfg).print(results)
		},
	}
}

func newGLTFCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "gltf FILE",
		Short: "List the node rotations of a glTF scene",
		Long: "List the local rotation of every node in a .gltf or .glb file. With --out,\n" +
			"matrix nodes are rewritten as translation/rotation/scale and the scene is saved.",
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			res, err := scene.LoadGLTF(args[0])
			if err != nil {
				return err
			}

			results := make([]rotio.RotationResult, 0, len(res.Nodes))
			for _, n := range res.Nodes {
				results = append(results, rotio.NewRotationResult(n.Name, n.Transform.Rotation, cfg.Degrees))
				if out != "" && n.FromMatrix {
					scene.ApplyTransform(res.Document.Nodes[n.Index], n.Transform)
				}
			}
			if err := newPrinter(c.OutOrStdout(), cfg).print(results); err != nil {
				return err
			}

			if out == "" {
				return nil
			}
			klog.V(1).Infof("rotconv: writing %s", out)
			return scene.SaveGLTF(res.Document, out)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "write the scene with matrix nodes decomposed to this file")
	return cmd
}

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-out-cubic": ease.InOutCubic,
	"in-out-sine":  ease.InOutSine,
}

func easingNames() string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func newTweenCommand() *cobra.Command {
	var (
		steps  int
		easing string
	)
	cmd := &cobra.Command{
		Use:   "tween X1 Y1 Z1 W1 X2 Y2 Z2 W2",
		Short: "Print the rotations along the shortest arc between two quaternions",
		Args:  cobra.ExactArgs(8),
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			fn, ok := easings[easing]
			if !ok {
				return fmt.Errorf("unknown easing %q, want one of %s", easing, easingNames())
			}
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1, got %d", steps)
			}
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			from := math.NewQuaternion(v[0], v[1], v[2], v[3]).Normalize()
			to := math.NewQuaternion(v[4], v[5], v[6], v[7]).Normalize()

			tw := scene.NewRotationTween(from, to, float32(steps), fn)
			results := []rotio.RotationResult{rotio.NewRotationResult("step 0", from, cfg.Degrees)}
			for i := 1; i <= steps; i++ {
				q, _ := tw.Update(1)
				results = append(results, rotio.NewRotationResult(fmt.Sprintf("step %d", i), q, cfg.Degrees))
			}
			return newPrinter(c.OutOrStdout(), cfg).print(results)
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 4, "number of steps after the start rotation")
	cmd.Flags().StringVar(&easing, "ease", "linear", "easing function: "+easingNames())
	return cmd
}

// runEntry resolves a single rotation and prints it.
func runEntry(c *cobra.Command, e rotio.RotationEntry) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	q, err := e.Resolve(cfg.Converter(), cfg.Degrees)
	if err != nil {
		return err
	}
	return newPrinter(c.OutOrStdout(), cfg).print([]rotio.RotationResult{rotio.NewRotationResult("", q, cfg.Degrees)})
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d %q: %w", i+1, s, err)
		}
		out[i] = v
	}
	return out, nil
}
