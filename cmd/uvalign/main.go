// Command uvalign runs UV alignment operators on Wavefront OBJ meshes.
//
// Usage:
//
//	uvalign apply --config job.toml --in mesh.obj --out aligned.obj
//	uvalign ops
//	uvalign preview --in mesh.obj --out uv.png
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/uvalign"
	"github.com/gogpu/uvalign/internal/config"
	"github.com/gogpu/uvalign/internal/preview"
	"github.com/gogpu/uvalign/mesh"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "uvalign",
		Short:        "Align UV coordinates of mesh selections",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			uvalign.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log selection analysis to stderr")
	root.AddCommand(newApplyCmd(), newOpsCmd(), newPreviewCmd())
	return root
}

func newApplyCmd() *cobra.Command {
	var (
		cfgPath, in, out, op, align string
		transmission, influence     bool
		selectMoved                 bool
	)
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Run an operator on the selection described by a job file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			job := &config.Job{}
			if cfgPath != "" {
				var err error
				if job, err = config.Load(cfgPath); err != nil {
					return err
				}
			}
			flags := cmd.Flags()
			if flags.Changed("op") {
				job.Op = op
			}
			if flags.Changed("align") {
				job.Align = align
			}
			if flags.Changed("transmission") {
				job.Transmission = transmission
			}
			if flags.Changed("vertex-influence") {
				job.VertexInfluence = influence
			}
			if flags.Changed("select") {
				job.Select = selectMoved
			}
			if err := job.Validate(); err != nil {
				return err
			}

			m, err := readMesh(in)
			if err != nil {
				return err
			}
			if err := job.ApplySelection(m); err != nil {
				return err
			}
			opts, err := job.Options()
			if err != nil {
				return err
			}
			res, err := uvalign.Run(job.Op, m, opts...)
			if err != nil {
				return err
			}
			cmd.PrintErrf("%s: %d UVs moved\n", res.Operator, res.Moved)
			return writeMesh(m, out, cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.StringVarP(&cfgPath, "config", "c", "", "TOML job file")
	f.StringVarP(&in, "in", "i", "", "input OBJ file (required)")
	f.StringVarP(&out, "out", "o", "", "output OBJ file (default stdout)")
	f.StringVar(&op, "op", "", "operator name, overrides the job file")
	f.StringVar(&align, "align", "", "axis alignment: left-top, middle or right-bottom")
	f.BoolVar(&transmission, "transmission", false, "straighten-grid: lay out every face beyond the edge")
	f.BoolVar(&influence, "vertex-influence", false, "straighten-grid: space rows by 3D distance")
	f.BoolVar(&selectMoved, "select", false, "select the UVs that were moved")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List available operators",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, op := range uvalign.List() {
				cmd.Printf("%-16s %-18s %s\n", op.Name, op.Label, op.Description)
			}
		},
	}
}

func newPreviewCmd() *cobra.Command {
	var (
		cfgPath, in, out string
		size             int
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the UV layout of a mesh to PNG",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := readMesh(in)
			if err != nil {
				return err
			}
			if cfgPath != "" {
				job, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				if err := job.ApplySelection(m); err != nil {
					return err
				}
			}
			opts := preview.DefaultOptions()
			opts.Size = size

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := preview.Encode(f, m, opts); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	f := cmd.Flags()
	f.StringVarP(&cfgPath, "config", "c", "", "TOML job file whose selection is highlighted")
	f.StringVarP(&in, "in", "i", "", "input OBJ file (required)")
	f.StringVarP(&out, "out", "o", "uv.png", "output PNG file")
	f.IntVar(&size, "size", preview.DefaultOptions().Size, "image size in pixels")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func readMesh(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := mesh.ReadOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func writeMesh(m *mesh.Mesh, path string, stdout io.Writer) error {
	if path == "" {
		return m.WriteOBJ(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.WriteOBJ(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
