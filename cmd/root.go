// Package cmd is the command line entry point: it resolves the configuration, loads the mesh and runs the viewer.
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"mesh_viewer/config"
	"mesh_viewer/meshio"
	"mesh_viewer/model"
	"mesh_viewer/renderer"
	"mesh_viewer/viewer"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand builds the 'meshview [mesh]' command. The optional argument takes precedence over the mesh set by
// flag, config file or environment.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "meshview [mesh]",
		Short:         "Show an OBJ or STL mesh in an interactive window",
		Long:          "Loads a triangle mesh, colors it uniformly and shows it until the window is closed.\n\nDrag with the left mouse button to rotate, scroll to zoom. Keys: L wireframe, T faces, O orthographic, Z reset view, A spin, Esc quit.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				v.Set(config.KEY_MESH, args[0])
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return Run(ctx, cfg)
		},
	}

	d := config.Defaults()
	flags := cmd.Flags()
	flags.String("config", "", "config file (yaml, json or toml)")
	flags.String("mesh", d.MeshPath, "mesh file to show")
	flags.String("shaders", d.ShaderDir, "directory with the compiled vert.spv and frag.spv")
	flags.String("title", d.Title, "window title")
	flags.Int32("width", d.Width, "window width")
	flags.Int32("height", d.Height, "window height")
	flags.Bool("validation", d.Validation, "enable the Vulkan validation layers if available")
	flags.String("color", config.FormatColor(d.MeshColor), "mesh color as 'r,g,b' in [0,1]")
	flags.String("background", config.FormatColor(d.Background), "background color as 'r,g,b' in [0,1]")

	bindings := map[string]string{
		config.KEY_CONFIG_FILE: "config",
		config.KEY_MESH:        "mesh",
		config.KEY_SHADER_DIR:  "shaders",
		config.KEY_TITLE:       "title",
		config.KEY_WIDTH:       "width",
		config.KEY_HEIGHT:      "height",
		config.KEY_VALIDATION:  "validation",
		config.KEY_MESH_COLOR:  "color",
		config.KEY_BACKGROUND:  "background",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			log.Panicf("Failed to bind flag --%s: %v", flag, err)
		}
	}
	return cmd
}

// Run loads the mesh named by cfg, colors it and shows it until the window is closed or ctx is done
func Run(ctx context.Context, cfg *config.Config) error {
	mesh, err := meshio.ReadFile(cfg.MeshPath)
	if err != nil {
		return fmt.Errorf("load mesh: %w", err)
	}

	core := renderer.NewCore(renderer.Settings{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Validation: cfg.Validation,
		ShaderDir:  cfg.ShaderDir,
	})
	v := viewer.New(core, viewer.WithName(filepath.Base(cfg.MeshPath)))
	v.Core().BackgroundColor = cfg.Background

	if err = v.Data().SetMesh(mesh.V, mesh.F); err != nil {
		return err
	}
	if err = v.Data().SetColors(model.UniformColors(len(mesh.V), cfg.MeshColor)); err != nil {
		return err
	}
	return v.Launch(ctx)
}

func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}
