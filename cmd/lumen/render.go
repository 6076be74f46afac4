package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/lumen-engine/lumen/pkg/core"
	"github.com/lumen-engine/lumen/pkg/integrator"
	"github.com/lumen-engine/lumen/pkg/renderer"
	"github.com/lumen-engine/lumen/pkg/scene"
)

// renderConfig holds every render setting; a TOML file can supply any of
// them, and explicitly set flags win over the file
type renderConfig struct {
	Scene   string `toml:"scene"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Samples int    `toml:"samples"`
	Depth   int    `toml:"depth"`
	Workers int    `toml:"workers"`
	Seed    int64  `toml:"seed"`
	Output  string `toml:"output"`
}

func defaultConfig() renderConfig {
	return renderConfig{
		Scene:   "cornell",
		Width:   600,
		Height:  600,
		Samples: 200,
		Depth:   50,
		Workers: 0,
		Seed:    42,
		Output:  "render.png",
	}
}

func newRenderCommand() *cobra.Command {
	flags := defaultConfig()
	var configPath string

	cmd := &cobra.Command{
		Use:   "render",
		Short: fmt.Sprintf("Render a built-in scene %v to a PNG", scene.Names()),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := mergeConfig(cmd, flags, configPath)
			if err != nil {
				return err
			}
			return runRender(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&flags.Scene, "scene", flags.Scene, "scene to render")
	cmd.Flags().IntVar(&flags.Width, "width", flags.Width, "image width in pixels")
	cmd.Flags().IntVar(&flags.Height, "height", flags.Height, "image height in pixels")
	cmd.Flags().IntVar(&flags.Samples, "samples", flags.Samples, "samples per pixel")
	cmd.Flags().IntVar(&flags.Depth, "depth", flags.Depth, "maximum path depth")
	cmd.Flags().IntVar(&flags.Workers, "workers", flags.Workers, "render workers (0 = one per CPU)")
	cmd.Flags().Int64Var(&flags.Seed, "seed", flags.Seed, "base random seed")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", flags.Output, "output PNG path")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")

	return cmd
}

// mergeConfig layers settings: defaults, then the TOML file, then any flag
// the user set explicitly
func mergeConfig(cmd *cobra.Command, flags renderConfig, configPath string) (renderConfig, error) {
	cfg := flags
	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	fileCfg := defaultConfig()
	if err := toml.Unmarshal(data, &fileCfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", configPath, err)
	}

	cfg = fileCfg
	set := cmd.Flags().Changed
	if set("scene") {
		cfg.Scene = flags.Scene
	}
	if set("width") {
		cfg.Width = flags.Width
	}
	if set("height") {
		cfg.Height = flags.Height
	}
	if set("samples") {
		cfg.Samples = flags.Samples
	}
	if set("depth") {
		cfg.Depth = flags.Depth
	}
	if set("workers") {
		cfg.Workers = flags.Workers
	}
	if set("seed") {
		cfg.Seed = flags.Seed
	}
	if set("output") {
		cfg.Output = flags.Output
	}
	return cfg, nil
}

func runRender(cmd *cobra.Command, cfg renderConfig) error {
	aspect := float64(cfg.Width) / float64(cfg.Height)
	s, err := scene.Build(cfg.Scene, aspect)
	if err != nil {
		return err
	}
	logger.Infof("scene %q loaded", cfg.Scene)
	if bvh, ok := s.World.(*core.BVH); ok {
		bs := bvh.Stats()
		logger.Infof("bvh: %d primitives, %d nodes (%d leaves), max depth %d",
			bs.Primitives, bs.TotalNodes, bs.LeafNodes, bs.MaxDepth)
	}

	tracer := integrator.NewPathTracer(s.World, s.Lights, s.Background, cfg.Depth)
	r, err := renderer.New(renderer.Options{
		Width:           cfg.Width,
		Height:          cfg.Height,
		SamplesPerPixel: cfg.Samples,
		Workers:         cfg.Workers,
		Seed:            cfg.Seed,
	})
	if err != nil {
		return err
	}

	img, stats, err := r.Render(cmd.Context(), tracer, s.Camera)
	if err != nil {
		return err
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", cfg.Output, err)
	}
	logger.Infof("wrote %s", cfg.Output)

	stats.WriteTable(cmd.OutOrStdout())
	return nil
}
