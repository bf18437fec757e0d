package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andyrewlee/carousel/internal/config"
	"github.com/andyrewlee/carousel/internal/deck"
	"github.com/andyrewlee/carousel/internal/export"
	"github.com/andyrewlee/carousel/internal/logging"
	"github.com/andyrewlee/carousel/internal/ui/common"
	"github.com/andyrewlee/carousel/internal/validation"
)

type exportFlags struct {
	out    string
	width  int
	height int
}

func newExportCmd(g *globalFlags) *cobra.Command {
	var ef exportFlags
	cmd := &cobra.Command{
		Use:   "export [deck]",
		Short: "Render every slide to a PNG frame",
		Long: `Render each slide as the carousel shows it in a terminal of the given
size and write frame-001.png, frame-002.png, ... into the output directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, *g, ef)
		},
	}
	cmd.Flags().StringVarP(&ef.out, "out", "o", "", "Output directory (default ~/.carousel/frames)")
	cmd.Flags().IntVar(&ef.width, "width", 80, "Frame width in columns")
	cmd.Flags().IntVar(&ef.height, "height", 24, "Frame height in rows")
	return cmd
}

func runExport(cmd *cobra.Command, args []string, g globalFlags, ef exportFlags) error {
	if err := validation.ValidateTheme(g.theme); err != nil {
		return err
	}
	if err := validation.ValidateFrameSize(ef.width, ef.height); err != nil {
		return err
	}
	level, err := logging.ParseLevel(g.logLevel)
	if err != nil {
		return err
	}
	logging.InitializeWriter(cmd.ErrOrStderr(), level)
	defer logging.Close()

	cfg, err := loadConfig(g.home)
	if err != nil {
		return err
	}
	config.Overrides{Theme: g.theme}.Apply(cfg)

	d, err := loadDeck(args)
	if err != nil {
		return err
	}
	opts := export.DefaultOptions(cfg.Paths.ExportRoot)
	if ef.out != "" {
		opts.Dir = ef.out
	}
	opts.Width, opts.Height = ef.width, ef.height
	opts.Theme = common.GetTheme(common.ThemeID(cfg.UI.Theme))

	if d == nil {
		d = deck.Demo()
	}
	paths, err := export.Frames(d, opts)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	for _, p := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}
