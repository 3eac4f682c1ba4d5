package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/hiveden/linver/internal/branding"
	"github.com/hiveden/linver/internal/config"
	"github.com/hiveden/linver/internal/dialog"
	"github.com/hiveden/linver/internal/hw"
	"github.com/hiveden/linver/internal/logging"
	"github.com/hiveden/linver/internal/ui"
	"gopkg.in/yaml.v2"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfg    *config.Config
	logger = logr.Discard()
)

func main() {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "linver",
		Short:         "Show an About box for this Linux system",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(viper.GetViper(), configFile)
			if err != nil {
				return err
			}
			logger, err = logging.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return fmt.Errorf("failed to set up logging: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return showDialog(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/linver/config.yaml)")
	rootCmd.PersistentFlags().String("renderer", config.RendererAuto, "How to show the dialog: auto, gtk or tui")
	rootCmd.PersistentFlags().String("assets-dir", config.DefaultAssetsDir, "Directory holding the <key>.png logos")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
	viper.BindPFlag("renderer", rootCmd.PersistentFlags().Lookup("renderer"))
	viper.BindPFlag("assets_dir", rootCmd.PersistentFlags().Lookup("assets-dir"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(buildInfoCommand())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func showDialog(ctx context.Context) error {
	snap := hw.NewCollector(logger.WithName("collector"), cfg.OSReleasePath).Collect(ctx)
	d := dialog.Build(snap, branding.Map(snap.DistroName))

	assets := ui.NewAssetResolver(cfg.AssetsDir, logger.WithName("assets"))
	if missing := assets.Missing(); len(missing) > 0 {
		logger.V(1).Info("logos not installed", "dir", cfg.AssetsDir, "keys", missing)
	}

	renderer, err := newRenderer(ui.Kind(cfg.Renderer, os.Getenv), assets)
	if err != nil {
		return err
	}

	return renderer.Show(ctx, d)
}

func newRenderer(kind string, assets *ui.AssetResolver) (ui.Renderer, error) {
	switch kind {
	case config.RendererGTK:
		return newGTKRenderer(assets, logger.WithName("gtk"))
	case config.RendererTerminal:
		return ui.NewTerminal(logger.WithName("tui")), nil
	default:
		return nil, fmt.Errorf("unsupported renderer %q", kind)
	}
}

type infoReport struct {
	Snapshot hw.SystemSnapshot       `json:"snapshot" yaml:"snapshot"`
	Profile  branding.DisplayProfile `json:"profile" yaml:"profile"`
	Hardware *hw.HardwareSummary     `json:"hardware,omitempty" yaml:"hardware,omitempty"`
}

func buildInfoCommand() *cobra.Command {
	var format string
	var hardware bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the collected system information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := hw.NewCollector(logger.WithName("collector"), cfg.OSReleasePath).Collect(cmd.Context())
			report := infoReport{Snapshot: snap, Profile: branding.Map(snap.DistroName)}

			if hardware {
				summary, err := hw.GetHardwareSummary()
				if err != nil {
					return err
				}
				report.Hardware = summary
			}

			return writeReport(cmd.OutOrStdout(), format, report)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, yaml or json")
	cmd.Flags().BoolVar(&hardware, "hardware", false, "Include a CPU and memory summary")

	return cmd
}

func writeReport(w io.Writer, format string, r infoReport) error {
	switch format {
	case "yaml":
		out, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = w.Write(out)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "text":
		d := dialog.Build(r.Snapshot, r.Profile)
		fmt.Fprintln(w, d.Title)
		for _, l := range d.Labels {
			fmt.Fprintln(w, l.Text)
		}
		fmt.Fprintf(w, "Logo: %s\n", r.Profile.AssetKey)
		if h := r.Hardware; h != nil {
			fmt.Fprintf(w, "CPU: %s (%d cores, %d threads)\n", h.CPUModel, h.Cores, h.Threads)
			fmt.Fprintf(w, "Memory: %d MiB\n", h.MemoryBytes/(1<<20))
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q: must be text, yaml or json", format)
	}
}
