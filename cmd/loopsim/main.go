package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/loopsim/internal/analysis"
	"github.com/san-kum/loopsim/internal/config"
	"github.com/san-kum/loopsim/internal/export"
	"github.com/san-kum/loopsim/internal/logging"
	"github.com/san-kum/loopsim/internal/loop"
	"github.com/san-kum/loopsim/internal/metrics"
	"github.com/san-kum/loopsim/internal/server"
	"github.com/san-kum/loopsim/internal/viz"
)

var (
	verbose    bool
	configFile string
	presetName string

	generateOut string
	exportOut   string
	formatArg   string

	host string
	port int

	showPreset string

	log = logging.Nop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "loopsim",
		Short:         "deterministic circular loop generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(verbose)
			if err != nil {
				return err
			}
			log = l
			return nil
		},
	}
	rootCmd.SetGlobalNormalizationFunc(legacyFlagNames)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&presetName, "preset", "", "base parameter preset")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "write compact JSON frames",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
	addParamFlags(generateCmd.Flags())
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "-", "output file, - for stdout")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export a loop to a file",
		Long:  "Export a loop to a file. Without --preset the showcase preset is used.",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}
	addParamFlags(exportCmd.Flags())
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default from config, else loop.json)")
	exportCmd.Flags().StringVarP(&formatArg, "format", "f", "", "one of json, json-compact, csv, svg, png, html (default from extension)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&host, "host", "", "listen host (default $HOST, else config)")
	serveCmd.Flags().IntVar(&port, "port", 0, "listen port (default $PORT, else config)")

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "print derived constants, metrics and plots",
		Args:  cobra.NoArgs,
		RunE:  runInspect,
	}
	addParamFlags(inspectCmd.Flags())

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list parameter presets",
		Args:  cobra.NoArgs,
		RunE:  runPresets,
	}
	presetsCmd.Flags().StringVar(&showPreset, "show", "", "print one preset as a config file")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "play the loop in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveParams(cmd.Flags(), "")
			if err != nil {
				return err
			}
			return viz.RunPreview(cfg.Params)
		},
	}
	addParamFlags(previewCmd.Flags())

	rootCmd.AddCommand(generateCmd, exportCmd, serveCmd, inspectCmd, presetsCmd, previewCmd)
	return rootCmd
}

// openOutput returns w for "-" and a created file otherwise.
func openOutput(path string, w io.Writer) (io.Writer, func() error, error) {
	if path == "-" {
		return w, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveParams(cmd.Flags(), "")
	if err != nil {
		return err
	}

	doc := export.NewDocument(cfg.Params)
	log.Debug("generated", zap.Int("frames", len(doc.Frames)))

	w, closeFn, err := openOutput(generateOut, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := export.Write(w, export.JSONCompact, doc); err != nil {
		return errors.Join(err, closeFn())
	}
	return closeFn()
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := resolveParams(cmd.Flags(), "showcase")
	if err != nil {
		return err
	}

	path := exportOut
	if path == "" {
		path = cfg.Output
	}

	format := export.FormatForPath(path)
	if formatArg != "" {
		if format, err = export.ParseFormat(formatArg); err != nil {
			return err
		}
	}

	doc := export.NewDocument(cfg.Params)
	w, closeFn, err := openOutput(path, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := export.Write(w, format, doc); err != nil {
		return errors.Join(fmt.Errorf("write %s: %w", path, err), closeFn())
	}
	if err := closeFn(); err != nil {
		return err
	}

	log.Info("exported",
		zap.String("path", path),
		zap.Stringer("format", format),
		zap.Int("frames", len(doc.Frames)),
		zap.String("preset", cfg.Preset),
	)
	return nil
}

// listenAddr picks host and port from flags, then $HOST/$PORT, then config.
func listenAddr(cmd *cobra.Command, srv config.ServerConfig) (string, error) {
	if v := os.Getenv("HOST"); v != "" {
		srv.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return "", fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		srv.Port = p
	}
	if cmd.Flags().Changed("host") {
		srv.Host = host
	}
	if cmd.Flags().Changed("port") {
		srv.Port = port
	}
	return srv.Addr(), nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadWithPreset(configFile, "")
	if err != nil {
		return err
	}
	addr, err := listenAddr(cmd, cfg.Server)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(log).Run(ctx, addr)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := resolveParams(cmd.Flags(), "")
	if err != nil {
		return err
	}
	p := cfg.Params
	tl := loop.Plan(p)
	frames := loop.Generate(p)
	out := cmd.OutOrStdout()

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FRAMES\tDT\tPERIOD\tOMEGA\tZETA\tOMEGA_POS\tOMEGA_ORIENT\tPRE_ROLL")
	fmt.Fprintf(w, "%d\t%.5f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%d\n",
		tl.Steps, tl.Dt, tl.Period, tl.OmegaTarget, tl.Zeta, tl.OmegaPos, tl.OmegaOrient, tl.PreRollSteps)
	w.Flush()
	fmt.Fprintln(out)

	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, r := range metrics.Evaluate(frames, metrics.Defaults(p)...) {
		fmt.Fprintf(w, "%s\t%.6g\n", r.Name, r.Value)
	}
	w.Flush()
	fmt.Fprintln(out)

	xs := make([]float64, len(frames))
	increments := make([]float64, 0, len(frames))
	tangents := make([]float64, len(frames))
	for i, f := range frames {
		xs[i] = f.X
		tangents[i] = f.ScaleTangent
		if i > 0 {
			increments = append(increments, f.TravelAngle-frames[i-1].TravelAngle)
		}
	}

	fmt.Fprintf(out, "dominant frequency: %.4f hz (expected %.4f hz)\n\n",
		analysis.DominantFrequency(xs, tl.Dt), float64(tl.Loops)/tl.Period)

	if len(increments) > 1 {
		fmt.Fprintln(out, asciigraph.Plot(increments,
			asciigraph.Height(8),
			asciigraph.Width(70),
			asciigraph.Caption("angle increment per frame (rad)"),
		))
		fmt.Fprintln(out)
	}
	if len(tangents) > 1 {
		fmt.Fprintln(out, asciigraph.Plot(tangents,
			asciigraph.Height(8),
			asciigraph.Width(70),
			asciigraph.Caption("scale_tangent"),
		))
	}
	return nil
}

func runPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if showPreset != "" {
		p, err := config.GetPreset(showPreset)
		if err != nil {
			return err
		}
		cfg := config.DefaultConfig()
		cfg.Preset = p.Name
		cfg.Params = p.Params
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		fmt.Fprintf(w, "%s\t%s\n", name, config.Presets[name].Description)
	}
	return w.Flush()
}
