package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/boxlayout/css"
	"github.com/npillmayer/boxlayout/graph"
	"github.com/npillmayer/boxlayout/layout"
	"github.com/npillmayer/boxlayout/layoutdbg"
	"github.com/npillmayer/boxlayout/theme"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// Config holds the settings of a boxdump run. Values come from flags, the
// environment (prefix BOXDUMP_) and an optional config file, in this order
// of precedence.
type Config struct {
	CSS      string  `mapstructure:"css"`
	Width    float64 `mapstructure:"width"`
	Height   float64 `mapstructure:"height"`
	Format   string  `mapstructure:"format"`
	Trace    string  `mapstructure:"trace"`
	MaxDepth int     `mapstructure:"maxdepth"`
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:   "boxdump [flags] widgets.yaml",
		Short: "boxdump lays out a widget tree and prints the resulting boxes.",
		Args:  cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg Config
			if err := v.Unmarshal(&cfg); err != nil {
				return fmt.Errorf("failed to unmarshal config: %w", err)
			}
			setupTracing(cfg.Trace, cmd.ErrOrStderr())
			return dump(cfg, args[0], cmd.OutOrStdout())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./boxdump.yaml)")
	flags := cmd.Flags()
	flags.String("css", "", "style sheet for the theme")
	flags.Float64("width", 800, "maximum width of the root widget")
	flags.Float64("height", 600, "maximum height of the root widget")
	flags.String("format", "tree", "output format: tree or dot")
	flags.String("trace", "error", "trace level: error, info or debug")
	flags.Int("maxdepth", 0, "maximum nesting depth of the widget tree (0 = unlimited)")
	for _, key := range []string{"css", "width", "height", "format", "trace", "maxdepth"} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}
	return cmd
}

// initializeConfig reads in config file and ENV variables if set.
func initializeConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("boxdump")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix("BOXDUMP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// setupTracing routes all tracers to a Go logger writing to w.
func setupTracing(level string, w io.Writer) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	t := tracing.Select("boxlayout")
	t.SetOutput(w)
	t.SetTraceLevel(tracing.TraceLevelFromString(level))
}

// dump builds the widget graph described in file, lays it out and writes
// the result to w.
func dump(cfg Config, file string, w io.Writer) error {
	th, err := loadTheme(cfg.CSS)
	if err != nil {
		return err
	}
	desc, err := readDescriptionFile(file)
	if err != nil {
		return err
	}
	var opts []layout.Option
	if cfg.MaxDepth > 0 {
		opts = append(opts, layout.MaxDepth(cfg.MaxDepth))
	}
	g := graph.New(th, opts...)
	root, err := desc.build(g)
	if err != nil {
		return err
	}
	size, err := layoutGraph(g, root, layout.Loose(layout.Dim(cfg.Width, cfg.Height)))
	if err != nil {
		return err
	}
	tracing.Select("boxlayout").Infof("laid out %d widgets, root is %v", g.Len(), size)
	switch strings.ToLower(cfg.Format) {
	case "", "tree":
		_, err = io.WriteString(w, layoutdbg.Print(g, root))
		return err
	case "dot":
		return layoutdbg.ToGraphViz(g, root, w)
	}
	return fmt.Errorf("unknown output format %q", cfg.Format)
}

// layoutGraph runs a layout pass, turning structural panics of the driver
// into errors.
func layoutGraph(g *graph.Graph, root layout.ID, c layout.BoxConstraints) (size layout.Dimensions, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("layout failed: %v", r)
		}
	}()
	return g.Layout(root, c)
}

// loadTheme creates a theme from a style sheet file. Malformed rules or
// declarations are traced and skipped; an empty path yields the default
// theme.
func loadTheme(path string) (*theme.Theme, error) {
	if path == "" {
		return theme.Default(), nil
	}
	sheet, err := css.ParseFile(path)
	if err != nil {
		return nil, err
	}
	for _, diag := range multierr.Errors(sheet.Diagnostics()) {
		tracing.Select("boxlayout").Errorf("%s: %v", path, diag)
	}
	return theme.New(sheet, theme.WithName(path)), nil
}
