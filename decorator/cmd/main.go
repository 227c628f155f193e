package main

import (
	"fmt"
	"os"

	"github.com/go-leo/design-pattern/decorator"
	"github.com/go-leo/design-pattern/metrics"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type cli struct {
	payload string
	with    []string
	json    bool
	verbose bool
	logger  *zap.Logger
}

// rendering is the --json output of the render command.
type rendering struct {
	Payload       string           `json:"payload"`
	Augmentations []decorator.Kind `json:"augmentations"`
	Depth         int              `json:"depth"`
	Content       string           `json:"content"`
}

func newRootCmd(c *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "decorate",
		Short:         "Compose a payload with augmentation decorators",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if c.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log component lifecycle")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Build a chain and print its rendered content",
		Example: `  decorate render --payload "Hello, world!" --with tag,feature
  decorate render --with feature --json`,
		Args: cobra.NoArgs,
		RunE: c.render,
	}
	renderCmd.Flags().StringVarP(&c.payload, "payload", "p", "Hello, world!", "content of the base component")
	renderCmd.Flags().StringSliceVarP(&c.with, "with", "w", nil, "augmentations in application order")
	renderCmd.Flags().BoolVar(&c.json, "json", false, "print the rendering as JSON")

	kindsCmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the recognized augmentation kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, kind := range decorator.AllKinds() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %q\n", kind, kind.Transform()(""))
			}
			return nil
		},
	}

	rootCmd.AddCommand(renderCmd, kindsCmd)
	return rootCmd
}

func (c *cli) render(cmd *cobra.Command, _ []string) error {
	kinds, err := decorator.ParseKinds(c.with...)
	if err != nil {
		return err
	}
	tracker, err := metrics.NewTracker(prometheus.NewRegistry())
	if err != nil {
		return err
	}
	chain, err := decorator.Build(c.payload, kinds, decorator.WithTracker(tracker), decorator.WithLogger(c.logger))
	if err != nil {
		return err
	}
	out := rendering{
		Payload:       c.payload,
		Augmentations: kinds,
		Depth:         decorator.Depth(chain),
		Content:       chain.Render(),
	}
	if err := chain.Release(); err != nil {
		return err
	}
	if live := tracker.Live(); live != 0 {
		return fmt.Errorf("decorate: %d components not released", live)
	}
	c.logger.Debug("chain rendered", zap.Int("depth", out.Depth), zap.Strings("with", c.with))

	if !c.json {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), out.Content)
		return err
	}
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(out)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func main() {
	if err := newRootCmd(&cli{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
