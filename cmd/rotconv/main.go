package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"simdmath/internal/config"
)

func main() {
	defer klog.Flush()

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "rotconv",
		Short: "Convert between rotation representations",
		Long: "Convert rotations between axis-angle, quaternion, rotation matrix and from/to\n" +
			"vector form, for single values, batch files and glTF scenes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			return c.Help()
		},
	}

	config.BindFlags(root.PersistentFlags())

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	root.PersistentFlags().AddGoFlagSet(klogFlags)

	root.AddCommand(
		newAxisAngleCommand(),
		newQuatCommand(),
		newMatrixCommand(),
		newFromToCommand(),
		newBatchCommand(),
		newGLTFCommand(),
		newTweenCommand(),
	)
	return root
}

// loadConfig resolves the configuration for a running command.
func loadConfig(c *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(c.Flags())
	if err != nil {
		return config.Config{}, err
	}
	klog.V(1).Infof("rotconv: output=%s precision=%d degrees=%t axis-source=%s",
		cfg.Output, cfg.Precision, cfg.Degrees, cfg.AxisSource)
	return cfg, nil
}
