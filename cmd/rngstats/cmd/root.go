package cmd

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grafana/rngstats/errors"
	"github.com/grafana/rngstats/experiment"
	"github.com/grafana/rngstats/logger"
	"github.com/grafana/rngstats/report"
	"github.com/grafana/rngstats/rng"
	"github.com/grafana/rngstats/stats"
	"github.com/grafana/rngstats/util"
	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errBadSizes = errors.NewBadConfig("invalid sample sizes")

// Execute runs the root command and exits with the code of the error, if any.
func Execute() {
	err := newRootCmd(os.Stdout, os.Stderr).Execute()
	if err == nil {
		return
	}
	log.Error(err)
	code := 1
	var c errors.Coder
	if stderrors.As(err, &c) {
		code = c.Code()
	}
	os.Exit(code)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "rngstats",
		Short: "Compare uniform random number generators over several sample sizes",
		Long: `rngstats draws samples of each configured size from each configured
random number generator, summarizes every sample in a single pass
(count, mean, sample stddev, min, max) and prints the results.

Without flags it runs the reference comparison of math/rand.Rand,
math/rand and math/rand/v2 at 10, 1000 and 100000 values.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}
			return logger.Setup(v.GetString("log-level"), stderr)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v, stdout)
		},
	}

	def := experiment.DefaultConfig()
	keys := make([]string, len(def.Variants))
	for i, variant := range def.Variants {
		keys[i] = variant.Key()
	}
	sizes := util.IntSliceFlag(def.Sizes)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file. ~ expands to the home directory (default none)")
	pf.String("log-level", "info", "log level. panic|fatal|error|warning|info|debug")

	f := rootCmd.Flags()
	f.String("variants", strings.Join(keys, ","), "comma separated generator variants to compare. see the variants command")
	f.String("sizes", sizes.String(), "comma separated sample sizes")
	f.String("format", "table", "output format. one of "+strings.Join(report.Formats, "|"))
	f.String("template", "", "row template for the template format. \\n and \\t are expanded (default tab separated values)")

	for _, name := range []string{"log-level"} {
		v.BindPFlag(name, pf.Lookup(name))
	}
	for _, name := range []string{"variants", "sizes", "format", "template"} {
		v.BindPFlag(name, f.Lookup(name))
	}

	rootCmd.AddCommand(newVersionCmd(stdout), newVariantsCmd(stdout))
	return rootCmd
}

// initConfig reads the config file named by --config, if any.
// Settings are taken from flags, then the config file, then the flag defaults.
// Nothing is read from the environment or the home directory implicitly: a plain
// run is always the reference experiment.
func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile == "" {
		return nil
	}
	path, err := homedir.Expand(cfgFile)
	if err != nil {
		return errors.NewBadConfig(fmt.Sprintf("config file: %s", err))
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.NewBadConfig(fmt.Sprintf("config file: %s", err))
	}
	return nil
}

// listValue returns a list setting as a comma separated string,
// whether it was given as "a,b" or as a yaml list.
func listValue(v *viper.Viper, key string) string {
	return strings.Join(v.GetStringSlice(key), ",")
}

func configFrom(v *viper.Viper) (experiment.Config, error) {
	variants, err := rng.ParseVariants(listValue(v, "variants"))
	if err != nil {
		return experiment.Config{}, err
	}
	sizes, err := util.ParseIntSlice(listValue(v, "sizes"))
	if err != nil {
		return experiment.Config{}, fmt.Errorf("%w: %s", errBadSizes, err)
	}
	cfg := experiment.Config{
		Variants: variants,
		Sizes:    sizes,
	}
	return cfg, cfg.Validate()
}

func run(v *viper.Viper, stdout io.Writer) error {
	cfg, err := configFrom(v)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(stdout)
	rep, err := report.New(v.GetString("format"), v.GetString("template"), out)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"variants": listValue(v, "variants"),
		"sizes":    listValue(v, "sizes"),
		"config":   v.ConfigFileUsed(),
	}).Debug("starting experiment")

	if err := experiment.Run(cfg, rep); err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return errors.NewInternal(fmt.Sprintf("write output: %s", err))
	}

	stats.ReportLog(log.StandardLogger())
	return nil
}
