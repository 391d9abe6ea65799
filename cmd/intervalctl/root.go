package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"

	"github.com/sandwi/gs-collections-sub005/parallel"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	vip      *viper.Viper
	cfgFile  string
	settings settings
	opts     []parallel.Option
}

// newRootCmd builds the command tree. Each call gets its own viper
// instance so tests can run commands side by side.
func newRootCmd() *cobra.Command {
	a := &app{vip: viper.New()}

	root := &cobra.Command{
		Use:   "intervalctl",
		Short: "Inspect integer intervals and run parallel folds over them",
		Long: `intervalctl builds arithmetic progressions of integers and evaluates
them with the parallel batch iterator. Batching is configured with flags,
GSC_* environment variables or a YAML config file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "",
		"config file (default is $HOME/.gscollections/intervalctl.yaml)")
	flags.BoolP("verbose", "v", false, "Verbose mode for debugging")
	flags.Int("batchSize", 0, "Elements per batch (0 derives batches from minForkSize and taskCount)")
	flags.Int("minForkSize", 0, "Smallest derived batch")
	flags.Int("taskCount", 0, "Maximum number of derived batches")
	flags.IntP("workers", "w", 0, "Worker goroutines (default: one per available CPU)")
	flags.StringP("output", "o", outputText, "Output format: text or yaml")

	for _, name := range []string{"verbose", "batchSize", "minForkSize", "taskCount", "workers", "output"} {
		err := a.vip.BindPFlag(name, flags.Lookup(name))
		handleBindingError(err, name)
	}

	root.AddCommand(
		a.infoCmd(),
		a.sumCmd(),
		a.countCmd(),
		a.factorialCmd(),
		a.groupByCmd(),
		versionCmd(),
	)
	return root
}

func handleBindingError(err error, flag string) {
	if err != nil {
		jww.FATAL.Panicf("Error on binding flag \"%s\":%+v", flag, err)
	}
}

// setup reads the config file and environment, then sets up logging and the
// parallel options.
func (a *app) setup(_ *cobra.Command, _ []string) error {
	if err := a.readConfig(); err != nil {
		return err
	}
	s, err := loadSettings(a.vip)
	if err != nil {
		return err
	}
	a.settings = s
	initLog(s.Verbose)

	a.opts, err = s.options()
	if err != nil {
		return err
	}
	jww.DEBUG.Printf("settings: %+v", s)
	return nil
}

// readConfig loads the YAML config. An explicit --config must exist; the
// default path is optional.
func (a *app) readConfig() error {
	a.vip.SetEnvPrefix("GSC")
	a.vip.AutomaticEnv()

	explicit := a.cfgFile != ""
	if !explicit {
		home, err := homedir.Dir()
		if err != nil {
			jww.WARN.Printf("Could not find home directory: %s", err)
			return nil
		}
		a.cfgFile = filepath.Join(home, ".gscollections", "intervalctl.yaml")
	}

	if _, err := os.Stat(a.cfgFile); err != nil {
		if explicit {
			return errors.Wrapf(err, "invalid config file %s", a.cfgFile)
		}
		jww.DEBUG.Printf("No config file at %s", a.cfgFile)
		return nil
	}

	a.vip.SetConfigFile(a.cfgFile)
	if err := a.vip.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "unable to read config file %s", a.cfgFile)
	}
	return nil
}

// initLog sets the jww thresholds.
func initLog(verbose bool) {
	if verbose {
		jww.SetLogThreshold(jww.LevelDebug)
		jww.SetStdoutThreshold(jww.LevelDebug)
		return
	}
	jww.SetLogThreshold(jww.LevelWarn)
	jww.SetStdoutThreshold(jww.LevelWarn)
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
