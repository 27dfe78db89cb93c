package cli

import (
	stderrors "errors"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/matzehuels/cargoscan/pkg/errors"
	"github.com/matzehuels/cargoscan/pkg/report"
)

// Config keys. Flags bound to a key override the config file value.
const (
	keyFormat  = "format"
	keyOutput  = "output"
	keyExclude = "exclude"
)

// loadConfig binds flags to v and reads the config file. With an explicit
// file, failing to read it is an error. Otherwise ./cargoscan.yaml is used
// if it exists. Environment variables are never consulted.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet, file string) error {
	v.SetDefault(keyFormat, string(report.DefaultFormat))
	_ = v.BindPFlag(keyOutput, flags.Lookup("output"))
	_ = v.BindPFlag(keyExclude, flags.Lookup("exclude"))

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read config file %s", file)
		}
		return nil
	}

	v.SetConfigName(appName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if stderrors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read config file")
	}
	return nil
}

// scanOpts holds the command-line flags for the scan.
type scanOpts struct {
	output     string   // output file path (stdout if empty)
	exclude    []string // directory basenames to skip
	configFile string   // explicit config file
}

// scanOptions is the merged view of args, flags and config for one run.
type scanOptions struct {
	root    string
	format  string
	output  string
	exclude []string
}

// resolve merges positional args over config values. The flag fields of o
// reach v through BindPFlag.
func (o *scanOpts) resolve(v *viper.Viper, args []string) scanOptions {
	opts := scanOptions{
		root:    ".",
		format:  v.GetString(keyFormat),
		output:  v.GetString(keyOutput),
		exclude: v.GetStringSlice(keyExclude),
	}
	if len(args) > 0 && args[0] != "" {
		opts.root = args[0]
	}
	if len(args) > 1 {
		opts.format = args[1]
	}
	return opts
}
