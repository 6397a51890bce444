/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/webnlg/internal/iofs"
	"github.com/gnames/webnlg/internal/iologger"
	webnlg "github.com/gnames/webnlg/pkg"
	"github.com/gnames/webnlg/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the base command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", webnlg.Version, webnlg.Build),
		Use:     "webnlg",
		Short:   "WebNLG corpus explorer: filter, sample and export releases",
		Long: `webnlg loads a WebNLG corpus release into memory and lets you
filter its entries, draw reproducible samples, look entries up by idx and
export the corpus as four relational tables.

Releases are registered in ~/.config/webnlg/releases.yaml. Files of a
release are read from <data_dir>/<release>/<dataset>/**/*.xml.
Releases v1.2 and later are read with entity maps and templates.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (WEBNLG_*)
  3. Config file (~/.config/webnlg/config.yaml)
  4. Built-in defaults

Environment Variables:
  WEBNLG_CORPUS_DATA_DIR          Root of local releases
  WEBNLG_CORPUS_RELEASE           Default release
  WEBNLG_CORPUS_SEED              Default sampling seed
  WEBNLG_CORPUS_WITH_PROGRESS     Show progress bar (true/false)
  WEBNLG_LOG_LEVEL                Log level (debug/info/warn/error)
  WEBNLG_LOG_FORMAT               Log format (json/text/tint)
  WEBNLG_LOG_DESTINATION          Log destination (file/stderr/stdout)`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "webnlg version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for webnlg")

	rootCmd.AddCommand(
		getReleasesCmd(),
		getStatsCmd(),
		getSampleCmd(),
		getShowCmd(),
		getExportCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureReleasesFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings, keeping bootstrap records
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"data_dir", cfg.CorpusDataDir(),
	)

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log, true)
}

func runRoot(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadConfigError(cfgPath, err)
	}

	// keys missing from an old config file keep their defaults
	def := config.New()
	v.SetDefault("corpus.release", def.Corpus.Release)
	v.SetDefault("corpus.seed", def.Corpus.Seed)
	v.SetDefault("corpus.with_progress", def.Corpus.WithProgress)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("log.destination", def.Log.Destination)

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.DecodeConfigError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("WEBNLG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Corpus configuration
	_ = v.BindEnv("corpus.data_dir", "WEBNLG_CORPUS_DATA_DIR")
	_ = v.BindEnv("corpus.release", "WEBNLG_CORPUS_RELEASE")
	_ = v.BindEnv("corpus.seed", "WEBNLG_CORPUS_SEED")
	_ = v.BindEnv("corpus.with_progress", "WEBNLG_CORPUS_WITH_PROGRESS")

	// Log configuration
	_ = v.BindEnv("log.level", "WEBNLG_LOG_LEVEL")
	_ = v.BindEnv("log.format", "WEBNLG_LOG_FORMAT")
	_ = v.BindEnv("log.destination", "WEBNLG_LOG_DESTINATION")

	v.AutomaticEnv()
}
