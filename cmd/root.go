// Package cmd implements the herbario command line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/herbdata/herbario/internal/iofs"
	app "github.com/herbdata/herbario/pkg"
	"github.com/herbdata/herbario/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	workDir string
	cfg     *config.Config
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "herbario",
		Short:   "herbario builds a simplified dataset of Chilean plant species",
		Long: `herbario is a batch ETL pipeline for the Herbario Digital public API.

It collects every species stub from the paginated list endpoint, keeps the
ones whose scientific name appears in the Rasgos-CL reference checklist,
downloads their full detail documents and flattens them into a single CSV
table (data/herbario_species.csv) ready for analysis.

Every stage's output is checkpointed under data/temp/; an interrupted or
repeated run resumes from the most advanced checkpoint instead of hitting
the network again.

Configuration precedence (highest to lowest):
  1. CLI flags (--start-page, --lang, etc.)
  2. Environment variables (HERBARIO_*)
  3. Config file (~/.config/herbario/config.yaml)
  4. Built-in defaults

Remote endpoints live in ~/.config/herbario/sources.yaml.`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "herbario version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V
	rootCmd.Flags().BoolP("version", "V", false, "version for herbario")

	rootCmd.PersistentFlags().StringVarP(
		&workDir, "workdir", "w", ".",
		"directory for data/, data/temp/ and errors/",
	)

	rootCmd.AddCommand(getRunCmd())
	rootCmd.AddCommand(getCleanCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureSourcesFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())

	// Set WorkDir after config is loaded
	cfg.Update([]config.Option{config.OptWorkDir(workDir)})

	return nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
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
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are
	// allowed. These match the fields included in config.ToOptions().
	v.SetEnvPrefix("HERBARIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Fetch configuration
	v.BindEnv("fetch.start_page", "FETCH_START_PAGE")
	v.BindEnv("fetch.page_retries", "FETCH_PAGE_RETRIES")
	v.BindEnv("fetch.timeout_sec", "FETCH_TIMEOUT_SEC")
	v.BindEnv("fetch.language", "FETCH_LANGUAGE")

	// Log configuration
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
	v.BindEnv("log.destination", "LOG_DESTINATION")

	// General configuration
	v.BindEnv("clean_logs", "CLEAN_LOGS")
	v.BindEnv("clean_temp", "CLEAN_TEMP")

	v.AutomaticEnv()
}
