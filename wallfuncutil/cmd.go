/*
Copyright © 2026 the wallfunc authors.
This file is part of wallfunc.

wallfunc is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

wallfunc is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with wallfunc.  If not, see <http://www.gnu.org/licenses/>.
*/

package wallfuncutil

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/wallfunc"
	"github.com/spatialmodel/wallfunc/science/wallfunc/sawallfunc"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

// Log receives status messages.
var Log = logrus.StandardLogger()

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		DisableSorting:  true,
	})

	sa := sawallfunc.DefaultConstants()

	// Options are the configuration options available to wallfunc.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "InputFile",
			usage: `
              InputFile is the path to a CSV file holding one row per wall
              face, with columns "magUp" (velocity difference between the
              first cell center and the wall [m/s]), "y" (wall distance [m]),
              and "nuw" (kinematic viscosity at the wall [m²/s]). It can
              include environment variables.`,
			shorthand:  "i",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{yplusCmd.Flags(), nutCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path to the desired output file location. If it
              is empty, output is written to standard output. It can include
              environment variables.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{yplusCmd.Flags(), nutCmd.Flags(), constantsCmd.Flags(), profileCmd.Flags()},
		},
		{
			name: "LogFile",
			usage: `
              LogFile is the path to a file where log messages should be
              copied. If it is empty, messages are only written to standard
              error. It can include environment variables.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{yplusCmd.Flags(), nutCmd.Flags()},
		},
		{
			name: "WallFunction",
			usage: `
              WallFunction selects the wall function. Options are "sa" for the
              Spalart-Allmaras consistent wall function, which is valid for any
              first cell height, and "loglaw" for the standard log-law wall
              function.`,
			shorthand:  "m",
			defaultVal: sawallfunc.Name,
			flagsets:   []*pflag.FlagSet{yplusCmd.Flags(), nutCmd.Flags()},
		},
		{
			name: "Kappa",
			usage: `
              Kappa is the von Kármán constant.`,
			defaultVal: wallfunc.DefaultKappa,
			flagsets:   []*pflag.FlagSet{yplusCmd.Flags(), nutCmd.Flags(), profileCmd.Flags()},
		},
		{
			name: "E",
			usage: `
              E is the log-law roughness parameter.`,
			defaultVal: wallfunc.DefaultE,
			flagsets:   []*pflag.FlagSet{yplusCmd.Flags(), nutCmd.Flags()},
		},
		{
			name: "YPlusLam",
			usage: `
              YPlusLam is the y+ at the intersection of the viscous sublayer
              and the log layer, which is used as the starting point for the y+
              iterations. If it is zero, it is calculated from Kappa and E.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{yplusCmd.Flags(), nutCmd.Flags()},
		},
		{
			name: "SA.ConstantsFile",
			usage: `
              SA.ConstantsFile is the path to a TOML file holding the
              Spalart-Allmaras wall function constants (Bbar, a1, a2, b1, b2,
              c1, c2, c3, c4). Constants missing from the file take their
              default values. If it is set, the other SA constant options are
              ignored.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{yplusCmd.Flags(), nutCmd.Flags(), constantsCmd.Flags(), profileCmd.Flags()},
		},
		{
			name: "SA.Bbar",
			usage: `
              SA.Bbar is the additive constant of the Spalart-Allmaras velocity profile.`,
			defaultVal: sa.Bbar,
			flagsets:   []*pflag.FlagSet{yplusCmd.Flags(), nutCmd.Flags(), constantsCmd.Flags(), profileCmd.Flags()},
		},
		{
			name: "SA.a1",
			usage: `
              SA.a1 is a Spalart-Allmaras velocity profile constant.`,
			defaultVal: sa.A1,
			flagsets:   []*pflag.FlagSet{yplusCmd.Flags(), nutCmd.Flags(), constantsCmd.Flags(), profileCmd.Flags()},
		},
		{
			name: "SA.a2",
			usage: `
              SA.a2 is a Spalart-Allmaras velocity profile constant.`,
			defaultVal: sa.A2,
			flagsets:   []*pflag.FlagSet{yplusCmd.Flags(), nutCmd.Flags(), constantsCmd.Flags(), profileCmd.Flags()},
		},
		{
			name: "SA.b1",
			usage: `
              SA.b1 is a Spalart-Allmaras velocity profile constant.`,
			defaultVal: sa.B1,
			flagsets:   []*pflag.FlagSet{yplusCmd.Flags(), nutCmd.Flags(), constantsCmd.Flags(), profileCmd.Flags()},
		},
		{
			name: "SA.b2",
			usage: `
              SA.b2 is a Spalart-Allmaras velocity profile constant.`,
			defaultVal: sa.B2,
			flagsets:   []*pflag.FlagSet{yplusCmd.Flags(), nutCmd.Flags(), constantsCmd.Flags(), profileCmd.Flags()},
		},
		{
			name: "SA.c1",
			usage: `
              SA.c1 is a Spalart-Allmaras velocity profile constant.`,
			defaultVal: sa.C1,
			flagsets:   []*pflag.FlagSet{yplusCmd.Flags(), nutCmd.Flags(), constantsCmd.Flags(), profileCmd.Flags()},
		},
		{
			name: "SA.c2",
			usage: `
              SA.c2 is a Spalart-Allmaras velocity profile constant.`,
			defaultVal: sa.C2,
			flagsets:   []*pflag.FlagSet{yplusCmd.Flags(), nutCmd.Flags(), constantsCmd.Flags(), profileCmd.Flags()},
		},
		{
			name: "SA.c3",
			usage: `
              SA.c3 is a Spalart-Allmaras velocity profile constant.`,
			defaultVal: sa.C3,
			flagsets:   []*pflag.FlagSet{yplusCmd.Flags(), nutCmd.Flags(), constantsCmd.Flags(), profileCmd.Flags()},
		},
		{
			name: "SA.c4",
			usage: `
              SA.c4 is a Spalart-Allmaras velocity profile constant.`,
			defaultVal: sa.C4,
			flagsets:   []*pflag.FlagSet{yplusCmd.Flags(), nutCmd.Flags(), constantsCmd.Flags(), profileCmd.Flags()},
		},
		{
			name: "SA.DivisorFloor",
			usage: `
              SA.DivisorFloor is the smallest magnitude of u+ that is used when
              dividing y+ by u+ to calculate eddy viscosity. The default of zero
              applies no limit.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{yplusCmd.Flags(), nutCmd.Flags()},
		},
		{
			name: "Profile.YPlusMin",
			usage: `
              Profile.YPlusMin is the smallest y+ in the velocity profile table.`,
			defaultVal: 0.1,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags()},
		},
		{
			name: "Profile.YPlusMax",
			usage: `
              Profile.YPlusMax is the largest y+ in the velocity profile table.`,
			defaultVal: 1.0e5,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags()},
		},
		{
			name: "Profile.Points",
			usage: `
              Profile.Points is the number of logarithmically spaced points in the
              velocity profile table.`,
			defaultVal: 100,
			flagsets:   []*pflag.FlagSet{profileCmd.Flags()},
		},
		{
			name: "Profile.PlotFile",
			usage: `
              Profile.PlotFile is the path to an image file (.png, .svg, .pdf, ...)
              where a plot of the velocity profile should be saved. If it is
              empty, no plot is made.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{profileCmd.Flags()},
		},
	}

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
		}
	}
	Cfg = newConfig()
}

// newConfig returns a configuration that reads from environment variables
// and is bound to the command-line flags.
func newConfig() *viper.Viper {
	cfg := viper.New()

	// Set the prefix for configuration environment variables.
	cfg.SetEnvPrefix("WALLFUNC")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	for _, option := range options {
		cfg.BindPFlag(option.name, option.flagsets[0].Lookup(option.name))
	}
	return cfg
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(yplusCmd)
	Root.AddCommand(nutCmd)
	Root.AddCommand(constantsCmd)
	Root.AddCommand(profileCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("wallfunc: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "wallfunc",
	Short: "Near-wall eddy viscosity from wall functions.",
	Long: `wallfunc calculates the dimensionless wall distance (y+) and the eddy
viscosity increment at the wall faces of a flow simulation using wall functions.
Use the subcommands specified below to access the model functionality.

Refer to the subcommand documentation for configuration options and default settings.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'WALLFUNC_var' where 'var' is the
name of the variable to be set, with any '.' replaced by '_'.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of wallfunc.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("wallfunc v%s\n", wallfunc.Version)
	},
	DisableAutoGenTag: true,
}

// yplusCmd calculates y+ for each wall face.
var yplusCmd = &cobra.Command{
	Use:   "yplus",
	Short: "Calculate y+ at wall faces.",
	Long: `yplus calculates the dimensionless wall distance y+ for each face in
InputFile and writes it, along with the convergence information of the y+
iteration, to OutputFile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, false)
	},
	DisableAutoGenTag: true,
}

// nutCmd calculates the eddy viscosity increment for each wall face.
var nutCmd = &cobra.Command{
	Use:   "nut",
	Short: "Calculate wall eddy viscosity.",
	Long: `nut calculates y+ and the eddy viscosity increment [m²/s] for each face in
InputFile and writes them, along with the convergence information of the y+
iteration, to OutputFile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, true)
	},
	DisableAutoGenTag: true,
}

func runCommand(cmd *cobra.Command, nut bool) error {
	m, err := NewWallFunction(Cfg)
	if err != nil {
		return err
	}
	input, err := checkInputFile(Cfg.GetString("InputFile"))
	if err != nil {
		return err
	}
	return Run(
		cmd,
		os.ExpandEnv(Cfg.GetString("LogFile")),
		input,
		os.ExpandEnv(Cfg.GetString("OutputFile")),
		m, nut)
}

// constantsCmd writes the Spalart-Allmaras constants.
var constantsCmd = &cobra.Command{
	Use:   "constants",
	Short: "Print the Spalart-Allmaras wall function constants.",
	Long: `constants writes the Spalart-Allmaras wall function constants, as specified
by the configuration, to OutputFile in TOML format. The output can be used
as an SA.ConstantsFile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := SAConstants(Cfg)
		if err != nil {
			return err
		}
		return withOutput(cmd, os.ExpandEnv(Cfg.GetString("OutputFile")), func(w io.Writer) error {
			return sawallfunc.WriteConstants(w, c)
		})
	},
	DisableAutoGenTag: true,
}

// profileCmd tabulates the Spalart-Allmaras velocity profile.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Tabulate the Spalart-Allmaras velocity profile.",
	Long: `profile writes the Spalart-Allmaras wall function velocity profile u+(y+),
along with the viscous sublayer and log-law profiles, to OutputFile in CSV
format, and optionally plots it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := SAConstants(Cfg)
		if err != nil {
			return err
		}
		return Profile(cmd, c,
			Cfg.GetFloat64("Kappa"),
			Cfg.GetFloat64("Profile.YPlusMin"),
			Cfg.GetFloat64("Profile.YPlusMax"),
			Cfg.GetInt("Profile.Points"),
			os.ExpandEnv(Cfg.GetString("OutputFile")),
			os.ExpandEnv(Cfg.GetString("Profile.PlotFile")),
		)
	},
	DisableAutoGenTag: true,
}
