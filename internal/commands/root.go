package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	gcm "github.com/BishwashGurung/GCM"
	"github.com/BishwashGurung/GCM/fledge/output"
	"github.com/BishwashGurung/GCM/internal/catalog"
	"github.com/BishwashGurung/GCM/internal/config"
	"github.com/BishwashGurung/GCM/internal/platform"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// UnknownArgumentError is returned for a mode keyword or flag the tool does
// not recognize.
type UnknownArgumentError struct {
	Token string
}

func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("Unknown option '%s'", e.Token)
}

// RootCmd creates and returns the root command for the gcm CLI
func RootCmd(host platform.Host, cat *catalog.Catalog) *cobra.Command {
	v := config.New()
	var configFile string
	var cfg *config.Config

	cmd := &cobra.Command{
		Use:   "gcm [flags] [mode]",
		Short: "Generate CMake project files in the current directory",
		Long: `gcm scaffolds a C/C++ project in the current directory.

The project name is the directory name with spaces replaced by underscores.
Existing files are never overwritten: gcm stops at the first file that is
already present.

Flags go before the mode. The first argument that is not a flag selects the
mode and everything after it is ignored.`,
		Version:       gcm.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(v, configFile)
			if err != nil {
				return err
			}
			output.SetVerbose(cfg.Verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := selectMode(cat, args, cmd.ArgsLenAtDash())
			if err != nil {
				return err
			}
			return generate(cmd.Context(), host, cfg, mode)
		},
	}

	flags := cmd.Flags()
	// Flag parsing stops at the mode, so "gcm cmake -h" still renders cmake
	flags.SetInterspersed(false)
	flags.BoolP("verbose", "v", false, "Enable verbose output for debugging")
	flags.Bool("dry-run", false, "Show which files would be created without writing them")
	flags.StringVar(&configFile, "config", "", "Read settings from this YAML, JSON or TOML file")
	flags.String("cmake-version", config.DefaultCMakeVersion, "Minimum CMake version written to the generated files (>= 3.25)")
	flags.String("unix-compiler", config.DefaultUnixCompiler, "Default compiler of the Unix scripts (gcc, clang)")
	flags.String("windows-compiler", config.DefaultWindowsCompiler, "Default compiler of the Windows scripts (msvc, clang-cl, gcc)")

	bindings := map[string]string{
		config.KeyVerbose:         "verbose",
		config.KeyDryRun:          "dry-run",
		config.KeyCMakeVersion:    "cmake-version",
		config.KeyUnixCompiler:    "unix-compiler",
		config.KeyWindowsCompiler: "windows-compiler",
	}
	for key, name := range bindings {
		// Only fails for a nil flag
		_ = v.BindPFlag(key, flags.Lookup(name))
	}

	cmd.SetFlagErrorFunc(flagError)
	cmd.SetUsageTemplate(usageTemplate(cat))

	return cmd
}

// Run executes the CLI with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer, host platform.Host) int {
	oldOut, oldErr := output.Stdout(), output.Stderr()
	output.SetWriters(stdout, stderr)
	defer output.SetWriters(oldOut, oldErr)
	output.SetVerbose(false)

	cat, err := catalog.Load()
	if err != nil {
		output.Error(err.Error())
		return 1
	}

	cmd := RootCmd(host, cat)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	// cobra falls back to os.Args when args is nil
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		output.Error(err.Error())

		var unknown *UnknownArgumentError
		if errors.As(err, &unknown) {
			fmt.Fprint(stderr, cmd.UsageString())
		}
		return 1
	}

	return 0
}

// selectMode maps the first positional argument to a catalog mode. Later
// arguments are ignored. A "--" in the mode position is not a mode, so
// argsLenAtDash of 0 is rejected.
func selectMode(cat *catalog.Catalog, args []string, argsLenAtDash int) (catalog.Mode, error) {
	if argsLenAtDash == 0 {
		return catalog.Mode{}, &UnknownArgumentError{Token: "--"}
	}
	if len(args) == 0 {
		return cat.DefaultMode(), nil
	}

	if len(args) > 1 {
		output.Verbose(fmt.Sprintf("Ignoring extra arguments: %s", strings.Join(args[1:], " ")))
	}

	mode, ok := cat.Lookup(args[0])
	if !ok {
		return catalog.Mode{}, &UnknownArgumentError{Token: args[0]}
	}
	return mode, nil
}

// flagError turns pflag's unknown flag errors into UnknownArgumentError.
func flagError(cmd *cobra.Command, err error) error {
	var notExist *pflag.NotExistError
	if !errors.As(err, &notExist) {
		return err
	}

	if shorthands := notExist.GetSpecifiedShortnames(); shorthands != "" {
		return &UnknownArgumentError{Token: "-" + shorthands}
	}
	return &UnknownArgumentError{Token: "--" + notExist.GetSpecifiedName()}
}

func usageTemplate(cat *catalog.Catalog) string {
	var b strings.Builder

	b.WriteString("Usage:\n  {{.UseLine}}\n\nModes:\n")
	fmt.Fprintf(&b, "  %-9s %s\n", "(none)", cat.DefaultMode().Description)
	for _, m := range cat.Keywords() {
		fmt.Fprintf(&b, "  %-9s %s\n", m.Keyword, m.Description)
	}
	b.WriteString("\nFlags:\n{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}\n")

	return b.String()
}
