package cmd

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"terminalist/internal/logger"
	"terminalist/internal/report"
)

const usage = `Terminalist Habit Maker

This tool creates symlinks in your $PATH to prevent you from using an old tool and encourage you to
learn to use a new tool. For example, if you would like to use fd[1] instead of find, you can
create an interceptor that reminds you how to run fd instead of find:

    terminalist --install find

This will make executing find run terminalist instead, and it will remind you how to translate find
arguments into their fd equivalents.

[1]: https://github.com/sharkdp/fd

Installation:
    Copy terminalist to a *writable* directory in your $PATH. Ideally this should be in $HOME/bin/
    (which is hopefully in your $PATH already). terminalist will create symlinks (interceptors) in
    this directory so that these files are executed instead of the tool you're trying to unlearn.

Brought to you with 🏄 from https://www.terminalist.tips/`

const examples = `  List existing installed interceptions:
    terminalist --list-installed

  List available interceptions:
    terminalist --list-available

  Add a new interception:
    terminalist --install find

  Remove an existing interception:
    terminalist --remove find`

// rootOptions holds the management flags. Exactly one action flag is set per run.
type rootOptions struct {
	listInstalled bool
	listAvailable bool
	install       string
	remove        string
	selfUpdate    bool
	debug         bool
}

// NewRootCmd creates the management command for terminalist.
func NewRootCmd(env *Env) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           report.ManagementName,
		Short:         "Intercept old command line tools and point at their modern alternatives",
		Long:          usage,
		Example:       examples,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,

		// PersistentPreRunE runs before the action. It sets up logging and validates
		// tool names, which must be known to the registry.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.Init(env.Stderr, opts.debug || env.Config.Debug, env.noColor())
			for _, tool := range []string{opts.install, opts.remove} {
				if tool != "" && !slices.Contains(env.Registry.Names(), tool) {
					return fmt.Errorf("invalid choice: %q (choose from %s)", tool, strings.Join(env.Registry.Names(), ", "))
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runManage(cmd, env, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.listInstalled, "list-installed", "l", false, "List the tools that are being intercepted by terminalist.")
	flags.BoolVarP(&opts.listAvailable, "list-available", "L", false, "List the tools that terminalist knows how to intercept.")
	flags.StringVarP(&opts.install, "install", "i", "", "Install terminalist for intercepting the given tool.")
	flags.StringVarP(&opts.remove, "remove", "r", "", "Remove the interception of the given tool.")
	flags.BoolVar(&opts.selfUpdate, "self-update", false, "Print the command that updates terminalist.")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	actions := []string{"list-installed", "list-available", "install", "remove", "self-update"}
	rootCmd.MarkFlagsMutuallyExclusive(actions...)
	rootCmd.MarkFlagsOneRequired(actions...)

	completeTools := func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return env.Registry.Names(), cobra.ShellCompDirectiveNoFileComp
	}
	_ = rootCmd.RegisterFlagCompletionFunc("install", completeTools)
	_ = rootCmd.RegisterFlagCompletionFunc("remove", completeTools)

	return rootCmd
}

// Execute runs the management command with args and returns the process exit status.
func Execute(env *Env, args []string) int {
	rootCmd := NewRootCmd(env)
	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(env.Stdout)
	rootCmd.SetErr(env.Stderr)

	err := rootCmd.Execute()
	code := exitCode(err)
	if code == 2 {
		_, _ = fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintf(env.Stderr, "Run '%s --help' for usage.\n", report.ManagementName)
	}
	return code
}

// Main dispatches on the name the process was invoked as: its own name runs the
// management command, any other name is treated as an interception.
func Main(argv []string) int {
	env, err := NewEnv(argv[0])
	if err != nil {
		logger.Error("[ERROR] %v\n", err)
		return 1
	}

	return Dispatch(env, argv)
}

// Dispatch picks the face of the executable from the unresolved base name of argv[0]
// and hands it the remaining arguments.
func Dispatch(env *Env, argv []string) int {
	name := filepath.Base(argv[0])
	if IsManagementName(name) {
		return Execute(env, argv[1:])
	}
	return Intercept(env, name, argv[1:])
}
