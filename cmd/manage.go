package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"terminalist/internal/installer"
	"terminalist/internal/logger"
	"terminalist/internal/report"
)

// runManage performs the single action selected on the command line.
func runManage(cmd *cobra.Command, env *Env, opts *rootOptions) error {
	out := cmd.OutOrStdout()
	ic := env.interceptor()

	switch {
	case opts.listInstalled:
		names, err := ic.Installed()
		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			return &ExitError{Code: 1, Err: err}
		}
		_, _ = fmt.Fprintf(out, "Installed %s interceptions:\n", report.ManagementName)
		for _, name := range names {
			_, _ = fmt.Fprintf(out, "\t%s\n", name)
		}

	case opts.listAvailable:
		_, _ = fmt.Fprintln(out, "Available interceptions:")
		for tool, spec := range env.Registry.All() {
			_, _ = fmt.Fprintf(out, "\t%s (alternative: %s)\n", tool, spec.Alternate)
		}

	case opts.remove != "":
		err := ic.Remove(opts.remove)
		switch {
		case err == nil:
			_, _ = fmt.Fprintf(out, "Removed interception of %s\n", opts.remove)
		case errors.Is(err, installer.ErrNotInterception):
			_, _ = fmt.Fprintf(out, "%s was not an existing interception; nothing done.\n", opts.remove)
		default:
			logger.Error("[ERROR] %v\n", err)
			return &ExitError{Code: 1, Err: err}
		}

	case opts.install != "":
		link, err := ic.Install(opts.install)
		switch {
		case err == nil:
			_, _ = fmt.Fprintf(out, "Added interception for %s; try running `%s` now.\n", opts.install, opts.install)
		case errors.Is(err, installer.ErrExists):
			_, _ = fmt.Fprintf(out, "%s already exists! Not replacing.\n", link)
		case errors.Is(err, installer.ErrNotWritable):
			_, _ = fmt.Fprintf(out, "%s is not writable! This is a requirement. Exiting.\n", ic.Dir)
			return &ExitError{Code: 1, Err: err}
		default:
			logger.Error("[ERROR] %v\n", err)
			return &ExitError{Code: 1, Err: err}
		}

	case opts.selfUpdate:
		env.printUpdateCommand()
	}

	return nil
}
