package cmd

import (
	"errors"
	"fmt"

	"terminalist/internal/logger"
	"terminalist/internal/report"
)

// Intercept handles an invocation under an intercepted tool's name.
// A known tool gets its translation report and exit status 1, since the tool the
// user asked for was not run. An unknown name gets a notice and exit status 0.
func Intercept(env *Env, command string, args []string) int {
	logger.Debug("[DEBUG] Intercepting %s with %d arguments\n", command, len(args))

	err := env.renderer().Render(env.Registry, command, args, env.SelfPath)
	switch {
	case err == nil:
		return 1
	case errors.Is(err, report.ErrNoAlternative):
		// A symlink exists for a tool we have no alternative for; most likely the
		// catalog changed since it was installed.
		_, _ = fmt.Fprintf(env.Stdout, "Unknown command: %s.  Can't find any alternatives for %s.\n", command, command)
		_, _ = fmt.Fprintf(env.Stdout, "Expecting to find results? Maybe %s needs updating.\n", report.ManagementName)
		env.printUpdateCommand()
		return 0
	default:
		logger.Error("[ERROR] Failed to render alternatives for %s: %v\n", command, err)
		return 1
	}
}
