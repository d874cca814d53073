package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"

	"github.com/etnz/journal/config"
)

const EnvVerbose = "JNL_VERBOSE"

// extensionEnv is the environment given to extensions: the current one plus
// the global settings.
func extensionEnv() []string {
	env := os.Environ()
	if cfg, err := settings(); err == nil {
		env = append(env, config.EnvDir+"="+cfg.Dir)
	} else {
		log.Printf("warning: extension started without configuration: %v", err)
	}
	env = append(env, config.EnvConfig+"="+*configFile)
	env = append(env, EnvVerbose+"="+strconv.FormatBool(*Verbose))
	return env
}

// RunExtension attempts to find and execute an external jnl-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "jnl-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		debugf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr
	cmd.Env = extensionEnv()

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
