package main

import (
	"fmt"

	"github.com/google/shlex"
)

// flagsEnvVar holds default flags prepended to the command line.
const flagsEnvVar = "DADADA_FLAGS"

// expandArgs splits extra with shell quoting rules and inserts the words
// ahead of the user's arguments, after the subcommand name when one is
// given, so that explicit flags still win.
func expandArgs(args []string, extra string) ([]string, error) {
	if extra == "" {
		return args, nil
	}
	words, err := shlex.Split(extra)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUsage, flagsEnvVar, err)
	}
	if len(words) == 0 {
		return args, nil
	}

	out := make([]string, 0, len(words)+len(args))
	if len(args) > 0 && isSubcommand(args[0]) {
		out = append(out, args[0])
		args = args[1:]
	}
	out = append(out, words...)
	return append(out, args...), nil
}

func isSubcommand(name string) bool {
	switch name {
	case "workspace", "doctor", "version", "help", "completion":
		return true
	}
	return false
}
