package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// loadArgsFromFileIfSpecified splices the arguments of an -A file into
// os.Args so that flag.Parse sees them in place of the -A option.
func loadArgsFromFileIfSpecified() {
	args, err := expandArgsFile(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Args = append(os.Args[:1], args...)
}

// expandArgsFile replaces "-A file" (or "-A=file") with the file's arguments.
func expandArgsFile(args []string) ([]string, error) {
	var out []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		var path string
		switch {
		case arg == "-A" || arg == "--A":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("flag needs an argument: -A")
			}
			i++
			path = args[i]
		case strings.HasPrefix(arg, "-A="):
			path = strings.TrimPrefix(arg, "-A=")
		case strings.HasPrefix(arg, "--A="):
			path = strings.TrimPrefix(arg, "--A=")
		default:
			out = append(out, arg)
			continue
		}

		fileArgs, err := loadArgsFile(path)
		if err != nil {
			return nil, err
		}
		out = append(out, fileArgs...)
	}
	return out, nil
}

// loadArgsFile reads arguments from a file, one option per line.
// Blank lines and lines starting with '#' are skipped.
func loadArgsFile(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("opening args file: %w", err)
	}
	defer file.Close()

	var args []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args = append(args, splitArgsLine(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading args file: %w", err)
	}
	return args, nil
}

// splitArgsLine splits a line on blanks, keeping single- or double-quoted
// text together.
func splitArgsLine(line string) []string {
	var args []string
	var current strings.Builder
	var quote rune
	inArg := false

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		args = append(args, current.String())
	}
	return args
}
