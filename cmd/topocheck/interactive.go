package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/go-topology/topocheck/topology"
)

// interactiveCommand reads one invocation per line from stdin — "<kind>
// <rule> key=value..." or "multipart key=value..." — until the literal
// line "summary" is read, then prints the aggregated per-rule summary.
func interactiveCommand() *cli.Command {
	return &cli.Command{
		Name:  "interactive",
		Usage: "Reads one rule invocation per line until the literal input \"summary\"",
		Action: func(_ context.Context, _ *cli.Command) error {
			return runInteractive(os.Stdin, os.Stdout)
		},
	}
}

func runInteractive(in io.Reader, out io.Writer) error {
	var results topology.Results

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "summary" {
			fmt.Fprint(out, results.Summary())
			return nil
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return fmt.Errorf("malformed invocation %q: expected \"<kind|multipart> <rule> key=value...\"", line)
		}

		var (
			result   topology.Result
			err      error
			ruleName string
		)
		if fields[0] == "multipart" {
			ruleName = "must-not-be-multipart"
			result, err = runMultipart(fields[1:])
		} else {
			kind := fields[0]
			ruleName = fields[1]
			result, err = runInvocation(kind, ruleName, fields[2:])
		}
		if err != nil {
			return fmt.Errorf("invocation %q: %w", line, err)
		}
		results.Add(ruleName, result)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	fmt.Fprint(out, results.Summary())
	return nil
}
