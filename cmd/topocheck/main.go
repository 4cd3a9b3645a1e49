// Command topocheck is the CLI front end for the topology rule engine: a
// geometry-kind subcommand routes to a rule subcommand, which takes
// key=value arguments naming input/output files.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/go-topology/topocheck/topology"
)

var pointRules = []string{"must-not-overlap", "must-not-overlap-with", "must-be-inside"}
var lineStringRules = []string{
	"must-not-overlap", "must-not-overlap-with", "must-not-self-overlap",
	"must-not-intersect", "must-not-have-dangles", "must-be-inside",
}
var polygonRules = []string{"must-not-overlap", "must-not-overlap-with", "must-not-have-gaps"}

func main() {
	cmd := &cli.Command{
		Name:      "topocheck",
		Usage:     "Validates the topological correctness of 2-D vector geometries against a rule catalogue",
		UsageText: "topocheck <point|linestring|polygon|multipart|interactive> <rule> input=<path> [other=<path>] [output=<path>] [driver=<name>] [srs=<code>]",
		Commands: []*cli.Command{
			kindCommand("point", pointRules),
			kindCommand("linestring", lineStringRules),
			kindCommand("polygon", polygonRules),
			multipartCommand(),
			interactiveCommand(),
		},
		HideVersion: true,
		Authors:     []any{"https://github.com/go-topology"},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "\x1b[31m%s\x1b[0m\n", err)
		os.Exit(1)
	}
}

func kindCommand(kind string, rules []string) *cli.Command {
	sub := make([]*cli.Command, len(rules))
	for i, r := range rules {
		ruleName := r
		sub[i] = &cli.Command{
			Name:      ruleName,
			Usage:     fmt.Sprintf("%s for %ss", ruleName, kind),
			UsageText: "input=<path> [other=<path>] [output=<path>] [driver=<name>] [srs=<code>]",
			Action: func(_ context.Context, cmd *cli.Command) error {
				return runAndReport(kind, ruleName, cmd.Args().Slice())
			},
		}
	}
	return &cli.Command{
		Name:        kind,
		Usage:       fmt.Sprintf("Rules applicable to %s geometries", kind),
		Commands:    sub,
		HideVersion: true,
	}
}

func multipartCommand() *cli.Command {
	return &cli.Command{
		Name:      "multipart",
		Usage:     "must-not-be-multipart for any geometry kind",
		UsageText: "input=<path> [output=<path>]",
		Action: func(_ context.Context, cmd *cli.Command) error {
			result, err := runMultipart(cmd.Args().Slice())
			if err != nil {
				return err
			}
			printSummary("must-not-be-multipart", result)
			return nil
		},
	}
}

func runAndReport(kind, ruleName string, tokens []string) error {
	result, err := runInvocation(kind, ruleName, tokens)
	if err != nil {
		return err
	}
	printSummary(ruleName, result)
	return nil
}

func printSummary(ruleName string, result topology.Result) {
	var results topology.Results
	results.Add(ruleName, result)
	fmt.Print(results.Summary())
}
