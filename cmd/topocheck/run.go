package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-topology/topocheck/iosource"
	"github.com/go-topology/topocheck/linestring"
	"github.com/go-topology/topocheck/multigeom"
	"github.com/go-topology/topocheck/point"
	"github.com/go-topology/topocheck/polygon"
	"github.com/go-topology/topocheck/rule"
	"github.com/go-topology/topocheck/topology"
)

// kvArgs parses "key=value" tokens into a rule invocation's arguments.
func kvArgs(tokens []string) (map[string]string, error) {
	out := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		key, value, ok := strings.Cut(tok, "=")
		if !ok {
			return nil, fmt.Errorf("malformed argument %q, expected key=value", tok)
		}
		out[key] = value
	}
	return out, nil
}

// readDataset opens args[key], applying the optional driver= and srs=
// overrides (environment handles that affect I/O only, never geometry
// semantics). iosource currently speaks one driver, the line-oriented WKT
// format, so a driver= override is only accepted when it names that
// driver; anything else is rejected rather than silently ignored.
func readDataset(args map[string]string, key string) (iosource.Dataset, error) {
	path, ok := args[key]
	if !ok {
		return iosource.Dataset{}, fmt.Errorf("missing required argument %q", key)
	}
	if driver, ok := args["driver"]; ok && driver != iosource.DriverWKT {
		return iosource.Dataset{}, fmt.Errorf("unrecognized driver %q, expected %q", driver, iosource.DriverWKT)
	}
	ds, err := iosource.NewReader(path).Read()
	if err != nil {
		return iosource.Dataset{}, err
	}
	if srs, ok := args["srs"]; ok {
		code, err := strconv.Atoi(srs)
		if err != nil {
			return iosource.Dataset{}, fmt.Errorf("parse srs override: %w", err)
		}
		ds.SRS = &code
	}
	return ds, nil
}

// runInvocation routes one (kind, ruleName, args) invocation to its core
// entry point, flattening the input dataset to the homogeneous collection
// the target rule consumes.
func runInvocation(kind, ruleName string, tokens []string) (topology.Result, error) {
	args, err := kvArgs(tokens)
	if err != nil {
		return topology.Result{}, err
	}

	ds, err := readDataset(args, "input")
	if err != nil {
		return topology.Result{}, err
	}

	var result topology.Result
	switch kind {
	case "point":
		result, err = runPointRule(ruleName, ds, args)
	case "linestring":
		result, err = runLineStringRule(ruleName, ds, args)
	case "polygon":
		result, err = runPolygonRule(ruleName, ds, args)
	default:
		return topology.Result{}, fmt.Errorf("unrecognized geometry kind %q", kind)
	}
	if err != nil {
		return topology.Result{}, err
	}
	if err := exportIfRequested(ruleName, result, args); err != nil {
		return topology.Result{}, err
	}
	return result, nil
}

func otherPolygons(args map[string]string) ([]polygon.Polygon, error) {
	other, err := readDataset(args, "other")
	if err != nil {
		return nil, err
	}
	return multigeom.FlattenPolygons(other.Geometries)
}

func otherPoints(args map[string]string) ([]point.Point, error) {
	other, err := readDataset(args, "other")
	if err != nil {
		return nil, err
	}
	return multigeom.FlattenPoints(other.Geometries)
}

func otherLineStrings(args map[string]string) ([]*linestring.LineString, error) {
	other, err := readDataset(args, "other")
	if err != nil {
		return nil, err
	}
	return multigeom.FlattenLineStrings(other.Geometries)
}

func runPointRule(ruleName string, ds iosource.Dataset, args map[string]string) (topology.Result, error) {
	pts, err := multigeom.FlattenPoints(ds.Geometries)
	if err != nil {
		return topology.Result{}, err
	}
	switch ruleName {
	case "must-not-overlap":
		return rule.MustNotOverlapPoints(pts), nil
	case "must-not-overlap-with":
		other, err := otherPoints(args)
		if err != nil {
			return topology.Result{}, err
		}
		return rule.MustNotOverlapWithPoints(pts, other), nil
	case "must-be-inside":
		polys, err := otherPolygons(args)
		if err != nil {
			return topology.Result{}, err
		}
		return rule.MustBeInsidePoints(pts, polys), nil
	default:
		return topology.Result{}, fmt.Errorf("rule %q is not available for points", ruleName)
	}
}

func runLineStringRule(ruleName string, ds iosource.Dataset, args map[string]string) (topology.Result, error) {
	lines, err := multigeom.FlattenLineStrings(ds.Geometries)
	if err != nil {
		return topology.Result{}, err
	}
	switch ruleName {
	case "must-not-overlap":
		return rule.MustNotOverlapLineStrings(lines), nil
	case "must-not-overlap-with":
		other, err := otherLineStrings(args)
		if err != nil {
			return topology.Result{}, err
		}
		return rule.MustNotOverlapWithLineStrings(lines, other), nil
	case "must-not-self-overlap":
		return rule.MustNotSelfOverlap(lines), nil
	case "must-not-intersect":
		return rule.MustNotIntersect(lines), nil
	case "must-not-have-dangles":
		return rule.MustNotHaveDangles(lines), nil
	case "must-be-inside":
		polys, err := otherPolygons(args)
		if err != nil {
			return topology.Result{}, err
		}
		return rule.MustBeInsideLineStrings(lines, polys), nil
	default:
		return topology.Result{}, fmt.Errorf("rule %q is not available for linestrings", ruleName)
	}
}

func runPolygonRule(ruleName string, ds iosource.Dataset, args map[string]string) (topology.Result, error) {
	polys, err := multigeom.FlattenPolygons(ds.Geometries)
	if err != nil {
		return topology.Result{}, err
	}
	switch ruleName {
	case "must-not-overlap":
		return rule.MustNotOverlapPolygons(polys), nil
	case "must-not-overlap-with":
		other, err := otherPolygons(args)
		if err != nil {
			return topology.Result{}, err
		}
		return rule.MustNotOverlapWithPolygons(polys, other), nil
	case "must-not-have-gaps":
		return rule.MustNotHaveGaps(polys), nil
	default:
		return topology.Result{}, fmt.Errorf("rule %q is not available for polygons", ruleName)
	}
}

// runMultipart runs must-not-be-multipart directly over the unflattened
// dataset, since this rule's whole purpose is classifying multi- vs.
// singlepart geometries before any flattening would occur.
func runMultipart(tokens []string) (topology.Result, error) {
	args, err := kvArgs(tokens)
	if err != nil {
		return topology.Result{}, err
	}
	ds, err := readDataset(args, "input")
	if err != nil {
		return topology.Result{}, err
	}
	result := rule.MustNotBeMultipart(ds.Geometries)
	if err := exportIfRequested("must-not-be-multipart", result, args); err != nil {
		return topology.Result{}, err
	}
	return result, nil
}

// exportIfRequested writes result under ruleName to args["output"], if
// present.
func exportIfRequested(ruleName string, result topology.Result, args map[string]string) error {
	out, ok := args["output"]
	if !ok {
		return nil
	}
	var results topology.Results
	results.Add(ruleName, result)
	return results.Export(iosource.NewWriter(out))
}
