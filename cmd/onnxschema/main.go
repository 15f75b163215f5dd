// onnxschema lists the registered operator schemas, prints their documentation, and checks graph
// descriptions in YAML (see package internal/graphfile), printing the inferred type of every value.
//
// Examples:
//
//	onnxschema -list
//	onnxschema -doc=ReduceLogSumExp
//	onnxschema -check=model.yaml -opset=13
package main

import (
	"flag"
	"io"
	"os"

	"github.com/gomlx/onnxschema"
	"github.com/gomlx/onnxschema/checker"
	"github.com/gomlx/onnxschema/internal/graphfile"
	"github.com/gomlx/onnxschema/internal/optypes"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagList   = flag.Bool("list", false, "Lists the registered operator schemas.")
	flagDoc    = flag.String("doc", "", "Prints the documentation of the given operator, e.g. \"ReduceSum\" or \"reduce_sum\".")
	flagDomain = flag.String("domain", "", "Domain of the operator given to -doc. Empty for the default ONNX domain.")
	flagCheck  = flag.String("check", "", "Checks the graph described in the given YAML file, and prints the type of every value.")
	flagOpset  = flag.Int("opset", checker.DefaultOpsetVersion,
		"Opset version used by -doc, and by -check for graphs that don't set one.")
	flagLax = flag.Bool("lax", false, "If set, -check accepts attributes not declared by the operators.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if flag.NArg() > 0 {
		klog.Errorf("Unexpected arguments %q. See 'onnxschema -help'.", flag.Args())
		os.Exit(1)
	}
	if !*flagList && *flagDoc == "" && *flagCheck == "" {
		klog.Errorf("Nothing to do: use one of -list, -doc or -check. See 'onnxschema -help'.")
		os.Exit(1)
	}

	registry := must.M1(onnxschema.NewStandardRegistry())
	if *flagList {
		listSchemas(os.Stdout, registry)
	}
	if *flagDoc != "" {
		if err := docSchema(os.Stdout, registry, *flagDomain, *flagDoc, *flagOpset); err != nil {
			klog.Errorf("%v", err)
			os.Exit(1)
		}
	}
	if *flagCheck != "" {
		if err := checkGraph(os.Stdout, registry, *flagCheck); err != nil {
			klog.Errorf("%v", err)
			os.Exit(1)
		}
	}
}

// docSchema prints the documentation of one schema, and the versions in which the operator changed.
// Operators in the default domain can also be given in snake case.
func docSchema(w io.Writer, registry *onnxschema.Registry, domain, name string, opset int) error {
	if domain == "" {
		if op, err := optypes.FromName(name); err == nil {
			name = op.String()
		}
	}
	s, found := registry.Schema(domain, name, opset)
	if !found {
		return errors.Errorf("no schema for operator %q in domain %q for opset %d", name, domain, opset)
	}
	printSchema(w, s, registry.Versions(domain, name))
	return nil
}

// checkGraph loads the graph file at path, infers the type of every value and prints them to w.
func checkGraph(w io.Writer, registry *onnxschema.Registry, path string) error {
	g, err := graphfile.Load(path)
	if err != nil {
		return err
	}
	c := checker.New(registry, checker.WithDefaultOpset(*flagOpset), checker.WithStrictAttributes(!*flagLax))
	values, err := c.CheckGraph(g)
	if err != nil {
		return err
	}
	printValues(w, g, values)
	return nil
}
