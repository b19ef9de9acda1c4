// Package main provides rtinfo, a diagnostics CLI that prints the datatype
// registry and the operator names used in graph dumps.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/born-ml/rtypes/rt"
)

const version = "v0.0.1-dev"

func main() {
	// Color is left to fatih/color, which checks for a terminal and honors
	// NO_COLOR and TERM=dumb.
	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	if err := run(os.Stdout, cmd); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func run(w io.Writer, cmd string) error {
	switch cmd {
	case "version":
		fmt.Fprintf(w, "rtinfo %s\n", version)
	case "dtypes":
		printDataTypes(w)
	case "ops":
		printOps(w)
	case "", "help":
		printUsage(w)
	default:
		printUsage(w)
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "rtinfo - runtime type registry")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  dtypes     List datatype tags")
	fmt.Fprintln(w, "  ops        List operator names")
}

func printDataTypes(w io.Writer) {
	header := color.New(color.Bold).SprintfFunc()
	tag := color.CyanString
	fmt.Fprintln(w, header("%-5s %-9s %-5s %-5s %-17s %s", "TAG", "NAME", "SHORT", "SIZE", "GO TYPE", "SCALAR"))
	for _, dt := range rt.DataTypes() {
		scalar := "no"
		if dt.IsNarrow() {
			scalar = "yes"
		}
		fmt.Fprintf(w, "%s %-9s %-5s %-5d %-17s %s\n",
			tag("0x%02x ", uint8(dt)), dt, dt.ShortName(), dt.Size(), dt.NativeType(), scalar)
	}
}

func printOps(w io.Writer) {
	section := color.New(color.Bold, color.FgYellow).SprintFunc()
	list := func(title string, names []fmt.Stringer) {
		fmt.Fprintln(w, section(title))
		for i, n := range names {
			fmt.Fprintf(w, "  %2d  %s\n", i, n)
		}
	}

	list("binary", stringers(rt.BinaryOps()))
	list("unary", stringers(rt.UnaryOps()))
	list("reduce", stringers(rt.ReduceOps()))
	list("image resize", stringers(rt.ImageResizeModes()))
}

func stringers[S fmt.Stringer](values []S) []fmt.Stringer {
	out := make([]fmt.Stringer, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
