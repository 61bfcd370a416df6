// Command quantctl converts physical-quantity magnitudes between units,
// either one at a time from the command line or in bulk from a YAML
// batch file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/halvorsen/quant"
	"github.com/halvorsen/quant/internal/batch"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "convert":
		runConvert(os.Args[2:])
	case "batch":
		runBatch(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: quantctl convert --from=\"<magnitude> <unit>\" --to=<unit>")
	fmt.Fprintln(os.Stderr, "       quantctl batch <file.yaml>")
}

func runConvert(args []string) {
	fs := pflag.NewFlagSet("convert", pflag.ExitOnError)
	from := fs.String("from", "", "source value, e.g. \"5 km\"")
	to := fs.String("to", "", "target unit, e.g. \"m\"")
	si := fs.Bool("si", false, "print the canonical SI magnitude and unit instead")
	fs.Parse(args)

	if *from == "" {
		fmt.Fprintln(os.Stderr, "quantctl convert: --from is required")
		os.Exit(2)
	}

	var magnitude float64
	var units string
	if n, err := fmt.Sscanf(*from, "%f %s", &magnitude, &units); n != 2 || err != nil {
		fmt.Fprintf(os.Stderr, "quantctl convert: could not parse %q as \"<magnitude> <unit>\"\n", *from)
		os.Exit(1)
	}

	q, err := quant.New(magnitude, units)
	if err != nil {
		fmt.Fprintln(os.Stderr, "quantctl convert:", err)
		os.Exit(1)
	}

	if *si {
		value, siUnits := q.GetSI()
		fmt.Printf("%g %s\n", value, siUnits)
		return
	}

	if *to == "" {
		fmt.Fprintln(os.Stderr, "quantctl convert: --to is required unless --si is set")
		os.Exit(2)
	}
	value, err := q.Convert(*to)
	if err != nil {
		fmt.Fprintln(os.Stderr, "quantctl convert:", err)
		os.Exit(1)
	}
	fmt.Printf("%g %s\n", value, *to)
}

func runBatch(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: quantctl batch <file.yaml>")
		os.Exit(2)
	}

	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "quantctl batch:", err)
		os.Exit(1)
	}
	defer f.Close()

	doc, err := batch.Decode(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "quantctl batch:", err)
		os.Exit(1)
	}

	failed := false
	for _, r := range batch.Run(doc) {
		if r.Err != nil {
			fmt.Printf("%-10v %s -> %s: ERROR: %v\n", r.Job.Magnitude, r.Job.From, r.Job.To, r.Err)
			failed = true
			continue
		}
		fmt.Printf("%-10v %s -> %g %s\n", r.Job.Magnitude, r.Job.From, r.Value, r.Job.To)
	}
	if failed {
		os.Exit(1)
	}
}
