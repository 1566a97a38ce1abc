// Diagnostic tool for inspecting Igor binary wave files.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/robert-malhotra/go-ibw/ibw"
)

var (
	lenient = flag.Bool("lenient", false, "continue with a warning on non-zero padding")
	verbose = flag.Bool("v", false, "verbose logging")
)

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: ibwdump [-lenient] [-v] <file.ibw> [more.ibw ...]")
		os.Exit(1)
	}

	logger := zap.NewNop()
	if *verbose || *lenient {
		l, err := zap.NewDevelopment()
		if err == nil {
			logger = l
		}
	}
	defer logger.Sync()

	opts := []ibw.Option{ibw.WithLogger(logger)}
	if *lenient {
		opts = append(opts, ibw.WithLenient())
	}

	for _, path := range flag.Args() {
		w, err := ibw.Open(path, opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
		dump(path, w)
	}
}

func dump(path string, w *ibw.Wave) {
	fmt.Printf("=== %s ===\n", path)
	fmt.Printf("Version:    %d\n", w.Version)
	fmt.Printf("Byte order: %v\n", w.ByteOrder)
	fmt.Printf("Name:       %q\n", w.Name())
	if w.IsText() {
		fmt.Printf("Type:       text\n")
	} else {
		fmt.Printf("Type:       0x%02x\n", w.Type)
	}
	fmt.Printf("Shape:      %v (%d points)\n", w.Shape, w.NPnts())
	if u := w.DataUnits(); u != "" {
		fmt.Printf("Units:      %q\n", u)
	}

	for d := 0; d < w.Rank(); d++ {
		delta, offset := w.Scale(d)
		fmt.Printf("Dim %d:      extent %d, index = %g*e + %g", d, w.Shape[d], delta, offset)
		if u := w.DimUnits(d); u != "" {
			fmt.Printf(", units %q", u)
		}
		if labels := w.DimLabels(d); len(labels) > 0 {
			fmt.Printf(", labels %q", labels)
		}
		fmt.Println()
	}

	if top, bot, valid := w.FullScale(); valid {
		fmt.Printf("Full scale: %g .. %g\n", top, bot)
	}
	fmt.Printf("Created:    %s\n", w.Created())
	fmt.Printf("Modified:   %s\n", w.Modified())
	if n := w.Note(); n != "" {
		fmt.Printf("Note:       %q\n", n)
	}
	if f := w.Formula(); f != "" {
		fmt.Printf("Formula:    %q\n", f)
	}
	preview(w)
	fmt.Println()
}

const previewLen = 8

func preview(w *ibw.Wave) {
	if w.IsText() {
		strs := w.Strings()
		n := len(strs)
		if n > previewLen {
			strs = strs[:previewLen]
		}
		fmt.Printf("Strings:    %q", strs)
		if n > previewLen {
			fmt.Printf(" ... (%d total)", n)
		}
		fmt.Println()
		return
	}

	values, err := w.Floats()
	if err != nil {
		// Complex waves have no flat float view; show the element type.
		fmt.Printf("Data:       %T, %d points\n", w.Data, w.NPnts())
		return
	}
	n := len(values)
	if n > previewLen {
		values = values[:previewLen]
	}
	fmt.Printf("Data:       %g", values)
	if n > previewLen {
		fmt.Printf(" ... (%d total)", n)
	}
	fmt.Println()
}
