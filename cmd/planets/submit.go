// cmd/planets/submit.go — planets submit subcommand.
package main

import (
	"flag"
	"fmt"
	"os"
)

func runSubmit(args []string) {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	server := fs.String("server", "http://localhost:5000", "API base URL")
	start := fs.Int("start", 0, "range start (host designation number)")
	end := fs.Int("end", 0, "range end (host designation number)")
	binSize := fs.Float64("bin-size", 0, "histogram bin size (Earth radii)")
	_ = fs.Parse(args)

	rangeSet := flagWasSet(fs, "start") || flagWasSet(fs, "end")
	if rangeSet && flagWasSet(fs, "bin-size") {
		fmt.Fprintln(os.Stderr, "submit: --start/--end and --bin-size are mutually exclusive")
		os.Exit(1)
	}

	body := map[string]any{}
	if rangeSet {
		body["start"] = *start
		body["end"] = *end
	} else if flagWasSet(fs, "bin-size") {
		body["bin_size"] = *binSize
	} else {
		fmt.Fprintln(os.Stderr, "submit: provide --start/--end or --bin-size")
		fs.Usage()
		os.Exit(1)
	}

	var job struct {
		ID     string `json:"id"`
		Type   string `json:"type"`
		Status string `json:"status"`
	}
	if err := newClient(*server).postJSON("/jobs", body, &job); err != nil {
		fmt.Fprintf(os.Stderr, "submit: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("job_id: %s\n", job.ID)
	fmt.Printf("type:   %s\n", job.Type)
	fmt.Printf("status: %s\n", job.Status)
}

func flagWasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
