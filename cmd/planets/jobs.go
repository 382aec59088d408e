// cmd/planets/jobs.go — planets jobs and load subcommands.
package main

import (
	"flag"
	"fmt"
	"os"
)

func runJobs(args []string) {
	fs := flag.NewFlagSet("jobs", flag.ExitOnError)
	server := fs.String("server", "http://localhost:5000", "API base URL")
	_ = fs.Parse(args)

	var ids []string
	if err := newClient(*server).getJSON("/jobs", &ids); err != nil {
		fmt.Fprintf(os.Stderr, "jobs: %v\n", err)
		os.Exit(1)
	}
	for _, id := range ids {
		fmt.Println(id)
	}
}

func runLoad(args []string) {
	fs := flag.NewFlagSet("load", flag.ExitOnError)
	server := fs.String("server", "http://localhost:5000", "API base URL")
	_ = fs.Parse(args)

	var resp struct {
		Message string `json:"message"`
	}
	if err := newClient(*server).postJSON("/data", map[string]any{}, &resp); err != nil {
		fmt.Fprintf(os.Stderr, "load: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(resp.Message)
}
