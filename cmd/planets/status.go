// cmd/planets/status.go — planets status subcommand.
package main

import (
	"flag"
	"fmt"
	"os"
)

func runStatus(args []string) {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	server := fs.String("server", "http://localhost:5000", "API base URL")
	id := fs.String("id", "", "job id (required)")
	_ = fs.Parse(args)

	if *id == "" {
		fmt.Fprintln(os.Stderr, "status: --id is required")
		fs.Usage()
		os.Exit(1)
	}

	var job struct {
		ID     string `json:"id"`
		Type   string `json:"type"`
		Status string `json:"status"`
	}
	if err := newClient(*server).getJSON("/jobs/"+*id, &job); err != nil {
		fmt.Fprintf(os.Stderr, "status: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("job_id: %s\n", job.ID)
	fmt.Printf("type:   %s\n", job.Type)
	fmt.Printf("status: %s\n", job.Status)
}
