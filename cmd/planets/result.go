// cmd/planets/result.go — planets result subcommand. Writes the result
// payload to stdout or a file; histogram results are PNG bytes.
package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
)

func runResult(args []string) {
	fs := flag.NewFlagSet("result", flag.ExitOnError)
	server := fs.String("server", "http://localhost:5000", "API base URL")
	id := fs.String("id", "", "job id (required)")
	out := fs.String("out", "", "write payload to this file instead of stdout")
	_ = fs.Parse(args)

	if *id == "" {
		fmt.Fprintln(os.Stderr, "result: --id is required")
		fs.Usage()
		os.Exit(1)
	}

	c := newClient(*server)
	resp, err := c.http.Get(c.base + "/results/" + *id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "result: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusAccepted:
		fmt.Println("pending")
		return
	case resp.StatusCode >= 400:
		fmt.Fprintf(os.Stderr, "result: %v\n", apiError(resp))
		os.Exit(1)
	}

	dst := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "result: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		dst = f
	}
	if _, err := io.Copy(dst, resp.Body); err != nil {
		fmt.Fprintf(os.Stderr, "result: %v\n", err)
		os.Exit(1)
	}
}
