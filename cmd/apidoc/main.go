// Command apidoc renders the shared API endpoint catalog, with request and
// response examples for every record type, as JSON or YAML.
//
// Usage:
//
//	apidoc [--config=apidoc.yaml] [--format=json|yaml] [--out=api.json]
//
// Settings are read from --config, else CONFIG_PATH (default ./apidoc.yaml),
// and the environment; --format overrides doc.format. Run with -h to list
// the environment variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/unidict-shared/internal/app"
	"github.com/heartmarshall/unidict-shared/internal/config"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (overrides CONFIG_PATH)")
	format := flag.String("format", "", "output format: json or yaml (overrides doc.format)")
	out := flag.String("out", "", "write the catalog to this file instead of stdout")
	flag.Usage = usage
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := app.Options{
		Format:     *format,
		Out:        *out,
		ConfigPath: *configPath,
		Stdout:     os.Stdout,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "apidoc: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintln(w, "Usage: apidoc [flags]")
	flag.PrintDefaults()
	if desc, err := config.Describe(); err == nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, desc)
	}
}
