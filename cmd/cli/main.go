package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	apisdk "github.com/hilthontt/sovereign/api-sdk"
	"github.com/hilthontt/sovereign/api-sdk/option"
)

func main() {
	var (
		baseURL = flag.String("url", "", "sovereign base URL (defaults to SOVEREIGN_BASE_URL or http://localhost:8000)")
		timeout = flag.Duration("timeout", 30*time.Second, "request timeout")
		debug   = flag.Bool("debug", false, "dump requests and responses to stderr")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <intent...>\n       %s [flags] health\n\n", os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	opts := []option.RequestOption{option.WithRequestTimeout(*timeout)}
	if *baseURL != "" {
		opts = append(opts, option.WithBaseURL(*baseURL))
	}
	if *debug {
		opts = append(opts, option.WithDebugLog(log.New(os.Stderr, "", 0)))
	}

	client := apisdk.NewClient(opts...)
	renderer := newRenderer(lipgloss.DefaultRenderer())

	out, err := run(context.Background(), client, renderer, flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, renderer.Error(err))
		os.Exit(1)
	}
	fmt.Println(out)
}

func run(ctx context.Context, client *apisdk.Client, r *renderer, args []string) (string, error) {
	if len(args) == 1 && args[0] == "health" {
		res, err := client.Health.Get(ctx)
		if err != nil {
			return "", err
		}
		return r.Health(res), nil
	}

	res, err := client.Execute.New(ctx, apisdk.ExecuteParams{Intent: strings.Join(args, " ")})
	if err != nil {
		return "", err
	}
	return r.Report(res), nil
}
