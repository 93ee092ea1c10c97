// Command change prints a number of cents between 0 and 99.
//
//	$ change -cents 99
//	Change: 99 cents
//	$ change -cents 100
//	invalid value "100" for flag -cents: 100 exceeds maximum of 99
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aerth/numflag/flagpkg"
	"github.com/aerth/numflag/superlog"
)

type config struct {
	cents uint8
	log   superlog.Options
}

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2) // flag already printed the error and usage
	}

	w, err := superlog.New(cfg.log)
	log.SetOutput(w)
	log.SetFlags(0)
	log.SetPrefix("change: ")
	if err != nil {
		log.Printf("logging to stderr: %v", err)
	}
	if err := run(cfg, os.Stdout); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

// parseArgs reads the command line; flag errors are also written to output
func parseArgs(args []string, output io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("change", flag.ContinueOnError)
	fs.SetOutput(output)
	flagpkg.RangeVar(fs, &cfg.cents, "cents", 0, 0, 99, "change in `cents`, 0 to 99")
	fs.BoolVar(&cfg.log.Journald, "journald", false, "log to the systemd journal")
	fs.BoolVar(&cfg.log.Syslog, "syslog", false, "log to syslog")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() != 0 {
		err := fmt.Errorf("unexpected arguments: %q", fs.Args())
		fmt.Fprintln(output, err)
		return cfg, err
	}
	return cfg, nil
}

func run(cfg config, out io.Writer) error {
	_, err := fmt.Fprintf(out, "Change: %d cents\n", cfg.cents)
	return err
}
