// Command resistance reads a resistance with an optional metric prefix.
//
//	$ resistance -resistance 4_700k
//	Resistance: 4700000 ohms (4.7 MΩ)
//	$ resistance -resistance 47k -allowed 1k,100k
//	Resistance: 47000 ohms (47 kΩ)
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aerth/numflag/flagpkg"
	"github.com/aerth/numflag/numparse"
	"github.com/aerth/numflag/superlog"
	"github.com/dustin/go-humanize"
)

func main() {
	var (
		ohms    uint64
		allowed []uint64
		opts    superlog.Options
	)
	flagpkg.SIVar(nil, &ohms, "resistance", 0, "resistance in `ohms`, with an optional SI prefix (47k)")
	flagpkg.ListVar(nil, &allowed, "allowed", nil, "inclusive `min,max` range for -resistance", numparse.SINumber[uint64])
	flag.BoolVar(&opts.Journald, "journald", false, "log to the systemd journal")
	flag.BoolVar(&opts.Syslog, "syslog", false, "log to syslog")
	flag.StringVar(&opts.RemoteSyslog, "remote-syslog", "", "log to a remote syslog `host:port` over udp")
	flag.Parse()

	w, err := superlog.New(opts)
	log.SetOutput(w)
	log.SetFlags(0)
	log.SetPrefix("resistance: ")
	if err != nil {
		log.Printf("logging to stderr: %v", err)
	}

	if err := run(ohms, allowed); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

func run(ohms uint64, allowed []uint64) error {
	switch len(allowed) {
	case 0:
	case 2:
		if allowed[0] > allowed[1] {
			return fmt.Errorf("-allowed: minimum of %d exceeds maximum of %d", allowed[0], allowed[1])
		}
		if _, err := numparse.CheckRange(ohms, allowed[0], allowed[1]); err != nil {
			return fmt.Errorf("-resistance: %w", err)
		}
	default:
		return fmt.Errorf("-allowed: want min,max, got %d values", len(allowed))
	}
	fmt.Printf("Resistance: %d ohms (%s)\n", ohms, humanize.SI(float64(ohms), "Ω"))
	return nil
}
