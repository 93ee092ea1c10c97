// superlog package picks where command-line diagnostics go: stderr, syslog, or the systemd journal.
//
//	w, err := superlog.New(superlog.Options{Journald: true})
//	log.SetOutput(w) // w is non-nil even when err is not
package superlog

import (
	"fmt"
	"io"
	"log/syslog"
	"os"
	"path/filepath"
)

// Options selects a destination. The zero value is stderr.
type Options struct {
	Priority     Priority // journal priority; zero means PriInfo
	Syslog       bool     // local syslog
	RemoteSyslog string   // host:port, sent over udp (implies Syslog)
	Journald     bool     // systemd journal, if it is running
	Tag          string   // syslog tag; defaults to the program name
}

// Stderr is the fallback writer for New and for JournalWriter.
var Stderr io.Writer = os.Stderr

// New returns a non-nil io.Writer. If err is not nil, Stderr is returned with the error.
func New(opts Options) (io.Writer, error) {
	switch {
	case opts.Syslog || opts.RemoteSyslog != "":
		network := ""
		if opts.RemoteSyslog != "" {
			network = "udp"
		}
		tag := opts.Tag
		if tag == "" {
			tag = filepath.Base(os.Args[0])
		}
		w, err := syslog.Dial(network, opts.RemoteSyslog, syslog.LOG_INFO|syslog.LOG_USER, tag)
		if w == nil {
			return Stderr, fmt.Errorf("syslog: %w", err)
		}
		return w, err
	case opts.Journald:
		if !JournalEnabled() {
			return Stderr, fmt.Errorf("journal not enabled")
		}
		return GetJournalOrStderr(opts.Priority), nil
	default:
		return Stderr, nil
	}
}
