package superlog

import (
	"io"

	"github.com/coreos/go-systemd/journal"
)

type Priority = journal.Priority

var _ io.Writer = JournalWriter{} // compile-time interface check

// JournalWriter sends each Write to the systemd journal as one entry.
//
//	log.SetOutput(superlog.JournalWriter{Priority: journal.PriErr})
type JournalWriter struct {
	Priority // zero is PriEmerg, use GetJournalOrStderr for PriInfo
}

// send is journal.Send, swapped in tests
var send = journal.Send

// Write falls back to Stderr (with the journal error) when the journal rejects the entry.
func (j JournalWriter) Write(b []byte) (int, error) {
	if err := send(string(b), j.Priority, nil); err != nil {
		if Stderr != nil {
			io.WriteString(Stderr, "superlog: journal: "+err.Error()+"\n")
			Stderr.Write(b)
		}
		return 0, err
	}
	return len(b), nil
}

// GetJournalOrStderr returns a JournalWriter when the journal is running, Stderr otherwise.
// If p is zero, PriInfo is used.
func GetJournalOrStderr(p Priority) io.Writer {
	if p == 0 {
		p = journal.PriInfo
	}
	if !JournalEnabled() {
		return Stderr
	}
	return JournalWriter{p}
}

// JournalEnabled checks whether the local systemd journal is available.
func JournalEnabled() bool {
	return journal.Enabled()
}
