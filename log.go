package clipper

import (
	"log"
	"os"
)

// debugLog is where debugf writes when the session's Debug flag is set;
// defaultDebug (from POLYCLIP_DEBUG) seeds that flag in NewSession. No third-party logging
// library appears anywhere in the retrieved corpus (see DESIGN.md), so
// this mirrors the corpus's own practice: a bare stdlib log.Logger
// gated by a bool, same as a C debug build gated by an #ifdef.
var debugLog = log.New(os.Stderr, "polyclip: ", log.Lmicroseconds)

func (s *Session) debugf(format string, args ...interface{}) {
	if !s.Debug {
		return
	}
	debugLog.Printf(format, args...)
}

func init() {
	if os.Getenv("POLYCLIP_DEBUG") != "" {
		defaultDebug = true
	}
}

var defaultDebug bool
