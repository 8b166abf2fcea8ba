// Package log is the leveled logger used by every ip-ranges package.
//
// Four levels are available through Debugf, Infof, Warnf and Errorf; Fatalf
// logs at error level and exits with status 1. Debug messages are printed
// only after SetVerbose(true). Errors go to stderr, everything else to
// stdout unless SetForceStdErr(true) is used, which `generate -dry-run`
// does to keep stdout for the lists themselves.
//
//	log.SetVerbose(true)
//	log.Infof("Fetched %d record(s)", n)
//	log.Debugf("Resolved %s to %s", host, ip)
//
// Level tags are colored with ANSI escapes unless NO_COLOR is set or
// SetColor(false) is called. All functions are safe for concurrent use.
package log
