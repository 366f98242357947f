// Package log provides simple leveled logging for zte-goform.
//
// Messages are printf-style and prefixed with a colored level tag. Debug
// output is only shown in verbose mode; errors always go to stderr.
//
//	log.SetVerbose(true)
//	log.Debugf("cache miss for %s", key)
//	log.Warnf("device timed out, attempt %d/%d", attempt, budget)
//
// Nothing in this package ever receives the device credential; callers must
// not pass it in.
package log
