// Package envinfo implements the beacon.EnvironmentProvider contract.
//
// Host derives facts from the running process (GOOS, GOARCH, POSIX locale
// variables, kernel release). Static serves a fixed map, which suits
// tests and applications that resolve their facts once at startup. Every
// lookup is local and non-blocking; a fact that cannot be resolved is
// reported as a miss, never as an error.
package envinfo
