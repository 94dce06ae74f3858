// Package diag implements Colt's diagnostic reporter (spec.md §4.1): three
// severities, each rendering a source excerpt under the message, with
// colour and suppression threaded through a Config value instead
// of the teacher's package-level color.New vars (repl/repl.go, main/main.go)
// — spec.md §9 asks for no global state inside the core, so every severity
// colour decision here reads Config instead of a package var.
package diag

// Config mirrors the embedding driver's suppression flags from spec.md §7:
// {no-color, no-error, no-warning, no-message}.
type Config struct {
	NoColor   bool
	NoError   bool
	NoWarning bool
	NoMessage bool
}

// DefaultConfig is colourised output with nothing suppressed, matching the
// teacher's default REPL/file-mode behaviour.
var DefaultConfig = Config{}
