package script

import (
	"strings"
	"time"
)

// Options selects the helper invocation emitted in a rendered script. The
// boolean toggles correspond to helper flags appended in a fixed order:
// --needed before -S, the rest after the package expansion.
type Options struct {
	Helper       string
	Needed       bool
	Sudoloop     bool
	Batchinstall bool
	Asdeps       bool
}

// Provenance records where a script came from. Every field is embedded as a
// comment in the rendered preamble.
type Provenance struct {
	Source      string
	GeneratedAt time.Time
	RunID       string
}

// Render produces the full text of an install script for packages. An empty
// package list yields a placeholder script that prints a notice and exits 0.
func Render(opts Options, packages []string, prov Provenance) string {
	var b strings.Builder
	b.WriteString("#!/usr/bin/env bash\n")
	b.WriteString("set -euo pipefail\n")
	b.WriteString("\n")
	b.WriteString("# Generated by: aurgen\n")
	b.WriteString("# Source: " + prov.Source + "\n")
	b.WriteString("# Generated at: " + prov.GeneratedAt.UTC().Format(time.RFC3339) + "\n")
	if prov.RunID != "" {
		b.WriteString("# Run: " + prov.RunID + "\n")
	}
	b.WriteString("\n")

	if len(packages) == 0 {
		b.WriteString("echo \"no packages detected\"\n")
		b.WriteString("exit 0\n")
		return b.String()
	}

	b.WriteString("pkgs=(\n")
	for _, pkg := range packages {
		b.WriteString("  " + quote(pkg) + "\n")
	}
	b.WriteString(")\n")
	b.WriteString("\n")
	b.WriteString("exec " + commandLine(opts) + "\n")
	return b.String()
}

func commandLine(opts Options) string {
	parts := []string{opts.Helper}
	if opts.Needed {
		parts = append(parts, "--needed")
	}
	parts = append(parts, "-S", `"${pkgs[@]}"`)
	if opts.Sudoloop {
		parts = append(parts, "--sudoloop")
	}
	if opts.Batchinstall {
		parts = append(parts, "--batchinstall")
	}
	if opts.Asdeps {
		parts = append(parts, "--asdeps")
	}
	return strings.Join(parts, " ")
}

// quote single-quotes a token for the shell. Validated tokens never contain
// single quotes, but the escape keeps the script well formed for any input.
func quote(token string) string {
	return "'" + strings.ReplaceAll(token, "'", `'\''`) + "'"
}
