// Package config holds the runtime settings of yalv.
//
// yalv has no configuration file. Settings are populated from command-line
// flags on top of Default and checked with Validate before the TUI starts.
package config
