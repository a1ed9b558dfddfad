package config

import "yalv/internal/virsh"

// Default returns the settings used when no flags are given.
func Default() Settings {
	return Settings{
		VirshBinary: virsh.DefaultBinary,
		SSHBinary:   virsh.DefaultSSHBinary,
	}
}
