// Package config manages user-level settings stored at ~/.betterpip/config.yaml.
// Every key can also be set through a BETTERPIP_-prefixed environment variable
// (pip_command ↔ BETTERPIP_PIP_COMMAND), which is how the original tool was
// configured and still the most common way to script it.
package config
