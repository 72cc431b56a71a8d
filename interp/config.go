package interp

import (
	"github.com/BurntSushi/toml"

	"github.com/heistscheme/heistcore/diag"
)

// Config is diag.Config: pretty-print column budget, ANSI-enable flag, port
// registry capacity, and the stack/call guards (SPEC_FULL §2
// "Configuration"). It's aliased here, rather than duplicated, so
// diag.Format can take a Config without diag importing interp.
type Config = diag.Config

// LoadConfig reads a TOML file into a Config, defaulting every field TOML
// leaves unset (BurntSushi/toml decodes onto the zero value, so start from
// diag.DefaultConfig() rather than a bare Config{}).
func LoadConfig(path string) (Config, error) {
	cfg := diag.DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
