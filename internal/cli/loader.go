package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/massplot/internal/config"
	"github.com/specialistvlad/massplot/internal/hcl"
	"github.com/specialistvlad/massplot/internal/yamlconfig"
)

// ConfigEnvVar names a configuration file used when --config is not given.
const ConfigEnvVar = "MASSPLOT_CONFIG"

// loaderFor picks the configuration loader from the file extension.
func loaderFor(path string) (config.Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return hcl.NewLoader(), nil
	case ".yaml", ".yml":
		return yamlconfig.NewLoader(), nil
	default:
		return nil, fmt.Errorf("unsupported config file %q: expected .hcl, .yaml or .yml", path)
	}
}
