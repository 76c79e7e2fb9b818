package adapter

import (
	"strings"

	"github.com/spf13/viper"
)

var envKeyReplacer = strings.NewReplacer(".", "_")

// Keys viper only resolves from the environment once they are bound
var envKeys = []string{
	"storage.driver",
	"storage.path",
	"links.cover_url_template",
	"links.detail_url_template",
	"links.browser_command",
	"ui.default_format",
	"ui.country_debounce_ms",
	"logging.file",
	"logging.level",
}

func bindEnv(v *viper.Viper) {
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}
}
