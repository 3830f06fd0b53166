package util

import (
	"strings"

	"github.com/spf13/viper"
)

func ReadConfig(filePath string, defaults map[string]interface{}, out interface{}) error {
	v := viper.New()
	v.SetConfigFile(filePath)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // for nested structure
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	if err := v.Unmarshal(out); err != nil {
		return err
	}

	return nil
}
