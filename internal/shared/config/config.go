package config

import (
	"os"
	"strconv"

	"gopkg.in/ini.v1"

	"gbtap/internal/shared/types"
)

// LoadIni loads the behavior configuration file on top of cfg. A
// missing file is not an error: the receiver's endpoint is a fixed
// default and the file only exists to override it.
func LoadIni(cfg *types.Config, fileName string) error {
	if _, err := os.Stat(fileName); os.IsNotExist(err) {
		applyEnvOverrides(cfg)
		return nil
	}

	iniFile, err := ini.Load(fileName)
	if err != nil {
		return err
	}
	if err := iniFile.MapTo(cfg); err != nil {
		return err
	}
	applyEnvOverrides(cfg)
	return nil
}

func applyEnvOverrides(cfg *types.Config) {
	overrideFromEnvString(&cfg.CommonConf.Address, "GBTAP_ADDRESS")
	overrideFromEnvInt(&cfg.CommonConf.Port, "GBTAP_PORT")
}

func overrideFromEnvString(target *string, envName string) {
	if envValue := os.Getenv(envName); envValue != "" {
		*target = envValue
	}
}

func overrideFromEnvInt(target *int, envName string) {
	envValue := os.Getenv(envName)
	if envValue != "" {
		if intValue, err := strconv.Atoi(envValue); err == nil {
			*target = intValue
		}
	}
}
