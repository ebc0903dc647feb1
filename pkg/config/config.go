package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App  AppConfig  `mapstructure:"app"`
	Path PathConfig `mapstructure:"path"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type PathConfig struct {
	Network     string `mapstructure:"network"`      // "mainnet" or "testnet"
	DefaultPath string `mapstructure:"default_path"` // derive 命令的默认派生路径
}

var Global Config

func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// 环境变量设置 (HDPATH_PATH_NETWORK 等)
	viper.SetEnvPrefix("hdpath")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// 没有配置文件时直接使用默认值和环境变量
		} else {
			log.Fatalf("Fatal error config file: %s \n", err)
		}
	}

	if err := viper.Unmarshal(&Global); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("app.env", "development")
	viper.SetDefault("path.network", "mainnet")
	viper.SetDefault("path.default_path", "m/44'/0'/0'/0/0")
}
