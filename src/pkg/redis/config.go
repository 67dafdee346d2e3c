package redis

import "fmt"

type CfgRedis struct {
	EnableTLS     bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

type RedisConfig struct {
	Host      string
	Port      string
	Password  string
	DB        int
	EnableTLS bool
}

var RedisConfigData RedisConfig

func LoadConfig(config *CfgRedis) {
	RedisConfigData = RedisConfig{
		Host:      fmt.Sprintf("%v", config.RedisHost),
		Port:      fmt.Sprintf("%v", config.RedisPort),
		Password:  fmt.Sprintf("%v", config.RedisPassword),
		DB:        config.RedisDB,
		EnableTLS: config.EnableTLS,
	}
}
