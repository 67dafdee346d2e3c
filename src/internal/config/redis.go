package config

import (
	redisModule "flower-shop-service/src/pkg/redis"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

func LoadRedisConfig(viper *viper.Viper) {
	CfgRedis := &redisModule.CfgRedis{
		EnableTLS:     viper.GetBool("redis.enable_tls"),
		RedisHost:     viper.GetString("redis.host"),
		RedisPort:     viper.GetString("redis.port"),
		RedisPassword: viper.GetString("redis.password"),
		RedisDB:       viper.GetInt("redis.db"),
	}
	redisModule.LoadConfig(CfgRedis)
	redisModule.InitConnection()
}

func NewRedis() redis.UniversalClient {
	return redisModule.GetClient()
}
