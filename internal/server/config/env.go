package config

import (
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/greencareers/internal/flagx"
	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A dotenv file is
// loaded first: the path given with -env, or ./.env when present. Variables
// already set in the process environment win over the file.
//
// Recognised variables:
//
//	GRPC_ADDR, METRICS_ADDR, STORAGE, DATABASE_DSN, REDIS_ADDR,
//	API_KEY, SECRET_KEY, ALGORITHM, ACCESS_TOKEN_EXPIRE_MINUTES,
//	RABBITMQ_URL, AMQP_EXCHANGE, S3_ROOT_USER, S3_ROOT_PASSWORD,
//	S3_BUCKET, S3_REGION, S3_BASE_ENDPOINT, LOG_LEVEL
//
// An explicitly requested env file that cannot be read panics, matching the
// JSON loader; a missing default ./.env is ignored.
func parseEnv(config *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else {
		_ = godotenv.Load()
	}

	setString(&config.EndpointAddrGRPC, "GRPC_ADDR")
	setString(&config.MetricsAddr, "METRICS_ADDR")
	setString(&config.Storage, "STORAGE")
	setString(&config.DatabaseDSN, "DATABASE_DSN")
	setString(&config.RedisAddr, "REDIS_ADDR")
	setString(&config.APIKey, "API_KEY")
	setString(&config.SecretKey, "SECRET_KEY")
	setString(&config.TokenAlgorithm, "ALGORITHM")
	setString(&config.AMQPURL, "RABBITMQ_URL")
	setString(&config.AMQPExchange, "AMQP_EXCHANGE")
	setString(&config.S3RootUser, "S3_ROOT_USER")
	setString(&config.S3RootPassword, "S3_ROOT_PASSWORD")
	setString(&config.S3Bucket, "S3_BUCKET")
	setString(&config.S3Region, "S3_REGION")
	setString(&config.S3BaseEndpoint, "S3_BASE_ENDPOINT")
	setString(&config.LogLevel, "LOG_LEVEL")

	if v, ok := os.LookupEnv("ACCESS_TOKEN_EXPIRE_MINUTES"); ok {
		minutes, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		config.AccessTokenValidityDuration = time.Duration(minutes) * time.Minute
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}
