package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/greencareers/internal/flagx"
)

var serverFlags = []string{
	"-a", "-m", "-st", "-d", "-r", "-k", "-s", "-alg", "-t",
	"-q", "-x", "-u", "-p", "-b", "-g", "-e", "-l",
}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string    gRPC bind address (e.g., ":50051")
//	-m string    metrics bind address (e.g., ":9090")
//	-st string   storage backend: memory, postgres, redis
//	-d string    PostgreSQL DSN
//	-r string    Redis address
//	-k string    shared API key expected in x-api-key
//	-s string    JWT HMAC secret key
//	-alg string  JWT algorithm (HS256, HS384, HS512)
//	-t int       access token validity, minutes
//	-q string    RabbitMQ URL for identity events
//	-x string    RabbitMQ exchange name
//	-u string    S3 root user
//	-p string    S3 root password
//	-b string    S3 bucket for archived resumes
//	-g string    S3 region
//	-e string    S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-l string    log level
//
// os.Args is first filtered down to these flags with flagx.FilterArgs so
// -c/-config and -env can coexist on the same command line.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], serverFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "address and port for metrics")
	fs.StringVar(&config.Storage, "st", config.Storage, "storage backend")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address")
	fs.StringVar(&config.APIKey, "k", config.APIKey, "shared API key")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.TokenAlgorithm, "alg", config.TokenAlgorithm, "token algorithm")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")

	fs.StringVar(&config.AMQPURL, "q", config.AMQPURL, "RabbitMQ URL")
	fs.StringVar(&config.AMQPExchange, "x", config.AMQPExchange, "RabbitMQ exchange")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 resume bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
}
