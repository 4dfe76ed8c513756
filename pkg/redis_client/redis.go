package redis_client

import (
	"context"
	"strconv"

	"github.com/gareboard/gareboard/pkg/util"
	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

const defaultConnectionAddress = "localhost:6379"
const defaultDatabase = 0

func Connect() error {
	address := defaultConnectionAddress
	password := ""
	database := defaultDatabase

	env := util.GetEnvironmentVariables()

	if env["GAREBOARD_REDIS_ADDRESS"] != "" {
		address = env["GAREBOARD_REDIS_ADDRESS"]
	}

	if env["GAREBOARD_REDIS_PASSWORD"] != "" {
		password = env["GAREBOARD_REDIS_PASSWORD"]
	}

	if env["GAREBOARD_REDIS_DATABASE"] != "" {
		if n, err := strconv.Atoi(env["GAREBOARD_REDIS_DATABASE"]); err == nil {
			database = n
		} else {
			return err
		}
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	statusCmd := Client.Ping(context.Background())
	if err := statusCmd.Err(); err != nil {
		Client = nil
		return err
	}

	return nil
}
