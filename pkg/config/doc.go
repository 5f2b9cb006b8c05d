// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv, which reads .env files into the
// process environment, with github.com/caarlos0/env/v11, which parses the
// environment into structs annotated with env tags. Every package that needs
// settings declares its own Config struct (validation.Config, pg.Config,
// redis.Config, mongo.Config) and loads it here.
//
//	var cfg validation.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Each configuration type is parsed once and cached for the life of the
// process; concurrent first calls parse it once. A failed parse is not
// cached. The first Load reads .env from the working directory if present.
//
// LoadEnv reads explicit files, later files overriding earlier ones and the
// existing environment, then drops the cache. ResetCache is also exported for
// tests. MustLoad and MustLoadEnv panic instead of returning an error, for
// settings a process cannot start without.
package config
