// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` for .env files and
// `github.com/caarlos0/env/v11` for tag-driven parsing:
//
//	type Config struct {
//	    Tree tree.Config
//	    Poll poll.Config
//	    Log  logger.Config
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("UTILKIT_")); err != nil {
//	    log.Fatal(err)
//	}
//
// Config structs are declared next to the code they configure; nested structs
// are parsed recursively and share the prefix.
//
// # Error Handling
//
// Failures wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can be
// matched with errors.Is.
package config
