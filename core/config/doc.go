// Package config provides configuration management for the Menu Manager.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file (loaded through godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, API key, timezone used for availability checks, default page size
//   - Database: driver (mysql or sqlite) and connection details
//   - Storage: S3/MinIO credentials, bucket and the prefix for menu photos
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
