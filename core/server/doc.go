// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structure for server settings: the listen port, the API key,
// the timezone in which promotional and mealtime windows are evaluated, and the default
// page size of menu listings.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the menus feature to resolve the evaluation timezone.
package server
