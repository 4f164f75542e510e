// Package utils provides small conversion helpers shared by the CLI and the HTTP layer.
package utils
