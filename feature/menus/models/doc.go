// Package models defines the gorm models of the menu schema, the descriptors
// callers submit on save, and the projected rows returned by listings.
package models
