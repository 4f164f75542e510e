// Package availability evaluates inclusive availability windows.
//
// Evaluation is pure and reads the reference time supplied by the caller;
// results are never cached.
package availability
