// Package tables holds the fixed treasure, wealth and encounter tables.
//
// All data is package-level constant data; accessors clamp levels into
// [MinLevel, MaxLevel] and return copies so callers can never mutate the
// shared tables.
package tables
