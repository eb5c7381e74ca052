// Package config loads settings for the greencareers CLI.
//
// Precedence, lowest to highest: built-in defaults, a JSON file named by
// -c/-config, then individual flags (-a, -k, -tf, -rt).
package config
