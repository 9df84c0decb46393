// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags bound with [BindFlags]
//  2. Environment variables prefixed with VAULT_
//  3. JSON or YAML config file
//  4. Built-in [Defaults]
//
// The main entry point is [Load].
package config
