// Package config provides configuration loading, merging, and validation
// facilities for the application, and resolves the key material the
// cryptographic components need.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the command-line client. [ResolveEncryptionKey] and
// [ResolveSigningSecret] turn configured strings into validated secrets.
package config
