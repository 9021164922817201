// Package config provides configuration loading, merging, and validation
// facilities for the bitcredit client and the local mock node.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (JSON with comments, or YAML by extension)
//
// The main entry points are [GetStructuredConfig] for the merged view,
// [GetClientConfig] for the client runtime and [GetMockNodeConfig] for the
// standalone mock node.
package config
