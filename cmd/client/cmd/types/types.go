// Package types holds the context keys shared across the command tree.
package types

type contextKey string

// ClientAppKey is the context key under which the root command stores the
// initialized client application for subcommands.
const ClientAppKey contextKey = "client-app"
