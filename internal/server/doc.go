// Package server runs the local API of the kit daemon.
//
// It owns the HTTP server lifecycle: startup, signal handling and graceful
// shutdown.
package server
