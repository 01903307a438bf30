// Package http implements the local HTTP API of a running kit.
//
// It exposes the kit read projections (state, balance, sync state, last
// ledger sequence), paginated transaction queries, refresh, send and the
// prometheus scrape endpoint. Request tracing, access logging and bearer
// authentication are handled here before calls reach the kit.
package http
