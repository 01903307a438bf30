// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package kit is the public face of one wallet on one network.
//
// A [Kit] owns the background context its sync engine runs on, passes the
// read projections of the engine through unchanged and submits sends.
// Several kits can run in one process; [Registry] keeps at most one per
// (network, wallet, asset) and replaces them when the active account changes.
package kit
