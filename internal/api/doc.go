// Package api implements the HTTP REST API for the living room inventory.
//
// This package provides:
//   - REST endpoints for people, televisions, computers, home theaters,
//     users, and the person-to-device association tables
//   - JWT bearer authentication for everything except token issuance,
//     health, and metrics
//   - A uniform JSON error envelope with stable machine-readable codes
//
// All routes are served under /api/v1. Record identifiers are supplied
// by the caller on creation and never generated server side.
package api
