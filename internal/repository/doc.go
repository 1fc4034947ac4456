// Package repository is the data-access layer: a generic CRUD repository
// over the entity kinds, by-id lookup helpers for trucks and locations,
// and the schedule filter rules used by the HTTP handlers.
//
// Every write runs in its own transaction and either commits completely
// or rolls back. Reads report a missing row as a nil result, not an error.
package repository
