// Package journal records wake events in an append-only SQLite journal.
//
// Every reported wake-up and every cycle reset is appended as one row, so
// operators can reconstruct the wake history of a board even after the
// in-memory state has been reset. Schema changes ship as embedded SQL
// scripts applied through the user_version pragma.
package journal
