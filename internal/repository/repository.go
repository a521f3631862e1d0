package repository

// Package repository contains data access layer abstractions for the seven
// document collections. Implementations live in subpackages (e.g. postgres)
// and hold strictly persistence operations; lookups that miss return
// sql.ErrNoRows and the service layer translates it.
