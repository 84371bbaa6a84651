// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todolist, domain/todoitem).
// This root package holds sentinel errors, validation types and the Optional
// carrier used by partial updates.
package domain
