// Package domain contains the core business entities for Marai:
// corpus documents, candidate answers, and the sentinel errors
// shared across services and adapters.
package domain
