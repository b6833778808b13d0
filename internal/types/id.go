// README: Common identifier type used across modules.
package types

// ID is an opaque unique identifier. Entries and sessions are keyed by it;
// it is always assigned by this service, never by the AI provider.
type ID string
