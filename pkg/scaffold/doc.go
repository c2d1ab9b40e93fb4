// Package scaffold derives a replicating surface's seed container from an
// OpenAPI operation: the operation's request body schema is mapped
// property-by-property onto form controls, producing the single literal
// instance the replication engine captures at setup time.
package scaffold
