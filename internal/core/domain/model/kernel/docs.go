// Package kernel contains shared value objects used across the ordering
// domain model: entity identifiers and monetary amounts. All types are
// immutable and must be created through their constructor functions.
package kernel
