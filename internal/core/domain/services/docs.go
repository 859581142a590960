// Package services contains stateless domain services that implement
// business logic spanning inputs that do not yet belong to an aggregate.
package services
