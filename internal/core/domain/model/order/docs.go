// Package order contains the order aggregate: the aggregate root Order, the
// Line entities it exclusively owns, and the Status lifecycle state machine.
//
// An order and its lines are created together and persisted atomically.
// After creation the only permitted mutation is a status transition; the
// line set and the total price are immutable unless the order is cancelled,
// in which case the cancellation path removes the lines and restores stock.
package order
