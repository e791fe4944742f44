// Package booking provides the Booking aggregate of the dispatch system: one delivery job
// with its pickup and drop points, cash-on-delivery amount, and lifecycle status.
//
// The package includes:
//   - Booking: the aggregate root, created Pending and mutated only by dispatch and by driver
//     status reports
//   - Status: the lifecycle PENDING -> ASSIGNED -> EN_ROUTE_PICKUP -> PICKED_UP ->
//     EN_ROUTE_DROP -> DELIVERED with its wire names
//   - ServiceTier: standard, express (default) or tuktuk
//
// Key business rules:
//   - Booking ids are issued monotonically as "BKG<n>"
//   - Only a Pending booking can be assigned, and only once
//   - Drivers may only report the four post-assignment stages
//   - A Pending booking has no assignment; every later status has exactly one
package booking
