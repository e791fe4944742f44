// Package services provides domain services that span the booking and driver aggregates.
//
// The package includes:
//   - BookingDispatcher: binds a pending booking to one online driver
//   - AssignmentStrategy: pluggable driver selection (FirstOnlineStrategy, the default, and
//     NearestDriverStrategy, which ranks by great-circle distance to the pickup)
//   - TransitionPolicy: decides which driver reported statuses are accepted relative to the
//     current one (ForwardOnlyPolicy, the default, and LenientPolicy)
//
// Services are stateless; atomicity of check-then-assign is provided by the unit of work the
// application layer wraps around them.
package services
