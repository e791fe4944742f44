// Package kernel provides the value objects shared by every aggregate of the dispatch
// domain.
//
// The package includes:
//   - Location: an immutable latitude/longitude pair with the "lat,lng" text form used by the
//     public API and a great-circle distance for proximity based driver selection
//   - UUID: an identifier for lifecycle events
//
// Both types reject their zero value through Validate, so a value that did not pass through
// a constructor can never reach the domain model.
package kernel
