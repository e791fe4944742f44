// Package driver provides the Driver entity and its Availability state.
//
// Drivers are registered with a caller chosen id, report their availability
// (offline, online, busy) and optionally their location. Dispatch selects among online
// drivers only. Assigning a booking does not change a driver's availability and cash
// capacity is not checked, so one driver may hold several bookings at once.
package driver
