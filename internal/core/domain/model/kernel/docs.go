// Package kernel holds the value objects shared by every aggregate of the marketplace:
//   - UUID: identifiers for users, stores, items, orders, reviews and notifications
//   - GeoPoint: latitude/longitude with linear interpolation and haversine distance
//   - Rating: running average of 1 to 5 star review scores
//
// Value objects are immutable. Those that have an invalid zero value embed a
// guard.ConstructorGuard and expose Validate.
package kernel
