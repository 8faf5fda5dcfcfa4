// Package store contains the Store and Item aggregates.
//
// Items are separate aggregates so that checkout can lock only the rows it decrements.
// Stock rules live on Item: Decrement fails with errs.ErrOutOfStock and leaves stock unchanged,
// IsOutOfStock means zero units and IsLowStock means 0 < stock <= threshold, where the threshold
// is configured per store (DefaultLowStockThreshold until the seller changes it).
package store
