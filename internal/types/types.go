// internal/types/types.go
package types

// EntityID identifies an entity across component maps.
type EntityID uint64
