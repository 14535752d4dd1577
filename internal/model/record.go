package model

import "time"

// AllocationRecord is a single point-allocation event fetched from the
// upstream API. HolderAddress is normalized to lowercase by the collector;
// everything downstream keys on the lowercased form.
type AllocationRecord struct {
	HolderAddress string
	Allocation    float64
	PointsID      string
	TokenAddress  string
	Timestamp     time.Time
}
