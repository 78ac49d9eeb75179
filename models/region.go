package models

import "time"

// Region kinds form a fixed three-level hierarchy.
const (
	RegionCountry  = "country"
	RegionProvince = "province"
	RegionCity     = "city"
)

// Region is one node of the country/province/city reference hierarchy.
// ParentID is empty for countries.
type Region struct {
	ID        string    `bson:"id" json:"id"`
	Kind      string    `bson:"kind" json:"kind"`
	Name      string    `bson:"name" json:"name"`
	ParentID  string    `bson:"parentId,omitempty" json:"parentId,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateRegionRequest defines the payload for adding a region node.
type CreateRegionRequest struct {
	Kind     string `json:"kind" binding:"required,oneof=country province city"`
	Name     string `json:"name" binding:"required"`
	ParentID string `json:"parentId"`
}
