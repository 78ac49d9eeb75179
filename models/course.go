package models

import "time"

// Course is a golf course, the scoping boundary for tee-time inventory.
type Course struct {
	ID         string    `bson:"id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	CountryID  string    `bson:"countryId" json:"countryId"`
	ProvinceID string    `bson:"provinceId" json:"provinceId"`
	CityID     string    `bson:"cityId" json:"cityId"`
	Address    string    `bson:"address,omitempty" json:"address,omitempty"`
	Phone      string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Holes      int       `bson:"holes,omitempty" json:"holes,omitempty"`
	Active     bool      `bson:"active" json:"active"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateCourseRequest defines the payload for creating a course.
type CreateCourseRequest struct {
	Name       string `json:"name" binding:"required"`
	CountryID  string `json:"countryId" binding:"required"`
	ProvinceID string `json:"provinceId" binding:"required"`
	CityID     string `json:"cityId" binding:"required"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Holes      int    `json:"holes"`
	Active     *bool  `json:"active"`
}

// UpdateCourseRequest carries the mutable course fields.
type UpdateCourseRequest struct {
	Name       *string `json:"name"`
	CountryID  *string `json:"countryId"`
	ProvinceID *string `json:"provinceId"`
	CityID     *string `json:"cityId"`
	Address    *string `json:"address"`
	Phone      *string `json:"phone"`
	Holes      *int    `json:"holes"`
	Active     *bool   `json:"active"`
}
