package models

import "time"

// QuotationItem is one line of an ad-hoc quotation.
type QuotationItem struct {
	Description string `bson:"description" json:"description"`
	Quantity    int    `bson:"quantity" json:"quantity"`
	UnitPrice   int    `bson:"unitPrice" json:"unitPrice"`
}

// Quotation is an ad-hoc priced document prepared for a customer. It carries
// no payment state; issuing and settling it happen outside this system.
type Quotation struct {
	ID           string          `bson:"id" json:"id"`
	CustomerName string          `bson:"customerName" json:"customerName"`
	CourseID     string          `bson:"courseId,omitempty" json:"courseId,omitempty"`
	CourseName   string          `bson:"courseName,omitempty" json:"courseName,omitempty"`
	PlayDate     string          `bson:"playDate,omitempty" json:"playDate,omitempty"` // "YYYY-MM-DD"
	Items        []QuotationItem `bson:"items" json:"items"`
	Total        int             `bson:"total" json:"total"`
	Note         string          `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt    time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time       `bson:"updatedAt" json:"updatedAt"`
	CreatedBy    *string         `bson:"createdBy" json:"createdBy"`
}

// CreateQuotationRequest defines the payload for preparing a quotation.
type CreateQuotationRequest struct {
	CustomerName string          `json:"customerName" binding:"required"`
	CourseID     string          `json:"courseId"`
	PlayDate     string          `json:"playDate"`
	Items        []QuotationItem `json:"items" binding:"required,min=1"`
	Note         string          `json:"note"`
}
