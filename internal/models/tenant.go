package models

import "gorm.io/gorm"

// Tenant is one nutrition clinic. Every domain row carries the
// tenant id and repositories scope every query by it.
type Tenant struct {
	gorm.Model
	Name   string `gorm:"not null" json:"name"`
	Slug   string `gorm:"uniqueIndex" json:"slug"`
	Active bool   `gorm:"default:true" json:"active"`
}

type User struct {
	gorm.Model
	TenantID uint   `gorm:"index;not null" json:"tenant_id"`
	Tenant   Tenant `gorm:"foreignKey:TenantID" json:"-"`
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"default:nutritionist" json:"role"`
}
