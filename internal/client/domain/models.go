package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// ClientStatus tracks a record from first contact through the client
// lifecycle. New submissions start at "new"; "active"/"inactive" mirror the
// package window once one is assigned.
type ClientStatus string

const (
	ClientStatusNew       ClientStatus = "new"
	ClientStatusRead      ClientStatus = "read"
	ClientStatusResponded ClientStatus = "responded"
	ClientStatusActive    ClientStatus = "active"
	ClientStatusInactive  ClientStatus = "inactive"
)

// ServiceType is the agency offering a client asked about.
type ServiceType string

const (
	ServiceWebsite  ServiceType = "website"
	ServiceUndangan ServiceType = "undangan"
	ServiceDesain   ServiceType = "desain"
	ServiceKatalog  ServiceType = "katalog"
)

// BudgetBands lists the selectable budget ranges on the contact form.
var BudgetBands = []string{"< 1jt", "1-3jt", "3-5jt", "5-10jt", "> 10jt"}

// Client is a contact-form submission and, once work starts, the client
// record itself: cpanel account details plus the hosting-package window the
// status computation is derived from.
type Client struct {
	ID             snowflake.ID `gorm:"primaryKey"`
	Name           string       `gorm:"type:text;not null"`
	Email          string       `gorm:"type:text;not null;index"`
	Company        string       `gorm:"type:text"`
	Phone          string       `gorm:"type:text"`
	Message        string       `gorm:"type:text"`
	Service        ServiceType  `gorm:"type:text"`
	Budget         string       `gorm:"type:text"`
	Status         ClientStatus `gorm:"type:text;not null;default:'new';index"`
	CPanelURL      string       `gorm:"column:cpanel_url;type:text"`
	CPanelUsername string       `gorm:"column:cpanel_username;type:text"`
	CPanelPassword string       `gorm:"column:cpanel_password;type:text"`

	// Package window inputs. Both nullable: absence means no package
	// assigned, and every derived field becomes unknown.
	PackageStartDate      *time.Time `gorm:"column:package_start_date"`
	PackageDurationMonths *int       `gorm:"column:package_duration_months"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Client) TableName() string { return "clients" }

func ValidStatus(s ClientStatus) bool {
	switch s {
	case ClientStatusNew, ClientStatusRead, ClientStatusResponded, ClientStatusActive, ClientStatusInactive:
		return true
	}
	return false
}

func ValidService(s ServiceType) bool {
	switch s {
	case "", ServiceWebsite, ServiceUndangan, ServiceDesain, ServiceKatalog:
		return true
	}
	return false
}
