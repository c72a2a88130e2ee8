package models

import "time"

type Asset struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"column:asset_code;size:64;not null;uniqueIndex" json:"asset_code"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Type      string    `gorm:"size:64;not null" json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

func (Asset) TableName() string { return "assets" }

// AssetOption is the projection used to populate selection dropdowns.
type AssetOption struct {
	Code string `gorm:"column:asset_code" json:"asset_code"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// AssetDetail is an asset together with its immediate relationship
// neighborhood.
type AssetDetail struct {
	Asset
	Children []Asset `json:"children"`
	Parents  []Asset `json:"parents"`
}
