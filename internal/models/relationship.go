package models

// Relationship is a directed parent -> child containment edge between two
// asset codes. The ordered pair is unique; the reverse edge is a distinct row.
type Relationship struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ParentCode string `gorm:"column:parent_asset_code;size:64;not null;uniqueIndex:idx_relationship_pair" json:"parent_asset_code"`
	ChildCode  string `gorm:"column:child_asset_code;size:64;not null;uniqueIndex:idx_relationship_pair" json:"child_asset_code"`

	Parent *Asset `gorm:"foreignKey:ParentCode;references:Code" json:"-"`
	Child  *Asset `gorm:"foreignKey:ChildCode;references:Code" json:"-"`
}

func (Relationship) TableName() string { return "asset_relationships" }
