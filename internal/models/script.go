package models

// Script is a persisted code snippet. Duplicate titles are allowed; the
// owner is set at creation and never changes.
type Script struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `json:"title"`
	Code  string `gorm:"type:text" json:"code"`

	OwnerID uint `gorm:"index;not null" json:"ownerId"`
	Owner   User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (Script) TableName() string {
	return "scripts"
}
