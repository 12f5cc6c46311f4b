package models

// User is a bare named identity used only to group scripts. There are no
// credentials; the name is the natural key.
type User struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Scripts []Script `gorm:"foreignKey:OwnerID" json:"scripts,omitempty"`
}

func (User) TableName() string {
	return "users"
}
