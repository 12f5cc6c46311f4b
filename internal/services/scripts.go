package services

import (
	"errors"

	"github.com/kybermartin/python-editor/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetOrCreateUser resolves a user by exact name, creating the row on
// first sight of the name. Concurrent first-time saves race here, so
// creation goes through ON CONFLICT DO NOTHING against the unique name
// index and the loser re-fetches the winner's row.
func GetOrCreateUser(db *gorm.DB, name string) (*models.User, error) {
	var user models.User
	err := db.Where("name = ?", name).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{Name: name}
	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&user)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Lost the race: another request inserted this name first.
		if err := db.Where("name = ?", name).First(&user).Error; err != nil {
			return nil, err
		}
	}
	return &user, nil
}

// SaveScript appends a script under the given user name, creating the
// user if needed. Scripts are append-only; there is no update or delete.
func SaveScript(db *gorm.DB, title, code, userName string) error {
	user, err := GetOrCreateUser(db, userName)
	if err != nil {
		return err
	}

	script := models.Script{
		Title:   title,
		Code:    code,
		OwnerID: user.ID,
	}
	return db.Create(&script).Error
}

// ListScripts returns all scripts owned by the named user. An unknown
// user yields an empty slice, not an error.
func ListScripts(db *gorm.DB, username string) ([]models.Script, error) {
	var user models.User
	err := db.Where("name = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.Script{}, nil
	}
	if err != nil {
		return nil, err
	}

	scripts := []models.Script{}
	if err := db.Where("owner_id = ?", user.ID).Find(&scripts).Error; err != nil {
		return nil, err
	}
	return scripts, nil
}
