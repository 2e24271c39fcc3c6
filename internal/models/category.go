package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCategoryName is the category that purchases without an
// explicit category end up in.
const DefaultCategoryName = "Uncategorized"

// Category represents a category of purchases.
type Category struct {
	DefaultModel
	UserID uuid.UUID `gorm:"uniqueIndex:category_user_name"` // ID of the user the category belongs to
	Name   string    `gorm:"uniqueIndex:category_user_name"` // Name of the category
	Note   string    // Notes about the category
}

// BeforeSave trims whitespace from the name and ensures the category
// is assigned to a user.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	if c.UserID == uuid.Nil {
		return ErrUserIDRequired
	}

	return nil
}

// CategoryByName returns the category with a name matching
// case-insensitively, for the given user.
func CategoryByName(db *gorm.DB, userID uuid.UUID, name string) (Category, error) {
	var category Category
	err := db.
		Where("user_id = ?", userID).
		Where("name = ? COLLATE NOCASE", strings.TrimSpace(name)).
		First(&category).Error

	return category, err
}

// BeforeDelete blocks the deletion of categories that still have
// purchases referencing them.
func (c *Category) BeforeDelete(tx *gorm.DB) error {
	var count int64
	err := tx.Model(&Purchase{}).Where("category_id = ?", c.ID).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrCategoryReferenced
	}

	return nil
}

// checkCategoryOwner verifies that a category exists and belongs to
// the given user. Used by resources referencing a category.
func checkCategoryOwner(tx *gorm.DB, categoryID, userID uuid.UUID) error {
	var category Category
	err := tx.First(&category, "id = ?", categoryID).Error
	if err != nil {
		return err
	}

	if category.UserID != userID {
		return ErrCategoryNotOwned
	}

	return nil
}
