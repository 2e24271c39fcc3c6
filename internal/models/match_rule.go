package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchRule assigns a category to imported purchases whose description
// matches a glob pattern. Rules are applied in priority order, lowest
// number first; the first matching rule wins.
type MatchRule struct {
	DefaultModel
	UserID     uuid.UUID `gorm:"index"`
	CategoryID uuid.UUID
	Priority   uint   // Lower is applied earlier
	Match      string // Glob pattern matched against the normalized description
}

// BeforeSave trims the pattern.
func (m *MatchRule) BeforeSave(_ *gorm.DB) error {
	m.Match = strings.TrimSpace(m.Match)

	if m.UserID == uuid.Nil {
		return ErrUserIDRequired
	}

	return nil
}

// BeforeCreate verifies that the category belongs to the same user.
func (m *MatchRule) BeforeCreate(tx *gorm.DB) error {
	err := m.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	return checkCategoryOwner(tx, m.CategoryID, m.UserID)
}

// BeforeUpdate re-verifies the category reference when it changes.
func (m *MatchRule) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("CategoryID") {
		return checkCategoryOwner(tx, m.CategoryID, m.UserID)
	}

	return nil
}

// MatchRulesForUser returns all match rules of a user in application order.
func MatchRulesForUser(db *gorm.DB, userID uuid.UUID) ([]MatchRule, error) {
	var rules []MatchRule
	err := db.
		Where("user_id = ?", userID).
		Order("priority ASC, match ASC").
		Find(&rules).Error

	return rules, err
}
