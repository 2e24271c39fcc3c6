package importer

import (
	"fmt"

	"github.com/spendlog/backend/internal/models"

	"gorm.io/gorm"
)

// Commit persists a staged batch. Implicitly created categories and
// all accepted purchases are inserted in a single transaction: either
// everything becomes visible together or, on any error, nothing is
// persisted at all.
//
// Rejected rows are never inserted. The created purchases are
// returned in row order.
func Commit(db *gorm.DB, batch *Batch) ([]models.Purchase, error) {
	purchases := make([]models.Purchase, 0, len(batch.Purchases))

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, category := range batch.newCategories {
			if err := tx.Create(category).Error; err != nil {
				return fmt.Errorf("creating category %q: %w", category.Name, err)
			}
		}

		for _, preview := range batch.Purchases {
			purchase := preview.Purchase
			if preview.newCategory != nil {
				purchase.CategoryID = preview.newCategory.ID
			}

			if err := tx.Create(&purchase).Error; err != nil {
				return fmt.Errorf("creating purchase from row %d: %w", preview.Row, err)
			}

			purchases = append(purchases, purchase)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return purchases, nil
}
