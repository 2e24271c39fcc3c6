package importer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spendlog/backend/internal/models"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// Stage validates parsed rows against the user's existing resources
// and builds a Batch.
//
// Categories are resolved case-insensitively. A category name that
// does not exist yet is staged for implicit creation. Rows without a
// category are run through the user's match rules and fall back to
// the default category.
//
// Duplicate detection compares date, amount and the normalized
// description against existing purchases of the user and against
// earlier rows of the same batch. This is a heuristic: legitimate
// repeated charges on the same day are flagged, too.
//
// Validation order matches input row order, so reported row numbers
// are stable. Rejections passed in from the parser are merged into
// the result.
func Stage(db *gorm.DB, userID uuid.UUID, rows []Row, parseRejections []Rejection) (*Batch, error) {
	batch := &Batch{
		UserID:        userID,
		Purchases:     make([]PurchasePreview, 0, len(rows)),
		NewCategories: make([]string, 0),
		Rejected:      append(make([]Rejection, 0, len(parseRejections)), parseRejections...),
	}

	categories, err := existingCategories(db, userID)
	if err != nil {
		return nil, err
	}

	rules, err := models.MatchRulesForUser(db, userID)
	if err != nil {
		return nil, err
	}

	existing, err := existingHashes(db, userID, rows)
	if err != nil {
		return nil, err
	}

	staged := make(map[string]*models.Category)
	seen := make(map[string]int)

	for _, row := range rows {
		hash := models.PurchaseImportHash(row.Date, row.Amount, row.Description)

		if existing[hash] {
			batch.Rejected = append(batch.Rejected, Rejection{
				Row:    row.Row,
				Status: StatusRejectedDuplicate,
				Reason: fmt.Sprintf("a purchase with the same date, amount and description already exists for %s", row.Date),
			})
			continue
		}

		if first, ok := seen[hash]; ok {
			batch.Rejected = append(batch.Rejected, Rejection{
				Row:    row.Row,
				Status: StatusRejectedDuplicate,
				Reason: fmt.Sprintf("duplicate of row %d", first),
			})
			continue
		}
		seen[hash] = row.Row

		preview := PurchasePreview{
			Row: row.Row,
			Purchase: models.Purchase{
				UserID:      userID,
				Date:        row.Date,
				Amount:      row.Amount,
				Description: row.Description,
			},
		}

		name := row.Category
		if name == "" {
			name = matchCategory(rules, categories, row.Description)
		}
		if name == "" {
			name = models.DefaultCategoryName
		}

		resolveCategory(batch, categories, staged, &preview, name)
		batch.Purchases = append(batch.Purchases, preview)
	}

	sort.SliceStable(batch.Rejected, func(i, j int) bool {
		return batch.Rejected[i].Row < batch.Rejected[j].Row
	})

	return batch, nil
}

// resolveCategory points a preview at an existing category or stages a
// new one.
func resolveCategory(batch *Batch, categories map[string]models.Category, staged map[string]*models.Category, preview *PurchasePreview, name string) {
	key := models.NormalizeDescription(name)

	if category, ok := categories[key]; ok {
		preview.CategoryName = category.Name
		preview.Purchase.CategoryID = category.ID
		return
	}

	category, ok := staged[key]
	if !ok {
		category = &models.Category{UserID: batch.UserID, Name: name}
		staged[key] = category
		batch.newCategories = append(batch.newCategories, category)
		batch.NewCategories = append(batch.NewCategories, name)
	}

	preview.CategoryName = category.Name
	preview.newCategory = category
}

// matchCategory applies the user's match rules to a description and
// returns the name of the first matching rule's category. Patterns
// match case-insensitively against the normalized description.
func matchCategory(rules []models.MatchRule, categories map[string]models.Category, description string) string {
	normalized := models.NormalizeDescription(description)

	for _, rule := range rules {
		if glob.Glob(strings.ToLower(rule.Match), normalized) {
			for _, category := range categories {
				if category.ID == rule.CategoryID {
					return category.Name
				}
			}
		}
	}

	return ""
}

// existingCategories loads all categories of a user, keyed by their
// case-folded name.
func existingCategories(db *gorm.DB, userID uuid.UUID) (map[string]models.Category, error) {
	var all []models.Category
	err := db.Where("user_id = ?", userID).Find(&all).Error
	if err != nil {
		return nil, err
	}

	categories := make(map[string]models.Category, len(all))
	for _, category := range all {
		categories[models.NormalizeDescription(category.Name)] = category
	}

	return categories, nil
}

// existingHashes returns the import hashes of the user's purchases
// that collide with any row of the batch.
func existingHashes(db *gorm.DB, userID uuid.UUID, rows []Row) (map[string]bool, error) {
	if len(rows) == 0 {
		return map[string]bool{}, nil
	}

	hashes := make([]string, 0, len(rows))
	for _, row := range rows {
		hashes = append(hashes, models.PurchaseImportHash(row.Date, row.Amount, row.Description))
	}

	var colliding []string
	err := db.Model(&models.Purchase{}).
		Where("user_id = ?", userID).
		Where("import_hash IN ?", hashes).
		Pluck("import_hash", &colliding).Error
	if err != nil {
		return nil, err
	}

	existing := make(map[string]bool, len(colliding))
	for _, hash := range colliding {
		existing[hash] = true
	}

	return existing, nil
}
