package filter

import "github.com/soft-boni/admin-panel-venue-proximity/internal/domain"

// Categories resolves category and subcategory ids against the category
// table. Lookups scan the table in order; a miss echoes the raw id.
type Categories []domain.Category

func (c Categories) find(categoryID string) (domain.Category, bool) {
	for _, cat := range c {
		if cat.ID == categoryID {
			return cat, true
		}
	}
	return domain.Category{}, false
}

func (c Categories) Name(categoryID string) string {
	if cat, ok := c.find(categoryID); ok {
		return cat.Name
	}
	return categoryID
}

func (c Categories) SubcategoryName(categoryID, subcategoryID string) string {
	cat, ok := c.find(categoryID)
	if !ok {
		return subcategoryID
	}

	for _, sub := range cat.Subcategories {
		if sub.ID == subcategoryID {
			return sub.Name
		}
	}

	return subcategoryID
}

// Subcategories lists the subcategories of a category in table order, or nil
// if the category is unknown.
func (c Categories) Subcategories(categoryID string) []domain.Subcategory {
	cat, ok := c.find(categoryID)
	if !ok {
		return nil
	}
	return cat.Subcategories
}

// Has reports whether subcategoryID belongs to categoryID.
func (c Categories) Has(categoryID, subcategoryID string) bool {
	for _, sub := range c.Subcategories(categoryID) {
		if sub.ID == subcategoryID {
			return true
		}
	}
	return false
}
