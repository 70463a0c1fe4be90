package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// nameSearchFilters applies the name and search meta filters for budgets.
// An explicitly empty name filters for budgets without a name.
func nameSearchFilters(db, query *gorm.DB, setFields []string, name, search string) *gorm.DB {
	if name != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", name))
	} else if slices.Contains(setFields, "Name") {
		query = query.Where("name = ''")
	}

	if search != "" {
		query = query.Where(
			db.Where("name LIKE ?", fmt.Sprintf("%%%s%%", search)).Or(
				db.Where("category LIKE ?", fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}
