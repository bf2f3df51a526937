package repository

import (
	"regexp"

	"catalog-api/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// buildProductFilter translates the optional listing criteria into a store
// query document. Absent criteria contribute nothing; an empty document
// matches every product.
func buildProductFilter(filter model.ProductFilter) bson.M {
	query := bson.M{}

	if filter.Name != "" {
		// Case-insensitive substring match on the name field. The user's
		// text is escaped so regex metacharacters match literally.
		query["name"] = primitive.Regex{
			Pattern: regexp.QuoteMeta(filter.Name),
			Options: "i",
		}
	}

	if filter.Size != "" {
		// Exact, case-sensitive match against any entry of the sizes array.
		query["sizes.size"] = filter.Size
	}

	return query
}
