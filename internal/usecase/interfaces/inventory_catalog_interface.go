package interfaces

import (
	"context"

	"jobcard_service/internal/domain/entities"
)

// IInventoryCatalog abstracts the read-only inventory catalog collaborator.
//
// LookupItem returns the zero CatalogItem (empty SKU) when the item does not
// exist. This service never checks or decrements stock; AvailableQty is
// informational.
type IInventoryCatalog interface {
	LookupItem(ctx context.Context, sku string) (entities.CatalogItem, error)
}
