package jupiter

import (
	"fmt"

	"github.com/kbukum/swapkit/catalog"
	"github.com/kbukum/swapkit/errors"
)

// Adapter family names.
const (
	FamilyUltra     = "ultra"
	FamilySwap      = "swap"
	FamilyTrigger   = "trigger"
	FamilyRecurring = "recurring"
	FamilyPrice     = "price"
	FamilyToken     = "token"
)

// Base URLs for the two access tiers. The lite tier serves unauthenticated
// traffic at lower rate limits.
const (
	DefaultBaseURL     = "https://api.jup.ag"
	DefaultLiteBaseURL = "https://lite-api.jup.ag"
)

var catalogs = map[string]*catalog.Catalog{
	FamilyUltra:     ultraCatalog,
	FamilySwap:      swapCatalog,
	FamilyTrigger:   triggerCatalog,
	FamilyRecurring: recurringCatalog,
	FamilyPrice:     priceCatalog,
	FamilyToken:     tokenCatalog,
}

// Families returns the known adapter family names in a fixed order.
func Families() []string {
	return []string{FamilyUltra, FamilySwap, FamilyTrigger, FamilyRecurring, FamilyPrice, FamilyToken}
}

// FamilyCatalog returns the operation catalog for the named family.
func FamilyCatalog(family string) (*catalog.Catalog, error) {
	c, ok := catalogs[family]
	if !ok {
		return nil, errors.InvalidConfig(fmt.Sprintf("jupiter: unknown family %q", family))
	}
	return c, nil
}
