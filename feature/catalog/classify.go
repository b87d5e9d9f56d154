package catalog

import "sptid/feature/items/models"

// Reserved parent IDs that drive enrichment.
const (
	// AmmoParent is the parent of individual cartridges.
	AmmoParent = "5485a8684bdc2da71d8b4567"
	// AmmoPackParent is the parent of ammo boxes, whose ballistics live on the
	// cartridge referenced from their first stack slot.
	AmmoPackParent = "543be5cb4bdc2deb348b4568"
	// CustomizationParent is the parent of character customization entries.
	CustomizationParent = "5cc084dd14c02e000b0550a3"
)

var parentTypes = map[string]models.ItemType{
	AmmoParent:     models.TypeAmmo,
	AmmoPackParent: models.TypeAmmo,

	"5447b5cf4bdc2d65278b4567": models.TypeWeapon,
	"5447b5e04bdc2d62278b4567": models.TypeWeapon,
	"5447b5f14bdc2d61278b4567": models.TypeWeapon,
	"5447b5fc4bdc2d87278b4567": models.TypeWeapon,
	"5447b6094bdc2dc3278b4567": models.TypeWeapon,
	"5447b6194bdc2d67278b4567": models.TypeWeapon,
	"5447b6254bdc2dc3278b4568": models.TypeWeapon,
	"5447bed64bdc2d97278b4568": models.TypeWeapon,
	"5447bedf4bdc2d87278b4568": models.TypeWeapon,
	"5447bee84bdc2dc3278b4569": models.TypeWeapon,

	"543be5dd4bdc2deb348b4569": models.TypeCurrency,
	"5448e54d4bdc2dcc718b4568": models.TypeArmor,
	"5a341c4086f77401f2541505": models.TypeHeadwear,
	"5a341c4686f77469e155819e": models.TypeHeadwear,
	"543be5e94bdc2df1348b4568": models.TypeKey,
	"5448f39d4bdc2d0a728b4568": models.TypeMedikit,
	"5448f3a14bdc2d27728b4569": models.TypeDrug,
	"5448f3a64bdc2d60728b456a": models.TypeStimulant,
	"5448e8d04bdc2ddf718b4569": models.TypeFood,
	"5448e8d64bdc2dce718b4568": models.TypeDrink,

	CustomizationParent: models.TypeCustomization,
}

// Classify maps a parent ID to an item type. Unknown parents are TypeItem.
func Classify(parentID string) models.ItemType {
	if t, ok := parentTypes[parentID]; ok {
		return t
	}
	return models.TypeItem
}
