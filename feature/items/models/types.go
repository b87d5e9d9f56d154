package models

import "strings"

// ItemType is the semantic category of an object ID.
type ItemType string

const (
	TypeItem          ItemType = "ITEM"
	TypeAmmo          ItemType = "AMMO"
	TypeWeapon        ItemType = "WEAPON"
	TypeArmor         ItemType = "ARMOR"
	TypeHeadwear      ItemType = "HEADWEAR"
	TypeKey           ItemType = "KEY"
	TypeMedikit       ItemType = "MEDIKIT"
	TypeDrug          ItemType = "DRUG"
	TypeStimulant     ItemType = "STIMULANT"
	TypeFood          ItemType = "FOOD"
	TypeDrink         ItemType = "DRINK"
	TypeCurrency      ItemType = "CURRENCY"
	TypeTrader        ItemType = "TRADER"
	TypeCustomization ItemType = "CUSTOMIZATION"
	TypeLocation      ItemType = "LOCATION"
	TypeQuest         ItemType = "QUEST"
)

// ItemTypes lists every known type in declaration order.
var ItemTypes = []ItemType{
	TypeItem, TypeAmmo, TypeWeapon, TypeArmor, TypeHeadwear, TypeKey,
	TypeMedikit, TypeDrug, TypeStimulant, TypeFood, TypeDrink, TypeCurrency,
	TypeTrader, TypeCustomization, TypeLocation, TypeQuest,
}

// IsValid checks if t is one of ItemTypes.
func (t ItemType) IsValid() bool {
	for _, known := range ItemTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseItemType folds a user-authored type name into an ItemType.
// Matching is case-insensitive; an unrecognised name becomes TypeItem and an
// empty name is absent (nil).
func ParseItemType(s string) *ItemType {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t := ItemType(strings.ToUpper(s))
	if !t.IsValid() {
		t = TypeItem
	}
	return &t
}
