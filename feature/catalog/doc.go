// Package catalog loads the item template catalog and derives the typed
// fields the build step attaches to each localized record.
//
// # Components
//
//   - Loader: Load / LoadFile parse the catalog into an Index keyed by ID.
//   - Classifier: Classify maps a `_parent` ID to an ItemType through a static
//     table; unknown parents are ITEM.
//   - Enrichment: Enrich reads Weight, QuestItem and CanSellOnRagfair for
//     every record, ballistics for ammunition and appearance fields for
//     customization entries.
//
// # Ammo boxes
//
// Records whose parent is AmmoPackParent carry no ballistics of their own.
// Enrich follows `_props.StackSlots[0]._props.filters[0].Filter[0]` to the
// cartridge and copies its Caliber, Damage, ArmorDamage and PenetrationPower.
// A broken reference is not an error; the box simply has no ballistics.
package catalog
