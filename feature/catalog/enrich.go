package catalog

import (
	"sptid/core/utils"
	"sptid/feature/items/models"

	"github.com/tidwall/gjson"
)

// packAmmoPath addresses the first candidate cartridge of an ammo box.
const packAmmoPath = "_props.StackSlots.0._props.filters.0.Filter.0"

// Enrichment is the set of catalog-derived fields for one record.
// Nil fields were absent or null in the catalog.
type Enrichment struct {
	Type            *models.ItemType
	Weight          *float64
	QuestItem       *bool
	FleaBlacklisted *bool

	Caliber          *string
	Damage           *int
	ArmorDamage      *int
	PenetrationPower *int

	Description         *string
	BodyPart            *string
	Sides               *string
	IntegratedArmorVest *bool
	AvailableAsDefault  *bool
}

// Enrich extracts the common and type specific fields of entry. Ammo boxes
// borrow their ballistics from the cartridge referenced in idx; if any hop of
// that reference is missing the box keeps its common fields only.
func Enrich(entry *Entry, idx *Index) Enrichment {
	var e Enrichment
	if entry == nil || !entry.HasProps {
		return e
	}
	props := entry.Props

	e.Weight = utils.Float(props["Weight"])
	e.QuestItem = utils.Bool(props["QuestItem"])
	if canSell := utils.Bool(props["CanSellOnRagfair"]); canSell != nil {
		blacklisted := !*canSell
		e.FleaBlacklisted = &blacklisted
	}

	if entry.Parent == "" {
		return e
	}
	itemType := Classify(entry.Parent)
	e.Type = &itemType

	switch itemType {
	case models.TypeAmmo:
		if entry.Parent == AmmoPackParent {
			if ammo, ok := packAmmo(entry, idx); ok {
				e.applyAmmo(ammo.Props)
			}
		} else {
			e.applyAmmo(props)
		}
	case models.TypeCustomization:
		e.applyCustomization(props)
	}
	return e
}

// packAmmo follows an ammo box's first stack slot to the cartridge entry.
func packAmmo(entry *Entry, idx *Index) (*Entry, bool) {
	ref := gjson.GetBytes(entry.Raw, packAmmoPath)
	if ref.Type != gjson.String || ref.Str == "" {
		return nil, false
	}
	ammo, ok := idx.Get(ref.Str)
	if !ok || !ammo.HasProps {
		return nil, false
	}
	return ammo, true
}

func (e *Enrichment) applyAmmo(props map[string]any) {
	e.Caliber = utils.String(props["Caliber"])
	e.Damage = utils.Int(props["Damage"])
	e.ArmorDamage = utils.Int(props["ArmorDamage"])
	e.PenetrationPower = utils.Int(props["PenetrationPower"])
}

func (e *Enrichment) applyCustomization(props map[string]any) {
	e.Description = utils.String(props["Description"])
	e.BodyPart = utils.String(props["BodyPart"])
	e.Sides = utils.String(props["Side"])
	e.IntegratedArmorVest = utils.Bool(props["IntegratedArmorVest"])
	e.AvailableAsDefault = utils.Bool(props["AvailableAsDefault"])
}

// ApplyTo copies every present field onto r. Name and ShortName are never
// touched.
func (e Enrichment) ApplyTo(r *models.ItemRecord) {
	setIf(&r.Type, e.Type)
	setIf(&r.Weight, e.Weight)
	setIf(&r.QuestItem, e.QuestItem)
	setIf(&r.FleaBlacklisted, e.FleaBlacklisted)
	setIf(&r.Caliber, e.Caliber)
	setIf(&r.Damage, e.Damage)
	setIf(&r.ArmorDamage, e.ArmorDamage)
	setIf(&r.PenetrationPower, e.PenetrationPower)
	setIf(&r.Description, e.Description)
	setIf(&r.BodyPart, e.BodyPart)
	setIf(&r.Sides, e.Sides)
	setIf(&r.IntegratedArmorVest, e.IntegratedArmorVest)
	setIf(&r.AvailableAsDefault, e.AvailableAsDefault)
}

func setIf[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}
