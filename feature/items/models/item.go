package models

import (
	"regexp"
	"strings"
)

// IDLength is the length of an object ID.
const IDLength = 24

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// IsObjectID checks if s is a 24 character hexadecimal ID.
func IsObjectID(s string) bool {
	return objectIDPattern.MatchString(s)
}

// ItemRecord is the resolved description of one object ID.
// Every pointer field is optional: nil means unknown, which is distinct
// from false or zero.
type ItemRecord struct {
	Name      string    `json:"Name"`
	ShortName string    `json:"ShortName"`
	Type      *ItemType `json:"Type,omitempty"`

	DetailLink       *string `json:"detailLink,omitempty"`
	Parent           *string `json:"parent,omitempty"`
	ParentID         *string `json:"parentID,omitempty"`
	ParentDetailLink *string `json:"parentDetailLink,omitempty"`

	FleaBlacklisted *bool    `json:"FleaBlacklisted,omitempty"`
	QuestItem       *bool    `json:"QuestItem,omitempty"`
	Weight          *float64 `json:"Weight,omitempty"`

	// Ammo
	Caliber          *string `json:"Caliber,omitempty"`
	Damage           *int    `json:"Damage,omitempty"`
	ArmorDamage      *int    `json:"ArmorDamage,omitempty"`
	PenetrationPower *int    `json:"PenetrationPower,omitempty"`

	// Traders
	Currency          *string `json:"currency,omitempty"`
	UnlockedByDefault *bool   `json:"unlockedByDefault,omitempty"`

	// Customization
	Description         *string `json:"Description,omitempty"`
	BodyPart            *string `json:"BodyPart,omitempty"`
	Sides               *string `json:"Sides,omitempty"`
	IntegratedArmorVest *bool   `json:"IntegratedArmorVest,omitempty"`
	AvailableAsDefault  *bool   `json:"AvailableAsDefault,omitempty"`
	PrefabPath          *string `json:"prefabPath,omitempty"`

	// Locations
	MapID           *string  `json:"id,omitempty"`
	AirdropChance   *float64 `json:"airdropChance,omitempty"`
	EscapeTimeLimit *int     `json:"escapeTimeLimit,omitempty"`
	Insurance       *bool    `json:"insurance,omitempty"`
	BossSpawns      *string  `json:"bossSpawns,omitempty"`

	// Quests
	Trader     *string `json:"trader,omitempty"`
	TraderID   *string `json:"traderId,omitempty"`
	TraderLink *string `json:"traderLink,omitempty"`
	QuestType  *string `json:"questType,omitempty"`
}

// HasDisplayName checks if the record carries a non-blank Name or ShortName.
func (r ItemRecord) HasDisplayName() bool {
	return strings.TrimSpace(r.Name) != "" || strings.TrimSpace(r.ShortName) != ""
}

// TypeName returns the type as a string, or "" when unknown.
func (r ItemRecord) TypeName() string {
	if r.Type == nil {
		return ""
	}
	return string(*r.Type)
}

// Table maps object IDs to records. Published tables are never mutated.
type Table map[string]ItemRecord
