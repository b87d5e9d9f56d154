package items

import (
	"fmt"
	"strconv"
	"strings"

	"sptid/feature/items/models"
)

// Describe renders rec as plain text. Labels go through translate so they
// follow the active language.
func Describe(rec models.ItemRecord, translate func(string) string) string {
	var sb strings.Builder

	sb.WriteString(rec.Name)
	if rec.ShortName != "" && rec.ShortName != rec.Name {
		fmt.Fprintf(&sb, " [%s]", rec.ShortName)
	}
	sb.WriteString("\n")

	line := func(label string, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		fmt.Fprintf(&sb, "%s %s\n", translate(label), value)
	}

	line("Type:", rec.TypeName())
	if rec.Parent != nil && rec.ParentID != nil {
		line("Parent:", *rec.Parent+" - "+linked(*rec.ParentID, rec.ParentDetailLink))
	}

	switch rec.TypeName() {
	case string(models.TypeAmmo):
		line("Caliber:", strVal(rec.Caliber))
		line("Damage:", intVal(rec.Damage))
		line("Armor Damage:", intVal(rec.ArmorDamage))
		line("Penetration Power:", intVal(rec.PenetrationPower))
	case string(models.TypeCustomization):
		line("Description:", strVal(rec.Description))
		line("Body Part:", strVal(rec.BodyPart))
		line("Sides:", strVal(rec.Sides))
		line("Integrated Armor:", boolVal(rec.IntegratedArmorVest))
		line("Available By Default:", boolVal(rec.AvailableAsDefault))
		line("Prefab Path:", strVal(rec.PrefabPath))
	case string(models.TypeLocation):
		line("Map ID:", strVal(rec.MapID))
		line("Airdrop Chance:", floatVal(rec.AirdropChance))
		line("Time Limit:", intVal(rec.EscapeTimeLimit))
		line("Insurance:", boolVal(rec.Insurance))
		line("Boss Spawns:", strVal(rec.BossSpawns))
	case string(models.TypeQuest):
		if rec.Trader != nil && rec.TraderID != nil {
			line("Trader:", *rec.Trader+" - "+linked(*rec.TraderID, rec.TraderLink))
		} else {
			line("Trader ID:", strVal(rec.TraderID))
		}
		line("Quest Type:", strVal(rec.QuestType))
	}

	line("Weight:", floatVal(rec.Weight))
	line("Flea Blacklisted:", boolVal(rec.FleaBlacklisted))
	line("Unlocked By Default:", boolVal(rec.UnlockedByDefault))

	if rec.DetailLink != nil && *rec.DetailLink != "" {
		line("Full Details:", *rec.DetailLink)
	}
	return sb.String()
}

func linked(text string, link *string) string {
	if link == nil || *link == "" {
		return text
	}
	return fmt.Sprintf("%s (%s)", text, *link)
}

func strVal(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func intVal(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatVal(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func boolVal(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}
