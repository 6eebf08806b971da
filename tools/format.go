package tools

import (
	"fmt"
	"strconv"
	"strings"
)

// lootBand maps the top of a d100 range to an item quality.
type lootBand struct {
	max     int
	quality string
}

// lootTiers holds the d100 quality bands for each rarity tier. Bands are
// checked in order; a roll lands in the first band whose max it does not
// exceed.
var lootTiers = map[string][]lootBand{
	"common": {
		{60, "Poor quality item"},
		{90, "Average quality item"},
		{100, "Good quality item"},
	},
	"uncommon": {
		{50, "Average quality item"},
		{85, "Good quality item"},
		{100, "Exceptional item! ✨"},
	},
	"rare": {
		{40, "Good quality item"},
		{80, "Exceptional item! ✨"},
		{100, "Masterwork item! ⭐"},
	},
	"legendary": {
		{30, "Exceptional item! ✨"},
		{70, "Masterwork item! ⭐"},
		{100, "Legendary artifact! 🏆"},
	},
}

// lootQuality resolves a d100 roll against a tier's quality bands.
func lootQuality(bands []lootBand, roll int) string {
	for _, b := range bands {
		if roll <= b.max {
			return b.quality
		}
	}
	return bands[len(bands)-1].quality
}

// percentileQuality maps a d100 roll to its quality band.
func percentileQuality(roll int) string {
	switch {
	case roll <= 5:
		return "Critical Success! 🌟"
	case roll <= 25:
		return "Success ✅"
	case roll <= 75:
		return "Moderate 📊"
	case roll <= 95:
		return "Failure ❌"
	default:
		return "Critical Failure! 💥"
	}
}

// formatRollResult renders a dice roll, listing individual dice only when
// more than one was rolled.
func formatRollResult(rolls []int, total int, notation string) string {
	if len(rolls) == 1 {
		return fmt.Sprintf("🎲 Rolled %s: **%d**", notation, total)
	}
	return fmt.Sprintf("🎲 Rolled %s: [%s] = **%d**", notation, joinInts(rolls), total)
}

func formatSingleFlip(result string) string {
	emoji := "🪙"
	if result == "Heads" {
		emoji = "👑"
	}
	return fmt.Sprintf("%s Coin flip: **%s**", emoji, result)
}

func formatFlips(flips []string, heads, tails int) string {
	return fmt.Sprintf("🪙 Flipped %d coins:\n%s\n\nSummary: %d Heads, %d Tails",
		len(flips), strings.Join(flips, ", "), heads, tails)
}

func formatStats(label string, stats []int) string {
	total := 0
	for _, s := range stats {
		total += s
	}
	avg := float64(total) / float64(len(stats))
	return fmt.Sprintf("🎲 D&D Ability Scores (%s):\n%s\n\nTotal: %d | Average: %.1f",
		label, joinInts(stats), total, avg)
}

func formatAdvantageRoll(emoji, typeName string, sides, roll1, roll2, result int) string {
	return fmt.Sprintf("%s Rolling d%d with %s:\nRolls: %d, %d\nResult: **%d**",
		emoji, sides, typeName, roll1, roll2, result)
}

func formatPercentileRoll(roll int, quality string) string {
	return fmt.Sprintf("🎲 Percentile Roll (d100): **%d**\n%s", roll, quality)
}

// formatInitiative renders a single initiative line, or a ranked list when
// more than one character rolled. Entries must already be in display order.
func formatInitiative(entries []initiativeEntry, bonus int) string {
	if len(entries) == 1 {
		e := entries[0]
		return fmt.Sprintf("⚔️ Initiative: %d %+d = **%d**", e.roll, bonus, e.total)
	}

	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, "⚔️ Initiative Order:")
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("Character %d: %d %+d = **%d**", e.character, e.roll, bonus, e.total))
	}
	return strings.Join(lines, "\n")
}

func formatChoice(choices []string, choice string) string {
	return fmt.Sprintf("🎯 Random Choice:\nOptions: %s\nSelected: **%s**",
		strings.Join(choices, ", "), choice)
}

func formatLootRoll(rarity string, roll int, quality string) string {
	return fmt.Sprintf("💎 Loot Roll (%s):\nRoll: %d\nResult: %s",
		capitalize(rarity), roll, quality)
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
