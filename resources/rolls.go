package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NotationReference documents the dice notation grammar and its limits
type NotationReference struct {
	Format   string   `json:"format"`
	MinCount int      `json:"min_count"`
	MaxCount int      `json:"max_count"`
	MinSides int      `json:"min_sides"`
	MaxSides int      `json:"max_sides"`
	Examples []string `json:"examples"`
	Notes    []string `json:"notes"`
}

// StatMethod describes one ability-score generation method
type StatMethod struct {
	Name        string `json:"name"`
	Dice        string `json:"dice"`
	Description string `json:"description"`
	MinScore    int    `json:"min_score"`
	MaxScore    int    `json:"max_score"`
}

// QualityBand maps an inclusive d100 range to an outcome label
type QualityBand struct {
	MinRoll int    `json:"min_roll"`
	MaxRoll int    `json:"max_roll"`
	Quality string `json:"quality"`
}

// LootTier describes the quality bands for one rarity level
type LootTier struct {
	Rarity string        `json:"rarity"`
	Bands  []QualityBand `json:"bands"`
}

// RegisterRollResources adds all static reference resources to the server
func RegisterRollResources(server *mcp.Server) {
	// Resource 1: Dice notation grammar
	server.AddResource(
		&mcp.Resource{
			URI:         "dice://reference/notation",
			Name:        "dice_notation",
			Description: "Dice notation grammar and limits accepted by roll_dice",
			MIMEType:    "application/json",
		},
		jsonHandler(func() any { return notationReference }),
	)

	// Resource 2: Ability-score methods
	server.AddResource(
		&mcp.Resource{
			URI:         "dice://reference/stat_methods",
			Name:        "stat_methods",
			Description: "Ability-score generation methods accepted by roll_stats",
			MIMEType:    "application/json",
		},
		jsonHandler(func() any { return statMethods }),
	)

	// Resource 3: Loot tier tables
	server.AddResource(
		&mcp.Resource{
			URI:         "dice://reference/loot_tiers",
			Name:        "loot_tiers",
			Description: "d100 quality band thresholds for each loot rarity tier",
			MIMEType:    "application/json",
		},
		jsonHandler(func() any { return lootTiers }),
	)

	// Resource 4: Percentile bands
	server.AddResource(
		&mcp.Resource{
			URI:         "dice://reference/percentile_bands",
			Name:        "percentile_bands",
			Description: "Quality bands for percentile_roll results",
			MIMEType:    "application/json",
		},
		jsonHandler(func() any { return percentileBands }),
	)
}

// jsonHandler serves a static value as pretty-printed JSON resource contents.
func jsonHandler(value func() any) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		data, err := json.MarshalIndent(value(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal resource: %w", err)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      req.Params.URI,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}
}

var notationReference = NotationReference{
	Format:   "[count]d<sides>",
	MinCount: 1,
	MaxCount: 100,
	MinSides: 2,
	MaxSides: 1000,
	Examples: []string{"1d20", "2d6", "d8", "100d1000"},
	Notes: []string{
		"count is optional and defaults to 1",
		"input is trimmed and case-insensitive",
		"exactly one 'd' separator is required",
	},
}

var statMethods = []StatMethod{
	{
		Name:        "standard",
		Dice:        "4d6 drop lowest",
		Description: "Roll four d6, drop the lowest die, six times",
		MinScore:    3,
		MaxScore:    18,
	},
	{
		Name:        "heroic",
		Dice:        "2d6+6",
		Description: "Roll two d6 and add 6, six times",
		MinScore:    8,
		MaxScore:    18,
	},
	{
		Name:        "straight",
		Dice:        "3d6",
		Description: "Roll three d6, six times",
		MinScore:    3,
		MaxScore:    18,
	},
}

var lootTiers = []LootTier{
	{
		Rarity: "common",
		Bands: []QualityBand{
			{1, 60, "Poor quality item"},
			{61, 90, "Average quality item"},
			{91, 100, "Good quality item"},
		},
	},
	{
		Rarity: "uncommon",
		Bands: []QualityBand{
			{1, 50, "Average quality item"},
			{51, 85, "Good quality item"},
			{86, 100, "Exceptional item"},
		},
	},
	{
		Rarity: "rare",
		Bands: []QualityBand{
			{1, 40, "Good quality item"},
			{41, 80, "Exceptional item"},
			{81, 100, "Masterwork item"},
		},
	},
	{
		Rarity: "legendary",
		Bands: []QualityBand{
			{1, 30, "Exceptional item"},
			{31, 70, "Masterwork item"},
			{71, 100, "Legendary artifact"},
		},
	},
}

var percentileBands = []QualityBand{
	{1, 5, "Critical Success"},
	{6, 25, "Success"},
	{26, 75, "Moderate"},
	{76, 95, "Failure"},
	{96, 100, "Critical Failure"},
}
