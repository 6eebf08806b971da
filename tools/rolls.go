package tools

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kiriyms/dice-roller-mcp/dice"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

// roller is the shared randomness source for all tool handlers, set once by
// RegisterRollTools. Tests register with a fixed seed for deterministic output.
var roller *dice.Roller

// logger records tool invocations; defaults to a no-op logger.
var logger = zerolog.Nop()

// SetLogger installs the logger used for invocation and error logging.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// RegisterRollTools adds all dice-rolling tools to the server
func RegisterRollTools(server *mcp.Server, r *dice.Roller) {
	roller = r

	// Tool 1: Roll Dice
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "roll_dice",
			Description: "Roll dice using standard notation like 1d20, 2d6, 3d8, etc.",
		},
		handleRollDice,
	)

	// Tool 2: Flip Coin
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "flip_coin",
			Description: "Flip one or more coins and get heads or tails results",
		},
		handleFlipCoin,
	)

	// Tool 3: Roll Stats
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "roll_stats",
			Description: "Roll ability scores for D&D character creation using different methods",
		},
		handleRollStats,
	)

	// Tool 4: Roll With Advantage
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "roll_with_advantage",
			Description: "Roll with advantage or disadvantage (roll twice, take higher/lower)",
		},
		handleRollWithAdvantage,
	)

	// Tool 5: Percentile Roll
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "percentile_roll",
			Description: "Roll percentile dice (d100) for percentage-based checks",
		},
		handlePercentileRoll,
	)

	// Tool 6: Roll Initiative
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "roll_initiative",
			Description: "Roll initiative for combat (d20 + bonus) for one or more characters",
		},
		handleRollInitiative,
	)

	// Tool 7: Random Choice
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "random_choice",
			Description: "Pick a random option from a comma-separated list",
		},
		handleRandomChoice,
	)

	// Tool 8: Roll Loot
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "roll_loot",
			Description: "Generate random loot quality based on rarity tier",
		},
		handleRollLoot,
	)
}

// TextOutput is the common output shape for every rolling tool: a single
// pre-rendered text block. Failure paths return it too, prefixed "❌ Error:",
// so a bad argument never surfaces as a protocol-level error.
type TextOutput struct {
	Result string `json:"result" jsonschema:"formatted human-readable result"`
}

func errorOutput(format string, args ...any) TextOutput {
	return TextOutput{Result: "❌ Error: " + fmt.Sprintf(format, args...)}
}

// RollDiceInput defines the arguments for the roll_dice tool
type RollDiceInput struct {
	Notation string `json:"notation,omitempty" jsonschema:"dice notation like 1d20 or 2d6, defaults to 1d6"`
}

func handleRollDice(ctx context.Context, req *mcp.CallToolRequest, input RollDiceInput) (*mcp.CallToolResult, TextOutput, error) {
	logger.Info().Str("tool", "roll_dice").Str("notation", input.Notation).Msg("rolling dice")

	notation := strings.TrimSpace(input.Notation)
	if notation == "" {
		notation = "1d6"
	}

	parsed, ok := dice.ParseNotation(notation)
	if !ok {
		logger.Debug().Str("notation", notation).Msg("invalid dice notation")
		return nil, errorOutput("Invalid dice notation. Use format like '1d20' or '2d6' (max 100 dice, 1000 sides)"), nil
	}

	rolls := make([]int, parsed.Count)
	total := 0
	for i := range rolls {
		rolls[i] = roller.Roll(parsed.Sides)
		total += rolls[i]
	}

	return nil, TextOutput{Result: formatRollResult(rolls, total, notation)}, nil
}

// FlipCoinInput defines the arguments for the flip_coin tool
type FlipCoinInput struct {
	Count string `json:"count,omitempty" jsonschema:"number of coins to flip (1-100), defaults to 1"`
}

func handleFlipCoin(ctx context.Context, req *mcp.CallToolRequest, input FlipCoinInput) (*mcp.CallToolResult, TextOutput, error) {
	logger.Info().Str("tool", "flip_coin").Str("count", input.Count).Msg("flipping coins")

	numFlips := 1
	if count := strings.TrimSpace(input.Count); count != "" {
		n, err := strconv.Atoi(count)
		if err != nil {
			return nil, errorOutput("Invalid count value: %s", input.Count), nil
		}
		numFlips = n
	}

	if numFlips < 1 || numFlips > 100 {
		return nil, errorOutput("Count must be between 1 and 100"), nil
	}

	flips := make([]string, numFlips)
	heads := 0
	for i := range flips {
		if roller.Pick(2) == 0 {
			flips[i] = "Heads"
			heads++
		} else {
			flips[i] = "Tails"
		}
	}

	if numFlips == 1 {
		return nil, TextOutput{Result: formatSingleFlip(flips[0])}, nil
	}
	return nil, TextOutput{Result: formatFlips(flips, heads, numFlips-heads)}, nil
}

// RollStatsInput defines the arguments for the roll_stats tool
type RollStatsInput struct {
	Method string `json:"method,omitempty" jsonschema:"generation method: standard (4d6 drop lowest), heroic (2d6+6), or straight (3d6)"`
}

func handleRollStats(ctx context.Context, req *mcp.CallToolRequest, input RollStatsInput) (*mcp.CallToolResult, TextOutput, error) {
	logger.Info().Str("tool", "roll_stats").Str("method", input.Method).Msg("rolling ability scores")

	method := strings.ToLower(strings.TrimSpace(input.Method))

	stats := make([]int, 6)
	var label string
	switch method {
	case "", "standard":
		// Roll 4d6, drop lowest, six times
		label = "4d6 drop lowest"
		for i := range stats {
			rolls := []int{roller.Roll(6), roller.Roll(6), roller.Roll(6), roller.Roll(6)}
			sort.Ints(rolls)
			stats[i] = rolls[1] + rolls[2] + rolls[3]
		}
	case "heroic":
		label = "2d6+6"
		for i := range stats {
			stats[i] = roller.Roll(6) + roller.Roll(6) + 6
		}
	case "straight":
		label = "3d6"
		for i := range stats {
			stats[i] = roller.Roll(6) + roller.Roll(6) + roller.Roll(6)
		}
	default:
		return nil, errorOutput("Invalid method. Use 'standard', 'heroic', or 'straight'"), nil
	}

	return nil, TextOutput{Result: formatStats(label, stats)}, nil
}

// RollWithAdvantageInput defines the arguments for the roll_with_advantage tool
type RollWithAdvantageInput struct {
	Sides         string `json:"sides,omitempty" jsonschema:"number of sides on the die (2-1000), defaults to 20"`
	AdvantageType string `json:"advantage_type,omitempty" jsonschema:"advantage or disadvantage, defaults to advantage"`
}

func handleRollWithAdvantage(ctx context.Context, req *mcp.CallToolRequest, input RollWithAdvantageInput) (*mcp.CallToolResult, TextOutput, error) {
	logger.Info().Str("tool", "roll_with_advantage").Str("sides", input.Sides).Str("advantage_type", input.AdvantageType).Msg("rolling with advantage")

	numSides := 20
	if sides := strings.TrimSpace(input.Sides); sides != "" {
		n, err := strconv.Atoi(sides)
		if err != nil {
			return nil, errorOutput("Invalid sides value: %s", input.Sides), nil
		}
		numSides = n
	}

	if numSides < dice.MinSides || numSides > dice.MaxSides {
		return nil, errorOutput("Sides must be between 2 and 1000"), nil
	}

	roll1 := roller.Roll(numSides)
	roll2 := roller.Roll(numSides)

	var result int
	var emoji, typeName string
	switch strings.ToLower(strings.TrimSpace(input.AdvantageType)) {
	case "", "advantage", "adv":
		result = max(roll1, roll2)
		emoji = "⬆️"
		typeName = "Advantage"
	case "disadvantage", "dis", "disadv":
		result = min(roll1, roll2)
		emoji = "⬇️"
		typeName = "Disadvantage"
	default:
		return nil, errorOutput("Type must be 'advantage' or 'disadvantage'"), nil
	}

	return nil, TextOutput{Result: formatAdvantageRoll(emoji, typeName, numSides, roll1, roll2, result)}, nil
}

// PercentileRollInput defines the arguments for the percentile_roll tool
type PercentileRollInput struct{}

func handlePercentileRoll(ctx context.Context, req *mcp.CallToolRequest, input PercentileRollInput) (*mcp.CallToolResult, TextOutput, error) {
	logger.Info().Str("tool", "percentile_roll").Msg("rolling percentile dice")

	result := roller.Between(1, 100)

	return nil, TextOutput{Result: formatPercentileRoll(result, percentileQuality(result))}, nil
}

// RollInitiativeInput defines the arguments for the roll_initiative tool
type RollInitiativeInput struct {
	Bonus string `json:"bonus,omitempty" jsonschema:"initiative bonus (-10 to 20), defaults to 0"`
	Count string `json:"count,omitempty" jsonschema:"number of characters (1-20), defaults to 1"`
}

// initiativeEntry is one participant's initiative roll. Character numbers
// start at 1 in roll order.
type initiativeEntry struct {
	character int
	roll      int
	total     int
}

// orderInitiative sorts entries by total descending. Ties keep their
// original roll order.
func orderInitiative(entries []initiativeEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].total > entries[j].total
	})
}

func handleRollInitiative(ctx context.Context, req *mcp.CallToolRequest, input RollInitiativeInput) (*mcp.CallToolResult, TextOutput, error) {
	logger.Info().Str("tool", "roll_initiative").Str("bonus", input.Bonus).Str("count", input.Count).Msg("rolling initiative")

	numCount := 1
	if count := strings.TrimSpace(input.Count); count != "" {
		n, err := strconv.Atoi(count)
		if err != nil {
			return nil, errorOutput("Invalid number value"), nil
		}
		numCount = n
	}

	bonus := 0
	if b := strings.TrimSpace(input.Bonus); b != "" {
		n, err := strconv.Atoi(b)
		if err != nil {
			return nil, errorOutput("Invalid number value"), nil
		}
		bonus = n
	}

	if numCount < 1 || numCount > 20 {
		return nil, errorOutput("Count must be between 1 and 20"), nil
	}
	if bonus < -10 || bonus > 20 {
		return nil, errorOutput("Bonus must be between -10 and +20"), nil
	}

	entries := make([]initiativeEntry, numCount)
	for i := range entries {
		roll := roller.Roll(20)
		entries[i] = initiativeEntry{character: i + 1, roll: roll, total: roll + bonus}
	}
	orderInitiative(entries)

	return nil, TextOutput{Result: formatInitiative(entries, bonus)}, nil
}

// RandomChoiceInput defines the arguments for the random_choice tool
type RandomChoiceInput struct {
	Options string `json:"options,omitempty" jsonschema:"comma-separated options to choose from (2-50 entries)"`
}

func handleRandomChoice(ctx context.Context, req *mcp.CallToolRequest, input RandomChoiceInput) (*mcp.CallToolResult, TextOutput, error) {
	logger.Info().Str("tool", "random_choice").Msg("making random choice")

	if strings.TrimSpace(input.Options) == "" {
		return nil, errorOutput("Please provide comma-separated options (e.g., 'attack, defend, flee')"), nil
	}

	var choices []string
	for _, opt := range strings.Split(input.Options, ",") {
		if opt = strings.TrimSpace(opt); opt != "" {
			choices = append(choices, opt)
		}
	}

	if len(choices) < 2 {
		return nil, errorOutput("Please provide at least 2 options separated by commas"), nil
	}
	if len(choices) > 50 {
		return nil, errorOutput("Maximum 50 options allowed"), nil
	}

	choice := choices[roller.Pick(len(choices))]

	return nil, TextOutput{Result: formatChoice(choices, choice)}, nil
}

// RollLootInput defines the arguments for the roll_loot tool
type RollLootInput struct {
	Rarity string `json:"rarity,omitempty" jsonschema:"loot rarity tier: common, uncommon, rare, or legendary"`
}

func handleRollLoot(ctx context.Context, req *mcp.CallToolRequest, input RollLootInput) (*mcp.CallToolResult, TextOutput, error) {
	logger.Info().Str("tool", "roll_loot").Str("rarity", input.Rarity).Msg("rolling loot")

	rarity := strings.ToLower(strings.TrimSpace(input.Rarity))
	if rarity == "" {
		rarity = "common"
	}

	bands, ok := lootTiers[rarity]
	if !ok {
		return nil, errorOutput("Rarity must be 'common', 'uncommon', 'rare', or 'legendary'"), nil
	}

	roll := roller.Roll(100)

	return nil, TextOutput{Result: formatLootRoll(rarity, roll, lootQuality(bands, roll))}, nil
}
