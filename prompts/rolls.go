package prompts

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterRollPrompts adds table-ritual prompts to the server
func RegisterRollPrompts(server *mcp.Server) {
	// Prompt 1: Session opener
	server.AddPrompt(
		&mcp.Prompt{
			Name:        "session_opener",
			Description: "Walk the table through the opening rolls of a game session",
			Arguments: []*mcp.PromptArgument{
				{
					Name:        "party_size",
					Description: "Number of player characters at the table",
					Required:    false,
				},
			},
		},
		handleSessionOpenerPrompt,
	)

	// Prompt 2: Loot drop
	server.AddPrompt(
		&mcp.Prompt{
			Name:        "loot_drop",
			Description: "Guide a loot reveal for a defeated foe",
			Arguments: []*mcp.PromptArgument{
				{
					Name:        "rarity",
					Description: "Loot tier (common, uncommon, rare, legendary)",
					Required:    false,
				},
				{
					Name:        "foe_name",
					Description: "Name of the defeated foe",
					Required:    false,
				},
			},
		},
		handleLootDropPrompt,
	)
}

// handleSessionOpenerPrompt builds the opening roll sequence for a session
func handleSessionOpenerPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	partySize := req.Params.Arguments["party_size"]
	if partySize == "" {
		partySize = "each player"
	}

	content := fmt.Sprintf(`Open the session with dice on the table.

Party: %s

Process:
1. Use the roll_initiative tool once per character (pass each character's bonus) to seed the marching order
2. Use the percentile_roll tool for the session omen - read the quality band aloud
3. Any player who wants a fresh character can use roll_stats (standard method unless the table agrees otherwise)
4. Settle any "who goes first" argument with flip_coin

Keep the results visible: every tool returns the formatted roll text ready to paste into the table log.`,
		partySize,
	)

	return &mcp.GetPromptResult{
		Description: "Opening roll sequence for a game session",
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: content},
			},
		},
	}, nil
}

// handleLootDropPrompt builds a loot reveal walkthrough
func handleLootDropPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	rarity := req.Params.Arguments["rarity"]
	if rarity == "" {
		rarity = "common"
	}
	foeName := req.Params.Arguments["foe_name"]
	if foeName == "" {
		foeName = "the fallen foe"
	}

	content := fmt.Sprintf(`Reveal the loot left behind by %s.

Tier: %s

Process:
1. Use the roll_loot tool with rarity "%s"
2. Read the quality result aloud before describing the item
3. If the party argues over who takes it, use random_choice with the claimants' names
4. For a dramatic reveal, use percentile_roll first and narrate the tension

The dice://reference/loot_tiers resource lists the threshold tables if the table wants the odds.`,
		foeName,
		rarity,
		rarity,
	)

	return &mcp.GetPromptResult{
		Description: "Loot reveal walkthrough",
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: content},
			},
		},
	}, nil
}
