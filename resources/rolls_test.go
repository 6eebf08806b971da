package resources

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func readResource(t *testing.T, h mcp.ResourceHandler, uri string) string {
	t.Helper()
	res, err := h(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	})
	if err != nil {
		t.Fatalf("resource handler returned error: %v", err)
	}
	if len(res.Contents) != 1 {
		t.Fatalf("expected 1 content entry, got %d", len(res.Contents))
	}
	c := res.Contents[0]
	if c.URI != uri {
		t.Fatalf("content URI = %q, want %q", c.URI, uri)
	}
	if c.MIMEType != "application/json" {
		t.Fatalf("content MIME type = %q, want application/json", c.MIMEType)
	}
	return c.Text
}

func TestRegisterRollResources(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "0.0.0"}, nil)
	RegisterRollResources(server)
}

func TestNotationResource(t *testing.T) {
	text := readResource(t, jsonHandler(func() any { return notationReference }), "dice://reference/notation")

	var ref NotationReference
	if err := json.Unmarshal([]byte(text), &ref); err != nil {
		t.Fatalf("notation reference is not valid JSON: %v", err)
	}
	if ref.MaxCount != 100 || ref.MaxSides != 1000 {
		t.Fatalf("unexpected notation limits: %+v", ref)
	}
}

func TestStatMethodsResource(t *testing.T) {
	text := readResource(t, jsonHandler(func() any { return statMethods }), "dice://reference/stat_methods")

	var methods []StatMethod
	if err := json.Unmarshal([]byte(text), &methods); err != nil {
		t.Fatalf("stat methods are not valid JSON: %v", err)
	}
	if len(methods) != 3 {
		t.Fatalf("expected 3 stat methods, got %d", len(methods))
	}
	if methods[0].Name != "standard" || methods[0].MinScore != 3 {
		t.Fatalf("unexpected standard method: %+v", methods[0])
	}
}

func TestLootTiersResource(t *testing.T) {
	text := readResource(t, jsonHandler(func() any { return lootTiers }), "dice://reference/loot_tiers")

	var tiers []LootTier
	if err := json.Unmarshal([]byte(text), &tiers); err != nil {
		t.Fatalf("loot tiers are not valid JSON: %v", err)
	}
	if len(tiers) != 4 {
		t.Fatalf("expected 4 loot tiers, got %d", len(tiers))
	}

	legendary := tiers[3]
	if legendary.Rarity != "legendary" {
		t.Fatalf("expected legendary tier last, got %q", legendary.Rarity)
	}
	wantBands := []QualityBand{
		{1, 30, "Exceptional item"},
		{31, 70, "Masterwork item"},
		{71, 100, "Legendary artifact"},
	}
	for i, want := range wantBands {
		if legendary.Bands[i] != want {
			t.Fatalf("legendary band %d = %+v, want %+v", i, legendary.Bands[i], want)
		}
	}
}

func TestPercentileBandsResource(t *testing.T) {
	text := readResource(t, jsonHandler(func() any { return percentileBands }), "dice://reference/percentile_bands")

	var bands []QualityBand
	if err := json.Unmarshal([]byte(text), &bands); err != nil {
		t.Fatalf("percentile bands are not valid JSON: %v", err)
	}
	if len(bands) != 5 {
		t.Fatalf("expected 5 percentile bands, got %d", len(bands))
	}
	if bands[0].MaxRoll != 5 || bands[4].MinRoll != 96 {
		t.Fatalf("unexpected band edges: %+v", bands)
	}
}
