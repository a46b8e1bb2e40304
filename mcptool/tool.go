package mcptool

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvlgen/dungeon"
	api "github.com/katalvlaran/lvlgen/server"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolName is the registered tool name.
const ToolName = "generate_dungeon"

// ErrBadArgument indicates a tool argument of the wrong type or a non-integer number.
var ErrBadArgument = errors.New("mcptool: bad argument")

// Generator produces a dungeon for a request. *server.Server satisfies it.
type Generator interface {
	Generate(ctx context.Context, req api.Request) (*dungeon.Dungeon, error)
}

// Tool wires a Generator into an MCP server.
type Tool struct {
	gen       Generator
	mcpServer *server.MCPServer
}

// New creates the MCP server and registers generate_dungeon.
func New(gen Generator, version string) *Tool {
	t := &Tool{gen: gen}
	t.mcpServer = server.NewMCPServer(
		"lvlgen",
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`lvlgen - rooms-and-mazes dungeon generator

TOOLS:
- generate_dungeon: build a dungeon and return it as ASCII ('#' wall, '.' floor, '+' door) plus statistics

Width and height must be odd and at least 3. Chances are percentages in 0..100.
The same seed with the same settings always returns the same dungeon.`),
	)

	t.registerTools()
	return t
}

func (t *Tool) registerTools() {
	integer := func(desc string) map[string]interface{} {
		return map[string]interface{}{
			"type":        "integer",
			"description": desc,
		}
	}
	t.mcpServer.AddTool(mcp.Tool{
		Name:        ToolName,
		Description: "Generate a rooms-and-mazes dungeon and return it as ASCII with statistics",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"seed":              integer("RNG seed; 0 selects the default seed"),
				"width":             integer("Grid width, odd and >= 3"),
				"height":            integer("Grid height, odd and >= 3"),
				"room_attempts":     integer("Number of room placement attempts"),
				"size_modifier":     integer("Larger values allow bigger rooms"),
				"direction_chance":  integer("Percent chance a corridor turns when it could go straight"),
				"connection_chance": integer("Percent chance each redundant door is opened"),
			},
		},
	}, t.handleGenerate)
}

// MCPServer returns the underlying MCP server for serving
func (t *Tool) MCPServer() *server.MCPServer {
	return t.mcpServer
}

// ServeStdio serves the tool over stdin/stdout until the peer disconnects.
func (t *Tool) ServeStdio() error {
	return server.ServeStdio(t.mcpServer)
}

func (t *Tool) handleGenerate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	req, err := parseArgs(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	d, err := t.gen.Generate(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatDungeon(d)), nil
}

// parseArgs converts JSON-decoded arguments into a Request. Numbers arrive as float64.
func parseArgs(args map[string]interface{}) (api.Request, error) {
	var req api.Request
	if v, ok := args["seed"]; ok {
		n, err := toInt(v)
		if err != nil {
			return api.Request{}, fmt.Errorf("seed: %w", err)
		}
		seed := int64(n)
		req.Seed = &seed
	}
	for _, a := range []struct {
		name string
		dst  **int
	}{
		{"width", &req.Width},
		{"height", &req.Height},
		{"room_attempts", &req.RoomAttempts},
		{"size_modifier", &req.SizeModifier},
		{"direction_chance", &req.DirectionChance},
		{"connection_chance", &req.ConnectionChance},
	} {
		v, ok := args[a.name]
		if !ok {
			continue
		}
		n, err := toInt(v)
		if err != nil {
			return api.Request{}, fmt.Errorf("%s: %w", a.name, err)
		}
		*a.dst = &n
	}

	return req, nil
}

func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("%w: %v is not an integer", ErrBadArgument, n)
		}
		// JSON numbers are exact integers only up to 2^53.
		if math.Abs(n) > 1<<53 {
			return 0, fmt.Errorf("%w: %v is out of range", ErrBadArgument, n)
		}
		return int(n), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: expected a number, got %T", ErrBadArgument, v)
	}
}

// formatDungeon renders the grid and a stats block.
func formatDungeon(d *dungeon.Dungeon) string {
	var sb strings.Builder
	sb.WriteString(d.Grid.String())
	s := d.Stats
	fmt.Fprintf(&sb, "\nseed: %d\nsize: %dx%d\n", d.Seed, d.Grid.Width(), d.Grid.Height())
	fmt.Fprintf(&sb, "rooms: %d (rejected %d)\n", s.Rooms, s.RejectedRooms)
	fmt.Fprintf(&sb, "mazes: %d\nregions: %d\n", s.Mazes, s.Regions)
	fmt.Fprintf(&sb, "connectors: %d (spanning %d, extra %d)\n", s.Connectors, s.SpanningConnectors, s.ExtraConnectors)
	fmt.Fprintf(&sb, "pruned cells: %d\npassable cells: %d\n", s.PrunedCells, s.PassableCells)
	fmt.Fprintf(&sb, "components: %d\n", s.Components)

	return sb.String()
}
