// Package mcptool publishes dungeon generation as a Model Context Protocol tool.
//
// The single tool, generate_dungeon, accepts the same knobs as the HTTP API
// (seed, width, height, room_attempts, size_modifier, direction_chance,
// connection_chance) and replies with the ASCII grid followed by a stats block.
// Invalid arguments produce a tool error result, never a protocol error.
package mcptool
