// Package server exposes dungeon generation over HTTP and WebSocket.
//
// Routes:
//
//	GET /api/dungeons        JSON document for one generated dungeon
//	GET /api/dungeons/ascii  the same dungeon rendered as text
//	GET /ws                  WebSocket; every JSON request gets one JSON reply
//	GET /healthz             liveness check
//
// Query parameters (all optional, falling back to the server's base Config):
//
//	seed, width, height, attempts, size, direction, connection
//
// Malformed parameters and rejected options answer 400. Grids larger than the
// configured cell limit answer 413. Every response carries a fresh UUID so
// clients can correlate logs.
package server
