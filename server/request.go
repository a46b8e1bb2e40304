package server

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/katalvlaran/lvlgen/dungeon"
	"github.com/katalvlaran/lvlgen/quadtree"
)

// Sentinel errors for request handling.
var (
	// ErrBadParameter indicates a query parameter that is not an integer.
	ErrBadParameter = errors.New("server: malformed parameter")
	// ErrTooLarge indicates a grid or attempt budget above the server's limits.
	ErrTooLarge = errors.New("server: request exceeds server limits")
)

// Request is a generation request. Zero-valued pointers keep the base setting.
type Request struct {
	Seed             *int64 `json:"seed,omitempty"`
	Width            *int   `json:"width,omitempty"`
	Height           *int   `json:"height,omitempty"`
	RoomAttempts     *int   `json:"room_attempts,omitempty"`
	SizeModifier     *int   `json:"size_modifier,omitempty"`
	DirectionChance  *int   `json:"direction_chance,omitempty"`
	ConnectionChance *int   `json:"connection_chance,omitempty"`
}

// Response is the JSON form of a generated dungeon.
type Response struct {
	ID       string        `json:"id"`
	Seed     int64         `json:"seed"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Rooms    []Room        `json:"rooms"`
	MainRoom int           `json:"main_room"`
	Stats    dungeon.Stats `json:"stats"`
	Grid     []string      `json:"grid"`
}

// Room is a placed room rectangle.
type Room struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// apply overlays the set fields of r on cfg.
func (r Request) apply(cfg dungeon.Config) dungeon.Config {
	if r.Seed != nil {
		cfg.Seed = *r.Seed
	}
	for _, f := range []struct {
		src *int
		dst *int
	}{
		{r.Width, &cfg.Width},
		{r.Height, &cfg.Height},
		{r.RoomAttempts, &cfg.RoomAttempts},
		{r.SizeModifier, &cfg.SizeModifier},
		{r.DirectionChance, &cfg.DirectionChance},
		{r.ConnectionChance, &cfg.ConnectionChance},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}

	return cfg
}

// parseQuery reads the query-string form of a Request.
func parseQuery(q url.Values) (Request, error) {
	var req Request
	if s := q.Get("seed"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Request{}, fmt.Errorf("%w: seed=%q", ErrBadParameter, s)
		}
		req.Seed = &v
	}
	for _, p := range []struct {
		name string
		dst  **int
	}{
		{"width", &req.Width},
		{"height", &req.Height},
		{"attempts", &req.RoomAttempts},
		{"size", &req.SizeModifier},
		{"direction", &req.DirectionChance},
		{"connection", &req.ConnectionChance},
	} {
		s := q.Get(p.name)
		if s == "" {
			continue
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return Request{}, fmt.Errorf("%w: %s=%q", ErrBadParameter, p.name, s)
		}
		*p.dst = &v
	}

	return req, nil
}

// NewResponse converts a dungeon into its JSON form.
func NewResponse(id string, d *dungeon.Dungeon) Response {
	rooms := make([]Room, len(d.Rooms))
	for i, r := range d.Rooms {
		rooms[i] = toRoom(r)
	}
	rows := make([]string, 0, d.Grid.Height())
	line := make([]byte, 0, d.Grid.Width())
	for _, row := range d.Grid.Rows() {
		line = line[:0]
		for _, v := range row {
			switch v {
			case dungeon.Wall:
				line = append(line, '#')
			case d.ConnectorRegion:
				line = append(line, '+')
			default:
				line = append(line, '.')
			}
		}
		rows = append(rows, string(line))
	}

	return Response{
		ID:       id,
		Seed:     d.Seed,
		Width:    d.Grid.Width(),
		Height:   d.Grid.Height(),
		Rooms:    rooms,
		MainRoom: d.MainRoom,
		Stats:    d.Stats,
		Grid:     rows,
	}
}

func toRoom(r quadtree.Rect) Room {
	return Room{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
