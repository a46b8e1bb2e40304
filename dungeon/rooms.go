package dungeon

import "github.com/katalvlaran/lvlgen/quadtree"

// cancelCheckInterval is how many room attempts run between context checks.
const cancelCheckInterval = 1024

// placeRooms proposes RoomAttempts rooms and keeps those that fit.
//
// Each proposal: a base square of odd side 3..(5+2·SizeModifier), one axis widened
// by a random even amount, an odd-aligned origin. Rejected proposals leave no trace.
func (b *builder) placeRooms() error {
	w, h := b.grid.width, b.grid.height
	for i := 0; i < b.opts.RoomAttempts; i++ {
		if i%cancelCheckInterval == 0 {
			if err := b.ctx.Err(); err != nil {
				return err
			}
		}
		size := between(b.rng, 1, 3+b.opts.SizeModifier)*2 + 1
		rw, rh := size, size
		if b.rng.Intn(2) == 0 {
			rw += 2 * b.rng.Intn(1+size/2)
		} else {
			rh += 2 * b.rng.Intn(1+size/2)
		}
		room := quadtree.Rect{
			X: b.rng.Intn((w-1)/2)*2 + 1,
			Y: b.rng.Intn((h-1)/2)*2 + 1,
			W: rw,
			H: rh,
		}

		// The last row and column must stay inside the border.
		if room.X+room.W > w-1 || room.Y+room.H > h-1 || b.index.Collides(room) {
			b.stats.RejectedRooms++
			continue
		}

		id := b.nextRegion()
		for y := room.Y; y < room.Y+room.H; y++ {
			for x := room.X; x < room.X+room.W; x++ {
				b.grid.set(x, y, id)
			}
		}
		b.rooms = append(b.rooms, room)
		b.index.Insert(room)
	}
	b.stats.Rooms = len(b.rooms)

	return nil
}
