package dungeon

import "fmt"

// Options configures a Generator. Use DefaultOptions() for the reference setup.
//
// Fields:
//
//	Width, Height    grid size; odd, ≥ 3, at most MaxCells cells.
//	RoomAttempts     number of room proposals; ≥ 0.
//	SizeModifier     larger values allow bigger rooms; 0..max(Width, Height).
//	DirectionChance  percent chance a maze turns when it could go straight; 0..100.
//	ConnectionChance percent chance each redundant connector is opened; 0..100.
//	Seed             RNG seed; 0 selects the fixed default seed.
//	Source           custom randomness; overrides Seed when non-nil.
//	Hook             called after every phase with a snapshot.
type Options struct {
	Width            int
	Height           int
	RoomAttempts     int
	SizeModifier     int
	DirectionChance  int
	ConnectionChance int
	Seed             int64
	Source           Source
	Hook             func(PhaseReport)
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the reference configuration:
//
//	– 501×501 grid, 500 room attempts, size modifier 0
//	– DirectionChance 0 (mazes run straight whenever they can)
//	– ConnectionChance 30
//	– Seed 0 (default seed)
func DefaultOptions() Options {
	return Options{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		RoomAttempts:     DefaultRoomAttempts,
		SizeModifier:     DefaultSizeModifier,
		DirectionChance:  DefaultDirectionChance,
		ConnectionChance: DefaultConnectionChance,
	}
}

// WithSize sets the grid dimensions.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithRoomAttempts sets the room placement budget.
func WithRoomAttempts(n int) Option {
	return func(o *Options) {
		o.RoomAttempts = n
	}
}

// WithSizeModifier sets the room size modifier.
func WithSizeModifier(n int) Option {
	return func(o *Options) {
		o.SizeModifier = n
	}
}

// WithDirectionChance sets the maze turn percentage.
func WithDirectionChance(p int) Option {
	return func(o *Options) {
		o.DirectionChance = p
	}
}

// WithConnectionChance sets the redundant connector percentage.
func WithConnectionChance(p int) Option {
	return func(o *Options) {
		o.ConnectionChance = p
	}
}

// WithSeed sets the RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithSource supplies a custom randomness source.
func WithSource(src Source) Option {
	return func(o *Options) {
		o.Source = src
	}
}

// WithHook registers a per-phase callback.
func WithHook(fn func(PhaseReport)) Option {
	return func(o *Options) {
		o.Hook = fn
	}
}

// Validate checks every constraint and returns the first violation.
func (o Options) Validate() error {
	if o.Width < 3 || o.Height < 3 || o.Width%2 == 0 || o.Height%2 == 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, o.Width, o.Height)
	}
	if o.Width > MaxCells/o.Height {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimensions, o.Width, o.Height, MaxCells)
	}
	if o.RoomAttempts < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAttempts, o.RoomAttempts)
	}
	if o.SizeModifier < 0 || o.SizeModifier > max(o.Width, o.Height) {
		return fmt.Errorf("%w: %d", ErrInvalidSizeModifier, o.SizeModifier)
	}
	if o.DirectionChance < 0 || o.DirectionChance > 100 {
		return fmt.Errorf("%w: direction chance %d", ErrInvalidChance, o.DirectionChance)
	}
	if o.ConnectionChance < 0 || o.ConnectionChance > 100 {
		return fmt.Errorf("%w: connection chance %d", ErrInvalidChance, o.ConnectionChance)
	}

	return nil
}
