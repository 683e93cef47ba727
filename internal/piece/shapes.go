package piece

import (
	"fmt"
	"math/rand"
)

// ShapeID indexes the shape catalog.
type ShapeID int

const (
	ShapeI ShapeID = iota
	ShapeO
	ShapeL
	ShapeJ
	ShapeZ
	ShapeS
	ShapeT

	shapeCount = int(ShapeT) + 1
)

func (s ShapeID) String() string {
	if s < 0 || int(s) >= shapeCount {
		return fmt.Sprintf("ShapeID(%d)", int(s))
	}
	return catalog[s].name
}

type shape struct {
	name   string
	blocks [4]Block
	color  Color
}

var catalog = [shapeCount]shape{
	ShapeI: {"I", [4]Block{{0, -1}, {0, 0}, {0, 1}, {0, 2}}, Color{1, 0, 0, 1}},
	ShapeO: {"O", [4]Block{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, Color{0, 1, 0, 1}},
	ShapeL: {"L", [4]Block{{0, -1}, {0, 0}, {0, 1}, {1, 1}}, Color{0, 0, 1, 1}},
	ShapeJ: {"J", [4]Block{{0, -1}, {0, 0}, {0, 1}, {-1, 1}}, Color{1, 1, 0, 1}},
	ShapeZ: {"Z", [4]Block{{-1, 0}, {0, 0}, {0, 1}, {1, 1}}, Color{1, 0, 1, 1}},
	ShapeS: {"S", [4]Block{{1, 0}, {0, 0}, {0, 1}, {-1, 1}}, Color{0, 1, 1, 1}},
	ShapeT: {"T", [4]Block{{1, 0}, {0, 0}, {-1, 0}, {0, 1}}, Color{0.25, 0.75, 0.25, 1}},
}

// Shapes lists every catalog shape in catalog order.
func Shapes() []ShapeID {
	out := make([]ShapeID, shapeCount)
	for i := range out {
		out[i] = ShapeID(i)
	}
	return out
}

// New builds a piece of the given shape at anchor. An id outside the
// catalog falls back to the I shape.
func New(id ShapeID, anchor Point) *Piece {
	if id < 0 || int(id) >= shapeCount {
		id = ShapeI
	}
	s := catalog[id]
	return &Piece{
		Shape:  id,
		Anchor: anchor,
		Blocks: s.blocks,
		Color:  s.color,
	}
}

// SpawnAnchor is where new pieces enter a field of the given width. Row 1
// keeps blocks with a negative offset inside the grid.
func SpawnAnchor(width int) Point {
	return Point{X: width/2 - 1, Y: 1}
}

// --- Randomizers ---

const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// Randomizer picks the shape of each new piece.
type Randomizer interface {
	Next() ShapeID
	Peek() ShapeID
}

// Uniform draws every shape independently with equal probability.
type Uniform struct {
	rng    *rand.Rand
	next   ShapeID
	peeked bool
}

// NewUniform returns a Uniform drawing from rng.
func NewUniform(rng *rand.Rand) *Uniform {
	return &Uniform{rng: rng}
}

func (u *Uniform) Next() ShapeID {
	if u.peeked {
		u.peeked = false
		return u.next
	}
	return ShapeID(u.rng.Intn(shapeCount))
}

func (u *Uniform) Peek() ShapeID {
	if !u.peeked {
		u.next = ShapeID(u.rng.Intn(shapeCount))
		u.peeked = true
	}
	return u.next
}

// Bag deals shapes from a shuffled set of all seven, refilling when empty.
type Bag struct {
	rng *rand.Rand
	bag []ShapeID
}

// NewBag returns a Bag shuffled with rng.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

func (b *Bag) Next() ShapeID {
	if len(b.bag) == 0 {
		b.refill()
	}
	id := b.bag[0]
	b.bag = b.bag[1:]
	return id
}

func (b *Bag) Peek() ShapeID {
	if len(b.bag) == 0 {
		b.refill()
	}
	return b.bag[0]
}

func (b *Bag) refill() {
	b.bag = Shapes()
	// Fisher-Yates shuffle
	for i := len(b.bag) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
	}
}

// NewRandomizer returns the randomizer registered under kind.
func NewRandomizer(kind string, rng *rand.Rand) (Randomizer, error) {
	switch kind {
	case RandomizerUniform:
		return NewUniform(rng), nil
	case RandomizerBag:
		return NewBag(rng), nil
	}
	return nil, fmt.Errorf("unknown randomizer %q", kind)
}

// --- Generator ---

// Generator spawns pieces using an injected Randomizer, so a seeded source
// gives a reproducible sequence.
type Generator struct {
	r Randomizer
}

// NewGenerator returns a Generator drawing shapes from r.
func NewGenerator(r Randomizer) *Generator {
	return &Generator{r: r}
}

// Spawn creates the next piece at anchor.
func (g *Generator) Spawn(anchor Point) *Piece {
	return New(g.r.Next(), anchor)
}

// Peek returns the shape the next Spawn will use.
func (g *Generator) Peek() ShapeID {
	return g.r.Peek()
}
