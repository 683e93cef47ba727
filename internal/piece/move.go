package piece

// MoveDown drops the piece one row if every block lands on an open cell.
// A false return is the driver's signal to lock the piece.
func (p *Piece) MoveDown(g Grid) bool {
	for _, b := range p.Blocks {
		if !open(g, p.Anchor.Add(b.Step(Down))) {
			return false
		}
	}
	p.Anchor.Y++
	return true
}

// MoveToSide shifts the piece one column. Only Left and Right are honored;
// any other command is rejected without effect.
func (p *Piece) MoveToSide(cmd MoveCommand, g Grid) bool {
	var dx int
	switch cmd {
	case Left:
		dx = -1
	case Right:
		dx = 1
	default:
		return false
	}

	for _, b := range p.Blocks {
		if !open(g, p.Anchor.Add(b.Step(cmd))) {
			return false
		}
	}
	p.Anchor.X += dx
	return true
}

// CanRotate reports whether turning the piece by cmd keeps every block in
// bounds and off occupied cells. A block that turns onto the piece's own
// current footprint skips the occupancy test. The turn rule can send two
// blocks to the same cell, so a turn that would leave fewer than four
// distinct blocks is rejected.
func (p *Piece) CanRotate(cmd MoveCommand, g Grid) bool {
	if !cmd.IsRotation() {
		return false
	}

	var turned [4]Block
	for i, b := range p.Blocks {
		turned[i] = b.Step(cmd)
	}
	if !distinct(turned) {
		return false
	}

	for _, t := range turned {
		pt := p.Anchor.Add(t)
		if !inBounds(g, pt) {
			return false
		}
		if p.Contains(t) {
			continue
		}
		if !g.At(pt.X, pt.Y).IsEmpty() {
			return false
		}
	}
	return true
}

func distinct(blocks [4]Block) bool {
	for i := range blocks {
		for j := i + 1; j < len(blocks); j++ {
			if blocks[i] == blocks[j] {
				return false
			}
		}
	}
	return true
}

// Rotate applies the turn to every block without any legality check; call
// CanRotate first. The anchor does not move.
func (p *Piece) Rotate(cmd MoveCommand) {
	if !cmd.IsRotation() {
		return
	}
	for i, b := range p.Blocks {
		p.Blocks[i] = b.Step(cmd)
	}
}

// TryMove performs a Down, Left or Right move if it is legal.
func (p *Piece) TryMove(cmd MoveCommand, g Grid) bool {
	switch cmd {
	case Down:
		return p.MoveDown(g)
	case Left, Right:
		return p.MoveToSide(cmd, g)
	}
	return false
}

// TryRotate turns the piece if CanRotate allows it.
func (p *Piece) TryRotate(cmd MoveCommand, g Grid) bool {
	if !p.CanRotate(cmd, g) {
		return false
	}
	p.Rotate(cmd)
	return true
}
