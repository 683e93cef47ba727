// Package game drives one play session: it feeds input and drop ticks to
// the active piece, locks it into the board when it can no longer fall and
// spawns the next one.
package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hersh/tetromino/internal/board"
	"github.com/hersh/tetromino/internal/config"
	"github.com/hersh/tetromino/internal/piece"
)

// Session is not safe for concurrent use. The TUI drives it from the
// bubbletea update loop, so checks and moves never interleave with board
// writes.
type Session struct {
	ID         uuid.UUID
	PlayerName string
	Board      *board.Board
	Current    *piece.Piece
	Lines      int
	Pieces     int
	IsGameOver bool

	gen *piece.Generator
	log *logrus.Entry
}

// NewSession starts a session on b and spawns the first piece.
func NewSession(playerName string, b *board.Board, gen *piece.Generator, log logrus.FieldLogger) *Session {
	id := uuid.New()
	s := &Session{
		ID:         id,
		PlayerName: playerName,
		Board:      b,
		gen:        gen,
		log:        log.WithFields(logrus.Fields{"session": id.String(), "player": playerName}),
	}
	s.log.WithFields(logrus.Fields{"width": b.Width(), "height": b.Height()}).Info("session started")
	s.spawn()
	return s
}

// NewSessionFromConfig builds the board and a seeded generator from cfg.
func NewSessionFromConfig(cfg config.Config, log logrus.FieldLogger) (*Session, error) {
	b, err := board.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	seed := cfg.ResolvedSeed()
	r, err := piece.NewRandomizer(cfg.Randomizer, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	log.WithFields(logrus.Fields{"seed": seed, "randomizer": cfg.Randomizer}).Debug("generator ready")
	return NewSession(cfg.Name, b, piece.NewGenerator(r), log), nil
}

// NextShape previews the shape of the piece after Current.
func (s *Session) NextShape() piece.ShapeID {
	return s.gen.Peek()
}

// Move applies a player command. Rejected moves leave the piece untouched.
func (s *Session) Move(cmd piece.MoveCommand) bool {
	if s.IsGameOver {
		return false
	}
	if cmd.IsRotation() {
		return s.Current.TryRotate(cmd, s.Board)
	}
	return s.Current.TryMove(cmd, s.Board)
}

// Tick is one automatic drop. When the piece cannot fall it is locked and
// Tick returns false.
func (s *Session) Tick() bool {
	if s.IsGameOver {
		return false
	}
	if s.Current.MoveDown(s.Board) {
		return true
	}
	s.lock()
	return false
}

// HardDrop drops the piece as far as it goes and locks it. It returns the
// number of rows fallen.
func (s *Session) HardDrop() int {
	if s.IsGameOver {
		return 0
	}
	rows := 0
	for s.Current.MoveDown(s.Board) {
		rows++
	}
	s.lock()
	return rows
}

// GhostCells returns where the current piece would lock if dropped now.
func (s *Session) GhostCells() [4]piece.Point {
	ghost := *s.Current
	for ghost.MoveDown(s.Board) {
	}
	return ghost.Cells()
}

func (s *Session) lock() {
	s.Board.Lock(s.Current)
	s.Pieces++
	cleared := s.Board.ClearLines()
	s.Lines += cleared

	entry := s.log.WithFields(logrus.Fields{
		"shape": s.Current.Shape.String(),
		"x":     s.Current.Anchor.X,
		"y":     s.Current.Anchor.Y,
	})
	if cleared > 0 {
		entry.WithField("lines", cleared).Info("lines cleared")
	} else {
		entry.Debug("piece locked")
	}

	s.spawn()
}

func (s *Session) spawn() {
	s.Current = s.gen.Spawn(piece.SpawnAnchor(s.Board.Width()))
	if !s.Current.Fits(s.Board) {
		s.IsGameOver = true
		s.log.WithFields(logrus.Fields{"pieces": s.Pieces, "lines": s.Lines}).Info("game over")
		return
	}
	s.log.WithField("shape", s.Current.Shape.String()).Debug("piece spawned")
}
