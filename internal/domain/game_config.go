package domain

import (
	"fmt"
	"time"
)

type GameConfig struct {
	BoardWidth    int32 `yaml:"board_width"`
	BoardHeight   int32 `yaml:"board_height"`
	CellSize      int32 `yaml:"cell_size"`
	TickDelayMs   int32 `yaml:"tick_delay_ms"`
	InitialLength int32 `yaml:"initial_length"`
	FoodCount     int32 `yaml:"food_count"`
	JunkMin       int32 `yaml:"junk_min"`
	JunkMax       int32 `yaml:"junk_max"`
	AvoidOverlap  bool  `yaml:"avoid_overlap"`
	Seed          int64 `yaml:"seed"`
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		BoardWidth:    800,
		BoardHeight:   600,
		CellSize:      50,
		TickDelayMs:   150,
		InitialLength: 3,
		FoodCount:     5,
		JunkMin:       5,
		JunkMax:       10,
		AvoidOverlap:  true,
	}
}

func (c *GameConfig) Validate() error {
	if c.CellSize < 10 || c.CellSize > 100 {
		return fmt.Errorf("cell size must be 10-100, got %d", c.CellSize)
	}
	if c.BoardWidth <= 0 || c.BoardWidth%c.CellSize != 0 {
		return fmt.Errorf("board width %d is not a multiple of cell size %d", c.BoardWidth, c.CellSize)
	}
	if c.BoardHeight <= 0 || c.BoardHeight%c.CellSize != 0 {
		return fmt.Errorf("board height %d is not a multiple of cell size %d", c.BoardHeight, c.CellSize)
	}

	cellsX, cellsY := c.BoardWidth/c.CellSize, c.BoardHeight/c.CellSize
	if cellsX < 5 || cellsX > 100 || cellsY < 5 || cellsY > 100 {
		return fmt.Errorf("board must be 5-100 cells per side, got %dx%d", cellsX, cellsY)
	}
	if c.TickDelayMs < 50 || c.TickDelayMs > 3000 {
		return fmt.Errorf("tick delay must be 50-3000 ms, got %d", c.TickDelayMs)
	}
	if c.InitialLength < 1 || c.InitialLength > 20 {
		return fmt.Errorf("initial length must be 1-20, got %d", c.InitialLength)
	}
	if c.FoodCount < 1 || c.FoodCount > 100 {
		return fmt.Errorf("food count must be 1-100, got %d", c.FoodCount)
	}
	if c.JunkMin < 1 || c.JunkMax > 100 || c.JunkMin > c.JunkMax {
		return fmt.Errorf("junk range must satisfy 1 <= min <= max <= 100, got [%d,%d]", c.JunkMin, c.JunkMax)
	}
	if int(c.FoodCount+c.JunkMax+c.InitialLength) >= int(cellsX)*int(cellsY) {
		return fmt.Errorf("board of %dx%d cells is too small for %d food, %d junk and a snake of %d",
			cellsX, cellsY, c.FoodCount, c.JunkMax, c.InitialLength)
	}
	return nil
}

func (c *GameConfig) Copy() *GameConfig {
	cp := *c
	return &cp
}

// Field derives the board in cells. Call Validate first.
func (c *GameConfig) Field() *Field {
	return NewField(c.BoardWidth/c.CellSize, c.BoardHeight/c.CellSize)
}

func (c *GameConfig) TickDelay() time.Duration {
	return time.Duration(c.TickDelayMs) * time.Millisecond
}
