package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultZNear     = 0.0001
	defaultZNearStep = 0.001
	defaultZFar      = 20.0
	defaultFovY      = 20.0

	defaultBoardWidth  = 0.33
	defaultBoardHeight = 0.45
	defaultBoardX      = 0.0
	defaultBoardY      = 0.0
	defaultBoardDepth  = 3.0
	defaultBoardRows   = 10
	defaultBoardCols   = 7
	defaultBoardSquare = 80
	defaultBoardMargin = 50

	defaultGridSize = 1.0
	defaultGridStep = 0.1
	defaultGridY    = 0.0
)

var (
	errInvalidZNear  = errors.New("z_near must be >0")
	errInvalidZFar   = errors.New("z_far must be larger than z_near")
	errInvalidFovY   = errors.New("fov_y must be in (0, 180) degrees")
	errInvalidBoard  = errors.New("board width, height, depth, rows, cols and square_px must be >0, margin_px >=0")
	errInvalidGrid   = errors.New("grid size and step must be >0")
	errInvalidAction = errors.New("unknown key action")
)

type projectionParams struct {
	ZNear     float64 `yaml:"z_near"`
	ZNearStep float64 `yaml:"z_near_step"`
	ZFar      float64 `yaml:"z_far"`
	FovY      float64 `yaml:"fov_y"`
}

// boardParams places the board in the world frame. X is the horizontal
// center, Y the bottom edge and Depth the distance along -Z.
type boardParams struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Depth   float64 `yaml:"depth"`
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Square  int     `yaml:"square_px"`
	Margin  int     `yaml:"margin_px"`
	Texture string  `yaml:"texture"`
}

type gridParams struct {
	Size float64 `yaml:"size"`
	Step float64 `yaml:"step"`
	Y    float64 `yaml:"y"`
}

type config struct {
	Projection projectionParams  `yaml:"projection"`
	Board      boardParams       `yaml:"board"`
	Grid       gridParams        `yaml:"grid"`
	Keys       map[string]string `yaml:"keys"`
	LogLevel   string            `yaml:"log_level"`
}

func defaultConfig() *config {
	return &config{
		Projection: projectionParams{
			ZNear:     defaultZNear,
			ZNearStep: defaultZNearStep,
			ZFar:      defaultZFar,
			FovY:      defaultFovY,
		},
		Board: boardParams{
			Width:  defaultBoardWidth,
			Height: defaultBoardHeight,
			X:      defaultBoardX,
			Y:      defaultBoardY,
			Depth:  defaultBoardDepth,
			Rows:   defaultBoardRows,
			Cols:   defaultBoardCols,
			Square: defaultBoardSquare,
			Margin: defaultBoardMargin,
		},
		Grid: gridParams{
			Size: defaultGridSize,
			Step: defaultGridStep,
			Y:    defaultGridY,
		},
		LogLevel: "info",
	}
}

// parseConfig reads a yaml document on top of the defaults.
func parseConfig(b []byte) (*config, error) {
	c := defaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return c, nil
}

func (c *config) validate() error {
	p := c.Projection
	if p.ZNear <= 0 || p.ZNearStep <= 0 {
		return errInvalidZNear
	}
	if p.ZFar <= p.ZNear {
		return errInvalidZFar
	}
	if p.FovY <= 0 || p.FovY >= 180 {
		return errInvalidFovY
	}
	b := c.Board
	if b.Width <= 0 || b.Height <= 0 || b.Depth <= 0 || b.Rows <= 0 || b.Cols <= 0 ||
		b.Square <= 0 || b.Margin < 0 {
		return errInvalidBoard
	}
	if c.Grid.Size <= 0 || c.Grid.Step <= 0 {
		return errInvalidGrid
	}
	for code, name := range c.Keys {
		if _, ok := keyActionNames[name]; !ok {
			return fmt.Errorf("%w: %q for %s", errInvalidAction, name, code)
		}
	}
	return nil
}

// keymap returns the default bindings overridden by the configured ones.
func (c *config) keymap() keymap {
	km := defaultKeymap()
	for code, name := range c.Keys {
		km[code] = keyActionNames[name]
	}
	return km
}

func (c *config) logLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
