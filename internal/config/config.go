// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Screen is the logical playfield size. The origin is at its centre.
type Screen struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Direction is a vector in units of the ball speed.
type Direction struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PongConfig contains all configuration for Pong.
type PongConfig struct {
	Screen Screen     `yaml:"screen"`
	Ball   PongBall   `yaml:"ball"`
	Paddle PongPaddle `yaml:"paddle"`
	Serve  PongServe  `yaml:"serve"`
}

// PongBall defines the ball. Speed is the magnitude the ball is held to.
type PongBall struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

// PongPaddle defines both paddles. Pad is the gap between a paddle and its wall.
type PongPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Pad    float64 `yaml:"pad"`
}

// PongServe holds the ball velocity, in units of ball speed, at kick-off and
// after each point.
type PongServe struct {
	Initial       Direction `yaml:"initial"`
	AfterPlayer   Direction `yaml:"after_player"`
	AfterOpponent Direction `yaml:"after_opponent"`
}

// BreakoutConfig contains all configuration for Brick Breaker.
type BreakoutConfig struct {
	Screen Screen         `yaml:"screen"`
	Ball   BreakoutBall   `yaml:"ball"`
	Paddle BreakoutPaddle `yaml:"paddle"`
	Bricks BreakoutBricks `yaml:"bricks"`
}

// BreakoutBall defines the ball. Gap is the distance between the resting
// ball and the paddle top.
type BreakoutBall struct {
	Radius float64   `yaml:"radius"`
	Speed  float64   `yaml:"speed"`
	Launch Direction `yaml:"launch"`
	Gap    float64   `yaml:"gap"`
}

// BreakoutPaddle defines the paddle. Y is its centre line.
type BreakoutPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Y      float64 `yaml:"y"`
}

// BreakoutBricks defines the brick wall. Layout is one string per row,
// top row first; '.' and ' ' are empty cells, any other rune is a brick.
// Top is the y coordinate of the upper edge of the first row.
type BreakoutBricks struct {
	Width  float64  `yaml:"width"`
	Height float64  `yaml:"height"`
	Gap    float64  `yaml:"gap"`
	Top    float64  `yaml:"top"`
	Layout []string `yaml:"layout"`
}

// Columns returns the width of the widest layout row.
func (b BreakoutBricks) Columns() int {
	cols := 0
	for _, row := range b.Layout {
		cols = max(cols, utf8.RuneCountInString(row))
	}
	return cols
}

func (s Screen) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("screen must be positive, got %vx%v", s.Width, s.Height)
	}
	return nil
}

func positive(name string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %v", name, v)
	}
	return nil
}

// Validate checks that every size and speed is usable.
func (c PongConfig) Validate() error {
	errs := []error{
		c.Screen.validate(),
		positive("ball.radius", c.Ball.Radius),
		positive("ball.speed", c.Ball.Speed),
		positive("paddle.width", c.Paddle.Width),
		positive("paddle.height", c.Paddle.Height),
		positive("paddle.speed", c.Paddle.Speed),
	}
	if c.Paddle.Pad < 0 {
		errs = append(errs, fmt.Errorf("paddle.pad must not be negative, got %v", c.Paddle.Pad))
	}
	if c.Paddle.Height >= c.Screen.Height {
		errs = append(errs, fmt.Errorf("paddle.height %v does not fit a %v high screen", c.Paddle.Height, c.Screen.Height))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: pong: %w", err)
	}
	return nil
}

// Validate checks that every size and speed is usable and that the brick
// wall fits on screen.
func (c BreakoutConfig) Validate() error {
	errs := []error{
		c.Screen.validate(),
		positive("ball.radius", c.Ball.Radius),
		positive("ball.speed", c.Ball.Speed),
		positive("paddle.width", c.Paddle.Width),
		positive("paddle.height", c.Paddle.Height),
		positive("paddle.speed", c.Paddle.Speed),
	}
	if c.Ball.Launch == (Direction{}) {
		errs = append(errs, errors.New("ball.launch must not be zero"))
	}
	if c.Paddle.Width >= c.Screen.Width {
		errs = append(errs, fmt.Errorf("paddle.width %v does not fit a %v wide screen", c.Paddle.Width, c.Screen.Width))
	}
	if len(c.Bricks.Layout) > 0 {
		errs = append(errs,
			positive("bricks.width", c.Bricks.Width),
			positive("bricks.height", c.Bricks.Height),
		)
		cols := float64(c.Bricks.Columns())
		if w := cols*c.Bricks.Width + (cols-1)*c.Bricks.Gap; w > c.Screen.Width {
			errs = append(errs, fmt.Errorf("brick layout is %v wide, screen is %v", w, c.Screen.Width))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: breakout: %w", err)
	}
	return nil
}
