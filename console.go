package main

import (
	"errors"
	"strconv"
	"strings"
)

type console struct {
	view   *viewState
	params projectionParams
}

var errArgumentNumber = errors.New("invalid number of arguments")
var errInvalidCommand = errors.New("invalid command")
var errInvalidFlag = errors.New("invalid flag")
var errInvalidStep = errors.New("step must be >0")

var consoleCommands = map[string]func(c *console, args []string) (string, error){
	"znear": func(c *console, args []string) (string, error) {
		switch len(args) {
		case 0:
		case 1:
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return "", err
			}
			if v <= 0 {
				return "", errInvalidZNear
			}
			c.view.zNear = v
		default:
			return "", errArgumentNumber
		}
		return formatFloat(c.view.zNear), nil
	},
	"step": func(c *console, args []string) (string, error) {
		switch len(args) {
		case 0:
		case 1:
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return "", err
			}
			if v <= 0 {
				return "", errInvalidStep
			}
			c.view.deltaZNear = v
		default:
			return "", errArgumentNumber
		}
		return formatFloat(c.view.deltaZNear), nil
	},
	"fov": func(c *console, args []string) (string, error) {
		if len(args) != 0 {
			return "", errArgumentNumber
		}
		return formatFloat(c.params.FovY), nil
	},
	"pose": func(c *console, args []string) (string, error) {
		if len(args) != 0 {
			return "", errArgumentNumber
		}
		return c.view.pose().String(), nil
	},
	"reset": func(c *console, args []string) (string, error) {
		if len(args) != 0 {
			return "", errArgumentNumber
		}
		c.view.reset()
		return "", nil
	},
	"toggle": func(c *console, args []string) (string, error) {
		if len(args) != 1 {
			return "", errArgumentNumber
		}
		f, ok := displayFlagNames[args[0]]
		if !ok {
			return "", errInvalidFlag
		}
		c.view.toggle(f)
		return strconv.FormatBool(c.view.flag(f)), nil
	},
}

func (c *console) Run(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	fn, ok := consoleCommands[args[0]]
	if !ok {
		return "", errInvalidCommand
	}
	return fn(c, args[1:])
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
