package main

import "github.com/fatih/color"

var (
	okColor     = color.New(color.FgGreen, color.Bold)
	errorColor  = color.New(color.FgRed, color.Bold)
	opcodeColor = color.New(color.FgCyan)
	idColor     = color.New(color.FgYellow)
	nameColor   = color.New(color.Bold)
)
