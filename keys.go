package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stewi1014/fracview/internal/view"
)

type binding struct {
	keys   []glfw.Key
	label  string
	action view.Action
}

var bindings = []binding{
	{[]glfw.Key{glfw.KeyEscape, glfw.KeyQ}, "Esc / Q", view.Quit},
	{[]glfw.Key{glfw.KeyKPAdd, glfw.KeyEqual}, "+", view.PrecisionUp},
	{[]glfw.Key{glfw.KeyKPSubtract, glfw.KeyMinus}, "-", view.PrecisionDown},
	{[]glfw.Key{glfw.KeyW}, "W", view.ZoomIn},
	{[]glfw.Key{glfw.KeyS}, "S", view.ZoomOut},
	{[]glfw.Key{glfw.KeyLeft}, "Left", view.PanLeft},
	{[]glfw.Key{glfw.KeyRight}, "Right", view.PanRight},
	{[]glfw.Key{glfw.KeyUp}, "Up", view.PanUp},
	{[]glfw.Key{glfw.KeyDown}, "Down", view.PanDown},
	{[]glfw.Key{glfw.KeyC}, "C", view.NextColor},
	{[]glfw.Key{glfw.KeyT}, "T", view.ToggleAutomation},
	{[]glfw.Key{glfw.KeyG}, "G", view.ToggleCompute},
	{[]glfw.Key{glfw.KeyX}, "X", view.NextFractal},
	{[]glfw.Key{glfw.KeyN}, "N", view.PowerUp},
	{[]glfw.Key{glfw.KeyB}, "B", view.PowerDown},
	{[]glfw.Key{glfw.KeyR}, "R", view.Reset},
}

var keyActions = func() map[glfw.Key]view.Action {
	m := make(map[glfw.Key]view.Action)
	for _, b := range bindings {
		for _, k := range b.keys {
			m[k] = b.action
		}
	}
	return m
}()

// ActionForKey maps a pressed key to its viewer action, or view.None.
func ActionForKey(key glfw.Key) view.Action {
	return keyActions[key]
}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Width(10)
	actionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// keyHelp renders the key bindings for the terminal.
func keyHelp() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("fracview keys"))
	b.WriteString("\n")
	for _, k := range bindings {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(k.label), actionStyle.Render(k.action.String())))
		b.WriteString("\n")
	}
	return b.String()
}
