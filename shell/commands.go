package shell

import (
	"fmt"
	"runtime"
	"strings"
)

// Action tells the host what to do after a command
type Action uint8

const (
	ActionNone Action = iota
	ActionLaunchSnake
	ActionClear
	ActionTheme
)

// Result is the outcome of Process
type Result struct {
	Action Action
	Theme  Theme // set for ActionTheme
}

type command struct {
	name  string
	usage string
	help  string
	run   func(sh *Shell, args []string) ([]Line, Result)
}

// commandTable is ordered as listed by help
var commandTable []command

func init() {
	commandTable = []command{
		{name: "help", help: "Show this help message", run: runHelp},
		{name: "about", help: "Learn more about me", run: static(aboutText)},
		{name: "contact", help: "Get my contact information", run: static(contactText)},
		{name: "social", help: "View my social links", run: static(socialText)},
		{name: "resume", help: "Download my resume", run: static(resumeText)},
		{name: "theme", usage: "theme [" + strings.Join(ThemeNames(), "|") + "]", help: "Change terminal theme", run: runTheme},
		{name: "neofetch", help: "System information", run: runNeofetch},
		{name: "snake", help: "Play Snake game!", run: runSnake},
		{name: "clear", help: "Clear terminal", run: runClear},
		{name: "exit", help: "Close terminal (just kidding!)", run: static(exitText)},
	}
}

func lookup(name string) *command {
	for i := range commandTable {
		if commandTable[i].name == name {
			return &commandTable[i]
		}
	}
	return nil
}

// CommandNames lists commands in help order
func CommandNames() []string {
	names := make([]string, len(commandTable))
	for i, c := range commandTable {
		names[i] = c.name
	}
	return names
}

func static(lines []Line) func(*Shell, []string) ([]Line, Result) {
	return func(*Shell, []string) ([]Line, Result) {
		return lines, Result{}
	}
}

func runHelp(*Shell, []string) ([]Line, Result) {
	out := []Line{secondary("Available commands:")}
	for _, c := range commandTable {
		name := c.name
		if c.usage != "" {
			name = c.usage
		}
		out = append(out, primary(fmt.Sprintf("  %-34s - %s", name, c.help)))
	}
	return out, Result{}
}

func runTheme(sh *Shell, args []string) ([]Line, Result) {
	if len(args) == 0 {
		return []Line{
			muted("Current theme: " + sh.theme.String()),
			muted("Usage: " + lookup("theme").usage),
		}, Result{}
	}
	t, ok := ParseTheme(args[0])
	if !ok {
		return []Line{
			failure("Unknown theme: " + args[0]),
			muted("Usage: " + lookup("theme").usage),
		}, Result{}
	}
	sh.theme = t
	return []Line{secondary("Theme changed to " + t.String() + "!")}, Result{Action: ActionTheme, Theme: t}
}

func runSnake(*Shell, []string) ([]Line, Result) {
	return []Line{secondary("Starting Snake game... Use WASD or Arrow Keys!")}, Result{Action: ActionLaunchSnake}
}

func runClear(sh *Shell, _ []string) ([]Line, Result) {
	sh.entries = sh.entries[:0]
	return nil, Result{Action: ActionClear}
}

func runNeofetch(*Shell, []string) ([]Line, Result) {
	art := []string{
		`    ___     `,
		`   /   \    `,
		`  |  E  |   `,
		`  | N G |   `,
		`  |_____|   `,
		`    |||     `,
		`    |||     `,
	}
	info := []string{
		"OS: " + runtime.GOOS + "/" + runtime.GOARCH,
		"Shell: portfolio-sh",
		"Terminal: portfolio-term",
		"Editor: Neovim / VSCode",
		"Languages: Go, TypeScript, Python",
		"Runtime: " + runtime.Version(),
		"Uptime: 5+ years in tech",
	}
	out := make([]Line, len(art))
	for i := range art {
		out[i] = primary(art[i] + "  " + info[i])
	}
	return out, Result{}
}

var aboutText = []Line{
	secondary("$ cat about.txt"),
	text("I'm a Software Engineer passionate about building"),
	text("scalable systems that handle real-world challenges."),
	text(""),
	text("When I'm not coding, I'm probably:"),
	text("  • Contributing to open source"),
	text("  • Writing technical blog posts"),
	text("  • Experimenting with new technologies"),
}

var contactText = []Line{
	secondary("$ cat contact.json"),
	text("{"),
	primary(`  "email": "hello@engineer.dev",`),
	primary(`  "location": "San Francisco, CA",`),
	primary(`  "availability": "Open to opportunities"`),
	text("}"),
}

var socialText = []Line{
	secondary("$ ls social/"),
	primary("GitHub    LinkedIn    Email"),
}

var resumeText = []Line{
	secondary("$ download resume.pdf"),
	primary("Downloading... Done!"),
	muted("(nothing was actually downloaded)"),
}

var exitText = []Line{
	failure("Nice try! You can't escape that easily :)"),
	muted("This terminal is your new home now."),
}

var welcomeText = []Line{
	secondary("Welcome to Engineer's Terminal v2.0"),
	muted("Type 'help' to see available commands."),
	muted("Try 'snake' for a surprise!"),
}
