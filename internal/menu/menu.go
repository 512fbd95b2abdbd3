// ABOUTME: Interactive numbered menu loop over the tracker repository.
// ABOUTME: Dispatches menu choices through a command table to prompt-driven handlers.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/harperreed/ftracker/internal/models"
	"github.com/harperreed/ftracker/internal/storage"
)

// RetryMessage is printed whenever input cannot be used.
const RetryMessage = "Error. Please try again."

const menuText = `
MENU
1) Add exercise
2) View exercise category
3) Delete exercise category
4) Create workout routine
5) View routine
6) Set fitness goal
7) View fitness goals
8) Set exercise progress
9) View exercise progress
10) View progress to fitness goals
11) Quit
`

const choicePrompt = "Please choose from the menu option above: "

// Command is a menu option.
type Command int

const (
	CmdAddExercise Command = iota + 1
	CmdViewCategory
	CmdDeleteCategory
	CmdCreateRoutine
	CmdViewRoutine
	CmdSetGoal
	CmdViewGoals
	CmdSetProgress
	CmdViewProgress
	CmdEvaluateGoal
	CmdQuit
)

var commandNames = map[Command]string{
	CmdAddExercise:    "add-exercise",
	CmdViewCategory:   "view-category",
	CmdDeleteCategory: "delete-category",
	CmdCreateRoutine:  "create-routine",
	CmdViewRoutine:    "view-routine",
	CmdSetGoal:        "set-goal",
	CmdViewGoals:      "view-goals",
	CmdSetProgress:    "set-progress",
	CmdViewProgress:   "view-progress",
	CmdEvaluateGoal:   "evaluate-goal",
	CmdQuit:           "quit",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(c))
}

type handler func(*Menu) error

// handlers maps every command except quit to its implementation.
var handlers = map[Command]handler{
	CmdAddExercise:    (*Menu).addExercise,
	CmdViewCategory:   (*Menu).viewCategory,
	CmdDeleteCategory: (*Menu).deleteCategory,
	CmdCreateRoutine:  (*Menu).createRoutine,
	CmdViewRoutine:    (*Menu).viewRoutine,
	CmdSetGoal:        (*Menu).setGoal,
	CmdViewGoals:      (*Menu).viewGoals,
	CmdSetProgress:    (*Menu).setProgress,
	CmdViewProgress:   (*Menu).viewProgress,
	CmdEvaluateGoal:   (*Menu).evaluateGoal,
}

// errInputClosed signals that the input stream ended mid-prompt.
var errInputClosed = errors.New("input closed")

// Menu runs the interactive loop against an injected repository.
type Menu struct {
	repo storage.Repository
	in   *bufio.Reader
	out  io.Writer
}

// New creates a Menu reading choices from in and writing to out.
func New(repo storage.Repository, in io.Reader, out io.Writer) *Menu {
	return &Menu{repo: repo, in: bufio.NewReader(in), out: out}
}

// Run shows the menu until the user quits or input ends.
func (m *Menu) Run() error {
	for {
		fmt.Fprint(m.out, menuText)
		raw, err := m.prompt(choicePrompt)
		if err != nil {
			if errors.Is(err, errInputClosed) {
				return nil
			}
			return err
		}

		n, err := models.ParseInt("menu option", raw)
		if err != nil {
			m.retry(err)
			continue
		}
		cmd := Command(n)
		if cmd == CmdQuit {
			log.Debug("menu quit")
			return nil
		}

		h, ok := handlers[cmd]
		if !ok {
			m.retry(fmt.Errorf("%w: unknown menu option %d", models.ErrValidation, n))
			continue
		}

		log.Debug("menu command", "command", cmd)
		if err := h(m); err != nil {
			if errors.Is(err, errInputClosed) {
				return nil
			}
			m.report(cmd, err)
		}
	}
}

// report prints a handler failure. None of them end the loop.
func (m *Menu) report(cmd Command, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		m.retry(err)
	case errors.Is(err, storage.ErrReferential):
		log.Warn("routine entry rejected", "command", cmd, "err", err)
		color.New(color.FgRed).Fprintln(m.out, "Error. That workout ID does not exist, create the routine first.")
	default:
		log.Error("menu command failed", "command", cmd, "err", err)
		color.New(color.FgRed).Fprintf(m.out, "Error: %v\n", err)
	}
}

func (m *Menu) retry(err error) {
	log.Debug("rejected input", "err", err)
	fmt.Fprintln(m.out, RetryMessage)
}

// prompt writes label and returns the next input line without its line ending.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", errInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (m *Menu) promptInt(label, field string) (int64, error) {
	raw, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	return models.ParseInt(field, raw)
}

func (m *Menu) success(msg string) {
	color.New(color.FgGreen).Fprintln(m.out, msg)
}
