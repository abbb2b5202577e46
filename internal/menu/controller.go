package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/LISSConsulting/gamelist/internal/config"
	"github.com/LISSConsulting/gamelist/internal/game"
	"github.com/LISSConsulting/gamelist/internal/store"
)

// State is the controller's position in the menu loop.
type State int

const (
	// StateMenu shows the menu and waits for a choice.
	StateMenu State = iota
	// StateExit ends the loop.
	StateExit
)

const menuText = `1. View all games
2. Add a new game
3. Delete a game
4. Update a game
5. Show cost totals and budget info
6. Save and Exit`

// Controller owns the game list for a session and drives the menu loop.
type Controller struct {
	lib   *game.Library
	path  string
	cfg   *config.Config
	in    *bufio.Scanner
	out   io.Writer
	theme Theme
}

// New creates a Controller that edits lib, saves to path, reads answers from
// in and writes to out.
func New(lib *game.Library, path string, cfg *config.Config, in io.Reader, out io.Writer) *Controller {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt) // answers have no length limit
	return &Controller{
		lib:   lib,
		path:  path,
		cfg:   cfg,
		in:    scanner,
		out:   out,
		theme: NewTheme(out, cfg.Display),
	}
}

// Library returns the list the controller edits.
func (c *Controller) Library() *game.Library { return c.lib }

// Run shows the menu until the user saves and exits. Reaching the end of
// input ends the loop without saving. Only a failed save or a read error is
// returned.
func (c *Controller) Run() error {
	state := StateMenu
	for state != StateExit {
		c.printMenu()
		choice, err := c.ask("Choose an option (1-6): ")
		if err != nil {
			return ignoreEOF(err)
		}
		state, err = c.Dispatch(choice)
		if err != nil {
			return ignoreEOF(err)
		}
	}
	return nil
}

// Dispatch performs one menu action and returns the next state.
func (c *Controller) Dispatch(choice string) (State, error) {
	switch choice {
	case "1":
		c.viewGames()
	case "2":
		return StateMenu, c.addGame()
	case "3":
		return StateMenu, c.deleteGame()
	case "4":
		return StateMenu, c.updateGame()
	case "5":
		return StateMenu, c.showBudget()
	case "6":
		if err := c.save(); err != nil {
			return StateMenu, err
		}
		return StateExit, nil
	default:
		c.fail("Invalid option. Please choose 1-6.")
	}
	return StateMenu, nil
}

func (c *Controller) printMenu() {
	fmt.Fprintln(c.out, c.theme.header.Render("=== Video Game Wishlist Manager ==="))
	fmt.Fprintln(c.out, menuText)
}

// ask writes prompt and returns the next input line without its line ending.
// It returns io.EOF when input is exhausted.
func (c *Controller) ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		fmt.Fprintln(c.out)
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("menu: read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimRight(c.in.Text(), "\r"), nil
}

// askYesNo asks prompt and reports whether the answer is affirmative.
func (c *Controller) askYesNo(prompt string) (bool, error) {
	answer, err := c.ask(prompt)
	if err != nil {
		return false, err
	}
	return c.cfg.IsAffirmative(answer), nil
}

func (c *Controller) say(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *Controller) fail(msg string) {
	fmt.Fprintln(c.out, c.theme.errorMsg.Render(msg))
}

func (c *Controller) ok(format string, args ...any) {
	fmt.Fprintln(c.out, c.theme.success.Render(fmt.Sprintf(format, args...)))
}

func (c *Controller) save() error {
	if err := store.Save(c.path, c.lib.Games()); err != nil {
		c.fail("Could not save changes.")
		return err
	}
	c.ok("Changes saved. Goodbye!")
	return nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
