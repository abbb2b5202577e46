package store

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strings"

	"github.com/LISSConsulting/gamelist/internal/game"
)

const (
	fieldSep  = ","
	ownedFlag = "1"
	wishFlag  = "0"
)

// Load reads games from path in file order. Blank lines and lines that do not
// have exactly three fields are skipped. A price that is not a number is
// returned as an error and no games are returned. A missing file yields an
// empty list and an error matching ErrNotFound.
func Load(path string) ([]game.Game, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []game.Game{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}
	defer f.Close()

	games := []game.Game{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt) // titles have no length limit
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		g, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("store: %s line %d: %w", path, lineNo, err)
		}
		if ok {
			games = append(games, g)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("store: read %q: %w", path, err)
	}
	return games, nil
}

// Save truncates path and writes one line per game in order. Prices are
// written in their natural decimal form without rounding.
func Save(path string, games []game.Game) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("store: create %q: %w", path, err)
	}

	w := bufio.NewWriter(f)
	for _, g := range games {
		if _, err := w.WriteString(formatLine(g) + "\n"); err != nil {
			_ = f.Close()
			return fmt.Errorf("store: write %q: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("store: flush %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("store: close %q: %w", path, err)
	}
	return nil
}

// parseLine decodes one record. ok is false for lines that are skipped.
func parseLine(line string) (g game.Game, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return game.Game{}, false, nil
	}

	parts := strings.Split(line, fieldSep)
	if len(parts) != 3 {
		return game.Game{}, false, nil
	}

	price, err := game.ParsePrice(parts[1])
	if err != nil {
		return game.Game{}, false, err
	}

	return game.Game{
		Title: parts[0],
		Price: price,
		Owned: parts[2] == ownedFlag,
	}, true, nil
}

// formatLine encodes one record. Commas in the title are not escaped.
func formatLine(g game.Game) string {
	flag := wishFlag
	if g.Owned {
		flag = ownedFlag
	}
	return g.Title + fieldSep + g.Price.String() + fieldSep + flag
}
