// Package store reads and writes the game list as a line-oriented text file.
// Each line is "title,price,owned_flag" with no header and no quoting. The
// file is opened and closed within each Load or Save call.
package store

import "errors"

// DefaultPath is the data file used by the gamelist command, relative to the
// working directory.
const DefaultPath = "games.txt"

// ErrNotFound is returned by Load when the data file does not exist. It is
// recoverable: Load also returns an empty list.
var ErrNotFound = errors.New("store: file not found")
