package git

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/mkerr/twig/internal/models"
)

// Stashes returns all stash entries, newest first.
func (c *Client) Stashes() ([]models.Stash, error) {
	output, err := runGit("stash", "list")
	if err != nil {
		return nil, err
	}
	return parseStashes(output), nil
}

// parseStashes parses `git stash list` output. Lines look like:
//
//	stash@{0}: WIP on main: 5002d47 Add config loading
//	stash@{1}: On feature/login: spike
func parseStashes(output []byte) []models.Stash {
	var stashes []models.Stash
	scanner := bufio.NewScanner(bytes.NewReader(output))

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		id, message, found := strings.Cut(line, ": ")
		if !found {
			id = line
		}
		stashes = append(stashes, models.Stash{
			Index:   len(stashes),
			ID:      id,
			Message: strings.TrimSpace(message),
		})
	}

	return stashes
}
