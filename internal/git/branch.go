package git

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/mkerr/twig/internal/models"
)

// LocalBranches returns all local branches with upstream info.
func (c *Client) LocalBranches() ([]models.Branch, error) {
	output, err := runGit("branch", "--list", "-vv")
	if err != nil {
		return nil, err
	}
	return parseBranches(output), nil
}

// parseBranches parses `git branch --list -vv` output. Lines look like:
//
//	* feature/login 911ec26 [origin/feature/login] Add login form
//	  main          8fb5d9b [origin/main: behind 2] Fix build
//	  stale         6442450 [origin/stale: gone] Formatting
//	  local-only    dbcf785 Updates
func parseBranches(output []byte) []models.Branch {
	var branches []models.Branch
	scanner := bufio.NewScanner(bytes.NewReader(output))

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		branch := models.Branch{}

		if strings.HasPrefix(line, "*") {
			branch.Head = true
			line = strings.TrimPrefix(line, "*")
		}
		line = strings.TrimSpace(line)

		// Detached HEAD shows as "(HEAD detached at abc1234)"; skip it.
		if strings.HasPrefix(line, "(") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		branch.Name = parts[0]

		// Upstream info follows the sha: [origin/name] or [origin/name: gone]
		if len(parts) > 2 && strings.HasPrefix(parts[2], "[") {
			info := line[strings.Index(line, "[")+1:]
			if end := strings.Index(info, "]"); end >= 0 {
				info = info[:end]
			}
			name, status, _ := strings.Cut(info, ":")
			branch.Upstream = strings.TrimSpace(name)
			branch.Gone = strings.TrimSpace(status) == "gone"
		}

		branches = append(branches, branch)
	}

	return branches
}

// Checkout switches to the named branch.
func (c *Client) Checkout(name string) error {
	_, err := runGit("checkout", name)
	return err
}

// ValidateName reports whether name is a well-formed branch name.
func (c *Client) ValidateName(name string) (bool, error) {
	_, err := runGit("check-ref-format", "--branch", name)
	return err == nil, nil
}

// Create creates a branch at HEAD without switching to it.
func (c *Client) Create(name string) error {
	_, err := runGit("branch", name)
	return err
}

// Delete removes the named branch even if unmerged.
func (c *Client) Delete(name string) error {
	_, err := runGit("branch", "-D", name)
	return err
}
