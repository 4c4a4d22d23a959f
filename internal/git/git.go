// Package git shells out to the git CLI and parses its porcelain output.
package git

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/mkerr/twig/internal/log"
)

// Client runs git commands in the current working directory.
type Client struct{}

// New returns a Client.
func New() *Client {
	return &Client{}
}

// InWorkTree reports whether the working directory is inside a git worktree.
func (c *Client) InWorkTree() bool {
	err := exec.Command("git", "rev-parse", "--is-inside-work-tree").Run()
	return err == nil
}

func runGit(args ...string) ([]byte, error) {
	log.Printf("running git %s", strings.Join(args, " "))
	output, err := exec.Command("git", args...).CombinedOutput()
	if err != nil {
		reason := strings.TrimSpace(string(output))
		if reason == "" {
			reason = err.Error()
		}
		log.Printf("git %s failed: %s", strings.Join(args, " "), reason)
		return nil, fmt.Errorf("git %s: %s", args[0], reason)
	}
	return output, nil
}
