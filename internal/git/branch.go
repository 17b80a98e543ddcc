package git

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/Johannes-Berggren/gonebranch/internal/models"
	"github.com/Johannes-Berggren/gonebranch/internal/parse"
	log "github.com/sirupsen/logrus"
)

// branchFormat renders local branches in `git branch -vv` layout. Every line
// carries an annotation, "[gone]" or an empty "[]", so the commit subject
// never sits where the annotation is parsed and "[origin/x: ahead 1]" style
// text never reaches the parser.
const branchFormat = "%(HEAD) %(refname:short) %(objectname:short) " +
	"%(if:equals=[gone])%(upstream:track)%(then)[gone]%(else)[]%(end) %(contents:subject)"

// Client runs git against a single working copy.
type Client struct {
	Binary string
	Dir    string
}

// NewClient returns a client for the repository in dir.
func NewClient(binary, dir string) *Client {
	if binary == "" {
		binary = "git"
	}
	return &Client{
		Binary: binary,
		Dir:    dir,
	}
}

func (c *Client) command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.Binary, args...)
	cmd.Dir = c.Dir
	return cmd
}

// IsRepo reports whether Dir is inside a git working copy or git dir.
func (c *Client) IsRepo(ctx context.Context) bool {
	return c.command(ctx, "rev-parse", "--git-dir").Run() == nil
}

// ListBranches returns every local branch with its upstream status.
func (c *Client) ListBranches(ctx context.Context) ([]models.BranchLine, error) {
	cmd := c.command(ctx, "for-each-ref", "--format="+branchFormat, "refs/heads")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	return ParseBranches(bytes.NewReader(output), "")
}

// DeleteBranch deletes a local branch. force maps to `git branch -D`.
func (c *Client) DeleteBranch(ctx context.Context, name string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	cmd := c.command(ctx, "branch", flag, name)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to delete branch %s: %s", name, strings.TrimSpace(string(output)))
	}
	log.WithField("branch", name).Info("deleted branch")
	return nil
}

// ParseLine strips prefix, if present, and parses the rest of line.
func ParseLine(line, prefix string) (models.BranchLine, error) {
	if prefix != "" {
		_, line, _ = parse.Opt(parse.Tag(prefix))(line)
	}
	branch, _, err := parse.Line(line)
	return branch, err
}

// ParseBranches parses branch listing output line by line. Blank lines are
// ignored. Lines that do not parse, or whose name could not be delimited
// from the hash, are logged and skipped.
func ParseBranches(r io.Reader, prefix string) ([]models.BranchLine, error) {
	var branches []models.BranchLine
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		branch, err := ParseLine(line, prefix)
		if err != nil {
			log.WithFields(log.Fields{"line": lineNo, "text": line}).WithError(err).Warn("skipping malformed branch line")
			continue
		}

		// A name containing characters outside the grammar stops early and
		// leaves the hash empty, so the name cannot be trusted.
		if branch.Name == "" || branch.Hash == "" {
			log.WithFields(log.Fields{"line": lineNo, "text": line}).Warn("skipping unsupported branch line")
			continue
		}

		branches = append(branches, branch)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read branches: %w", err)
	}

	return branches, nil
}

// GoneBranches keeps only branches whose upstream has been deleted.
func GoneBranches(branches []models.BranchLine) []models.BranchLine {
	var gone []models.BranchLine
	for _, b := range branches {
		if b.IsGone() {
			gone = append(gone, b)
		}
	}
	return gone
}
