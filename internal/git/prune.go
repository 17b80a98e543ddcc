package git

import (
	"context"
	"errors"
	"fmt"

	"github.com/Johannes-Berggren/gonebranch/internal/models"
	log "github.com/sirupsen/logrus"
)

// PruneOptions controls PruneGone.
type PruneOptions struct {
	Force  bool
	DryRun bool
}

// PruneGone deletes every local branch whose upstream is gone and returns
// the branches it deleted (or would delete, for a dry run). Failures on
// individual branches do not stop the rest; they are joined into the error.
func (c *Client) PruneGone(ctx context.Context, opts PruneOptions) ([]models.BranchLine, error) {
	branches, err := c.ListBranches(ctx)
	if err != nil {
		return nil, err
	}

	gone := GoneBranches(branches)
	if opts.DryRun {
		return gone, nil
	}

	var deleted []models.BranchLine
	var errs []error
	for _, b := range gone {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := c.DeleteBranch(ctx, b.Name, opts.Force); err != nil {
			log.WithField("branch", b.Name).WithError(err).Warn("could not delete gone branch")
			errs = append(errs, err)
			continue
		}
		deleted = append(deleted, b)
	}

	if len(errs) > 0 {
		return deleted, fmt.Errorf("failed to prune %d of %d branches: %w", len(errs), len(gone), errors.Join(errs...))
	}
	return deleted, nil
}
