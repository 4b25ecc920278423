package scraper

import (
	"context"

	"github.com/namongk/fast-linkedin-scraper/pkg/models"
)

// Runner executes a navigation plan and returns one result per step.
type Runner interface {
	Run(ctx context.Context, plan Plan) ([]models.Result, error)
}
