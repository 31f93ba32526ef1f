package service

import (
	"context"
	"errors"

	"github.com/polidog/web/internal/domain"
	"github.com/polidog/web/internal/logger"
	"github.com/polidog/web/internal/metrics"
	"github.com/polidog/web/internal/validator"
)

// Paths revalidated after any published content may have changed.
var publicPaths = []string{"/", "/blog", "/blog/*"}

func requireActor(actor *domain.User) error {
	if actor == nil {
		return domain.ErrUnauthenticated
	}
	return nil
}

// actionResult maps an action error to its metrics label.
func actionResult(err error) string {
	if err == nil {
		return "success"
	}
	if _, ok := validator.AsFieldErrors(err); ok {
		return "invalid"
	}
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrDuplicateSlug), errors.Is(err, domain.ErrDuplicateEmail):
		return "conflict"
	case errors.Is(err, domain.ErrEmailNotAllowed):
		return "rejected"
	}
	return "error"
}

// observe records the action outcome. Unexpected failures are logged
// here so callers only log what they add.
func observe(ctx context.Context, action string, timer *metrics.Timer, err error) {
	result := actionResult(err)
	metrics.ObserveAction(action, result, timer.Seconds())
	if result == "error" {
		logger.ErrorContext(ctx, "Action failed", "action", action, "error", err)
	}
}
