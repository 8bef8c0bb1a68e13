package service

import (
	"github.com/tglkwon/api.board.aquaco.work/internal/domain"
	"github.com/tglkwon/api.board.aquaco.work/internal/errors"
	"github.com/tglkwon/api.board.aquaco.work/internal/logger"
)

// Authorize reports whether caller may modify a record recorded as owned by
// owner. Only the exact same member id qualifies.
func Authorize(owner, caller domain.MemberId) bool {
	return caller != "" && owner == caller
}

// RequireOwner builds the check the store runs against a locked row before
// updating or deleting it.
func RequireOwner(caller domain.Subject, resource string) domain.OwnerCheck {
	return func(owner domain.MemberId) error {
		if !Authorize(owner, caller.Id) {
			logger.Log.Info("ownership check failed", "resource", resource, "caller", caller.Id)
			return errors.Forbidden("Only the author can modify this " + resource)
		}
		return nil
	}
}

func required(field, value string) error {
	if value == "" {
		return errors.Validation(field + " is required")
	}
	return nil
}

func requiredAll(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := required(pairs[i], pairs[i+1]); err != nil {
			return err
		}
	}
	return nil
}
