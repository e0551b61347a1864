package commands

import (
	"errors"
	"fmt"
	"time"

	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var ErrExpireReservationsCommandIsNotConstructed = errors.New(
	"ExpireReservationsCommand must be created via NewExpireReservationsCommand constructor",
)

// ExpireReservationsCommand represents a request to expire all stale
// draft reservations in one batch. A draft is stale once it has been
// sitting unconfirmed for at least the time-to-live.
type ExpireReservationsCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

// NewExpireReservationsCommand creates a command to expire drafts
// older than the given time-to-live.
func NewExpireReservationsCommand(ttl time.Duration) (ExpireReservationsCommand, error) {
	command := ExpireReservationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setTTL(ttl); err != nil {
		return ExpireReservationsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireReservationsCommand) Validate() error {
	return c.guard.Validate(ErrExpireReservationsCommandIsNotConstructed)
}

// TTL returns how long a draft may stay unconfirmed before expiring.
func (c ExpireReservationsCommand) TTL() time.Duration {
	return c.ttl
}

func (c *ExpireReservationsCommand) setTTL(ttl time.Duration) error {
	if ttl < 0 {
		return errs.NewValueIsInvalidErrorWithCause("ttl",
			fmt.Errorf("%s is not a non-negative duration", ttl))
	}

	c.ttl = ttl
	return nil
}
