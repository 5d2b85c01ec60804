package refgen

import (
	"context"
	"crypto/rand"
	"io"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/pkg/errs"
)

const maxAttempts = 10

var errAttemptsExhausted = errs.New("could not produce an unused booking reference")

// ReferenceChecker reports whether a reference is already taken.
type ReferenceChecker interface {
	ReferenceExists(ctx context.Context, reference string) (bool, error)
}

// Generator draws random booking references and rejects collisions against
// the ledger, retrying up to maxAttempts times.
type Generator struct {
	checker ReferenceChecker
	rng     io.Reader
}

func NewGenerator(checker ReferenceChecker) *Generator {
	return &Generator{checker: checker, rng: rand.Reader}
}

func (g *Generator) NewReference(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		ref, err := reservation.GenerateReference(g.rng)
		if err != nil {
			return "", errs.Wrap(err, "failed to generate reference")
		}
		taken, err := g.checker.ReferenceExists(ctx, ref)
		if err != nil {
			return "", errs.Wrap(err, "failed to check reference uniqueness")
		}
		if !taken {
			return ref, nil
		}
	}
	return "", errAttemptsExhausted
}
