//go:build unit

package refgen

import (
	"bytes"
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/pkg/errs"
)

var referencePattern = regexp.MustCompile(`^RES-[A-HJ-NP-Z2-9]{6}$`)

// recordingChecker treats every previously issued reference as taken.
type recordingChecker struct {
	seen map[string]struct{}
}

func newRecordingChecker() *recordingChecker {
	return &recordingChecker{seen: make(map[string]struct{})}
}

func (c *recordingChecker) ReferenceExists(_ context.Context, ref string) (bool, error) {
	_, taken := c.seen[ref]
	return taken, nil
}

// saturatedChecker reports every reference as taken.
type saturatedChecker struct {
	calls int
}

func (c *saturatedChecker) ReferenceExists(_ context.Context, _ string) (bool, error) {
	c.calls++
	return true, nil
}

type failingChecker struct{}

func (failingChecker) ReferenceExists(_ context.Context, _ string) (bool, error) {
	return false, errs.New("ledger unavailable")
}

func TestGenerator_NewReference_ManyDrawsAreDistinct(t *testing.T) {
	const draws = 10_000

	checker := newRecordingChecker()
	gen := NewGenerator(checker)

	for i := 0; i < draws; i++ {
		ref, err := gen.NewReference(context.Background())
		require.NoError(t, err)
		require.Regexp(t, referencePattern, ref)
		_, dup := checker.seen[ref]
		require.False(t, dup, "duplicate reference %s on draw %d", ref, i)
		checker.seen[ref] = struct{}{}
	}

	assert.Len(t, checker.seen, draws)
}

func TestGenerator_NewReference_RetriesTakenReference(t *testing.T) {
	// Each draw consumes ReferenceLength bytes, so a reader scripted to
	// repeat a block yields the same code twice before a fresh one.
	script := bytes.Repeat([]byte{0}, reservation.ReferenceLength)
	script = append(script, bytes.Repeat([]byte{1}, reservation.ReferenceLength)...)

	checker := newRecordingChecker()
	gen := &Generator{checker: checker, rng: bytes.NewReader(script)}

	first, err := gen.NewReference(context.Background())
	require.NoError(t, err)
	checker.seen[first] = struct{}{}

	gen.rng = bytes.NewReader(script)
	second, err := gen.NewReference(context.Background())
	require.NoError(t, err)
	assert.Regexp(t, referencePattern, second)
	assert.NotEqual(t, first, second)
}

func TestGenerator_NewReference_ExhaustsAttempts(t *testing.T) {
	checker := &saturatedChecker{}
	gen := NewGenerator(checker)

	ref, err := gen.NewReference(context.Background())
	require.ErrorIs(t, err, errAttemptsExhausted)
	assert.Empty(t, ref)
	assert.Equal(t, maxAttempts, checker.calls)
}

func TestGenerator_NewReference_CheckerFailure(t *testing.T) {
	gen := NewGenerator(failingChecker{})

	ref, err := gen.NewReference(context.Background())
	require.Error(t, err)
	assert.Empty(t, ref)
	assert.ErrorContains(t, err, "failed to check reference uniqueness")
}
