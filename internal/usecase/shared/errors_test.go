//go:build unit

package shared_test

import (
	"errors"
	"testing"

	"venue-deals/internal/infra"
	"venue-deals/internal/pkg/errs"
	"venue-deals/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
)

var errThingNotFound = errs.NewMarked("thing not found", errs.ErrNotFound)

func TestClassifyStoreErr(t *testing.T) {
	validation := errs.NewMarked("bad input", errs.ErrValidation)

	testCases := []struct {
		name  string
		err   error
		check func(t *testing.T, got error)
	}{
		{
			name:  "nil stays nil",
			err:   nil,
			check: func(t *testing.T, got error) { assert.NoError(t, got) },
		},
		{
			name: "missing row becomes the not found error",
			err:  infra.WrapRepoErr("row missing", nil, infra.KindNotFound),
			check: func(t *testing.T, got error) {
				assert.ErrorIs(t, got, errThingNotFound)
			},
		},
		{
			name: "dangling reference becomes the not found error",
			err:  infra.WrapRepoErr("fk", errors.New("violates foreign key"), infra.KindForeignKeyViolated),
			check: func(t *testing.T, got error) {
				assert.ErrorIs(t, got, errThingNotFound)
			},
		},
		{
			name: "check constraint is a validation error",
			err:  infra.WrapRepoErr("check", errors.New("violates check constraint"), infra.KindConstraintViolated),
			check: func(t *testing.T, got error) {
				assert.True(t, errs.IsValidation(got))
			},
		},
		{
			name: "db failure is store unavailable",
			err:  infra.WrapRepoErr("query failed", errors.New("connection refused")),
			check: func(t *testing.T, got error) {
				assert.True(t, errs.IsStoreUnavailable(got))
				assert.False(t, errs.IsNotFound(got))
			},
		},
		{
			name: "unclassified error is store unavailable",
			err:  errors.New("context deadline exceeded"),
			check: func(t *testing.T, got error) {
				assert.True(t, errs.IsStoreUnavailable(got))
			},
		},
		{
			name: "already classified passes through",
			err:  validation,
			check: func(t *testing.T, got error) {
				assert.Same(t, validation, got)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, shared.ClassifyStoreErr(tc.err, errThingNotFound))
		})
	}
}
