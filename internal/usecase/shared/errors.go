package shared

import (
	"venue-deals/internal/infra"
	"venue-deals/internal/pkg/errs"
)

// ClassifyStoreErr maps repository errors onto the usecase taxonomy. Missing
// rows and dangling references become notFound; anything else is a store
// failure. Errors that are already classified pass through untouched.
func ClassifyStoreErr(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errs.IsValidation(err), errs.IsNotFound(err), errs.IsStoreUnavailable(err):
		return err
	case infra.IsKind(err, infra.KindNotFound), infra.IsKind(err, infra.KindForeignKeyViolated):
		return notFound
	case infra.IsKind(err, infra.KindConstraintViolated):
		return errs.Mark(err, errs.ErrValidation)
	default:
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}
}
