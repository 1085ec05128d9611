package services

import (
	"errors"

	apperrors "kexpay/internal/errors"
	"kexpay/internal/ledger"
)

// translateLedgerError maps ledger sentinel errors onto API errors. notFound
// is the resource-specific error used for ledger.ErrNotFound.
func translateLedgerError(err error, notFound *apperrors.AppError) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ledger.ErrNotFound):
		return notFound
	case errors.Is(err, ledger.ErrInvalidAmount):
		return apperrors.ErrInvalidAmount
	case errors.Is(err, ledger.ErrInvalidDate):
		return apperrors.ErrInvalidDate
	case errors.Is(err, ledger.ErrInvalidKind):
		return apperrors.ErrInvalidTransactionType
	case errors.Is(err, ledger.ErrInvalidCategory):
		return apperrors.ErrInvalidCategory
	case errors.Is(err, ledger.ErrInvalidAccountType):
		return apperrors.ErrInvalidAccountType
	case errors.Is(err, ledger.ErrEmptyDescription), errors.Is(err, ledger.ErrEmptyName):
		return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	default:
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}
