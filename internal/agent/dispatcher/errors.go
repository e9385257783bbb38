package dispatcher

import (
	"errors"

	"storefront-assistant/internal/agent"
	"storefront-assistant/internal/catalog"
	"storefront-assistant/internal/ledger"
	"storefront-assistant/pkg/calc"
)

// classifyError maps a domain error to its envelope kind. Unknown errors
// fall through to internal_error and are logged by the caller; the raw
// message never reaches the user in that case.
func classifyError(err error) agent.ErrorKind {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, ledger.ErrOrderNotFound),
		errors.Is(err, ledger.ErrProductNotFound):
		return agent.KindNotFound

	case errors.Is(err, ledger.ErrCancelCompleted),
		errors.Is(err, ledger.ErrAlreadyCancelled),
		errors.Is(err, ledger.ErrProductOutOfStock):
		return agent.KindInvalidState

	case errors.Is(err, catalog.ErrEmptyName),
		errors.Is(err, catalog.ErrInvalidPrice),
		errors.Is(err, ledger.ErrInvalidQuantity),
		errors.Is(err, ledger.ErrInvalidStatus),
		errors.Is(err, calc.ErrInvalidExpression),
		errors.Is(err, calc.ErrEmptyExpression),
		errors.Is(err, calc.ErrDivisionByZero):
		return agent.KindValidationFailure

	case errors.Is(err, catalog.ErrNoUpdateFields),
		errors.Is(err, catalog.ErrEmptySearchTerm):
		return agent.KindInvalidArguments

	default:
		return agent.KindInternal
	}
}
