package usecases

import (
	stderrors "errors"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
)

const (
	MsgTicketNotFound       = "Ticket not found"
	MsgOnlyStateModifiable  = "Only ticket's state can be modified."
	MsgTransitionNotAwaited = "This state transition not awaited."
	MsgCommentOnClosed      = "Comment can be added only in unclosed tickets."
	MsgConcurrentUpdate     = "Ticket was modified concurrently, retry the request."
)

// translateError maps domain and repository failures to AppErrors. op names
// the step that failed and is used for storage errors only.
func translateError(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.IsAppError(err) {
		return err
	}

	var fieldErr *ticket.FieldError
	switch {
	case stderrors.Is(err, ticket.ErrTicketNotFound):
		return errors.NewNotFoundError(MsgTicketNotFound)
	case stderrors.Is(err, ticket.ErrTransitionNotAllowed):
		return errors.NewValidationError(MsgTransitionNotAwaited)
	case stderrors.Is(err, ticket.ErrTicketClosed):
		return errors.NewValidationError(MsgCommentOnClosed)
	case stderrors.Is(err, ticket.ErrVersionConflict):
		return errors.NewConflictError(MsgConcurrentUpdate)
	case stderrors.As(err, &fieldErr):
		return errors.NewValidationError(fieldErr.Error())
	default:
		return errors.NewStorageError(op, err)
	}
}
