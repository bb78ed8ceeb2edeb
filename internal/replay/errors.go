package replay

import (
	apperrors "github.com/soccervitae/soccerapp/pkg/errors"
)

var (
	ErrClosed         = apperrors.WrapWithCode(apperrors.ErrConflict, "viewer_closed", "story viewer is closed")
	ErrAlreadyOpen    = apperrors.WrapWithCode(apperrors.ErrConflict, "viewer_open", "story viewer is already open")
	ErrTransitioning  = apperrors.WrapWithCode(apperrors.ErrConflict, "transitioning", "a group transition is in progress")
	ErrDeleteInFlight = apperrors.WrapWithCode(apperrors.ErrConflict, "delete_in_flight", "a delete is already in progress")
	ErrOutOfRange     = apperrors.WrapWithCode(apperrors.ErrInvalidInput, "out_of_range", "story index out of range")
	ErrEmptyReply     = apperrors.WrapWithCode(apperrors.ErrInvalidInput, "empty_reply", "reply text is empty")
	ErrUnknownReason  = apperrors.WrapWithCode(apperrors.ErrInvalidInput, "unknown_reason", "unknown pause reason")
	ErrOwnStory       = apperrors.WrapWithCode(apperrors.ErrForbidden, "own_story", "cannot like or reply to your own story")
	ErrNotOwner       = apperrors.WrapWithCode(apperrors.ErrForbidden, "not_owner", "only the author can delete a story")
)
