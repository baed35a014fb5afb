package pkg

import (
	"errors"
	"fmt"
	"strings"

	cn "github.com/kartevonmorgen/openfairdb/pkg/constant"
)

// EntityNotFoundError records an error indicating an entity was not found in any case that caused it.
// You can use it to representing a Database not found, cache not found or any other repository.
type EntityNotFoundError struct {
	EntityType string
	Title      string
	Message    string
	Code       string
	Err        error
}

// NewEntityNotFoundError creates an instance of EntityNotFoundError.
func NewEntityNotFoundError(entityType string) EntityNotFoundError {
	return EntityNotFoundError{
		EntityType: entityType,
	}
}

// WrapEntityNotFoundError creates an instance of EntityNotFoundError wrapping a cause.
func WrapEntityNotFoundError(entityType string, err error) EntityNotFoundError {
	return EntityNotFoundError{
		EntityType: entityType,
		Err:        err,
	}
}

// Error implements the error interface.
func (e EntityNotFoundError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		if strings.TrimSpace(e.EntityType) != "" {
			return fmt.Sprintf("Entity %s not found", e.EntityType)
		}

		if e.Err != nil {
			return e.Err.Error()
		}

		return "entity not found"
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e EntityNotFoundError) Unwrap() error {
	return e.Err
}

// ValidationError records an error indicating that an input failed a domain validation.
type ValidationError struct {
	EntityType string
	Title      string
	Message    string
	Code       string
	Err        error
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if strings.TrimSpace(e.Code) != "" {
		return fmt.Sprintf("%s - %s", e.Code, e.Message)
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e ValidationError) Unwrap() error {
	return e.Err
}

// EntityConflictError records an error indicating an entity already exists in some repository
// or that a concurrent writer won a revision race.
type EntityConflictError struct {
	EntityType string
	Title      string
	Message    string
	Code       string
	Err        error
}

// Error implements the error interface.
func (e EntityConflictError) Error() string {
	if e.Err != nil && strings.TrimSpace(e.Message) == "" {
		return e.Err.Error()
	}

	return e.Message
}

// Unwrap implements the error interface introduced in Go 1.13 to unwrap the internal error.
func (e EntityConflictError) Unwrap() error {
	return e.Err
}

// UnauthorizedError indicates an operation that couldn't be performed because there's no user authenticated.
type UnauthorizedError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e UnauthorizedError) Error() string {
	return e.Message
}

// ForbiddenError indicates an operation that couldn't be performed because the authenticated
// caller has no sufficient privileges.
type ForbiddenError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e ForbiddenError) Error() string {
	return e.Message
}

// UnprocessableOperationError indicates an operation that couldn't be performed because it's invalid.
type UnprocessableOperationError struct {
	EntityType string
	Title      string
	Message    string
	Code       string
	Err        error
}

func (e UnprocessableOperationError) Error() string {
	return e.Message
}

// InternalServerError indicates an unanticipated internal failure.
type InternalServerError struct {
	EntityType string `json:"entityType,omitempty"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message,omitempty"`
	Code       string `json:"code,omitempty"`
	Err        error  `json:"err,omitempty"`
}

func (e InternalServerError) Error() string {
	return e.Message
}

// ValidateInternalError validates the error and returns an appropriate InternalServerError.
func ValidateInternalError(err error, entityType string) error {
	return InternalServerError{
		EntityType: entityType,
		Code:       cn.ErrInternalServer.Error(),
		Title:      "Internal Server Error",
		Message:    "The server encountered an unexpected error. Please try again later or contact support.",
		Err:        err,
	}
}

// ValidateBusinessError validates the error and returns the appropriate business error code, title and message.
func ValidateBusinessError(err error, entityType string, args ...any) error {
	switch {
	case errors.Is(err, cn.ErrEntityNotFound):
		return EntityNotFoundError{
			EntityType: entityType,
			Code:       cn.ErrEntityNotFound.Error(),
			Title:      "Entity Not Found",
			Message:    "No entity was found for the given identifier. Please make sure to use the correct identifier.",
		}
	case errors.Is(err, cn.ErrInvalidVersion):
		return EntityConflictError{
			EntityType: entityType,
			Code:       cn.ErrInvalidVersion.Error(),
			Title:      "Invalid Version",
			Message:    "The given version does not succeed the current revision. Reload the entity and retry with the next revision number.",
		}
	case errors.Is(err, cn.ErrEntityAlreadyExists):
		return EntityConflictError{
			EntityType: entityType,
			Code:       cn.ErrEntityAlreadyExists.Error(),
			Title:      "Entity Already Exists",
			Message:    "An entity with the same key already exists. Please use a different key.",
		}
	case errors.Is(err, cn.ErrUnauthorized):
		return UnauthorizedError{
			EntityType: entityType,
			Code:       cn.ErrUnauthorized.Error(),
			Title:      "Unauthorized",
			Message:    "The request could not be authorized. Please sign in or provide a valid API token.",
		}
	case errors.Is(err, cn.ErrInsufficientPrivilege):
		return ForbiddenError{
			EntityType: entityType,
			Code:       cn.ErrInsufficientPrivilege.Error(),
			Title:      "Insufficient Privileges",
			Message:    "The authenticated user does not have the role required for this operation.",
		}
	case errors.Is(err, cn.ErrModeratedTag):
		return ForbiddenError{
			EntityType: entityType,
			Code:       cn.ErrModeratedTag.Error(),
			Title:      "Moderated Tag",
			Message:    fmt.Sprintf("The tag '%v' is moderated by another organization and cannot be added or removed by the caller.", firstArg(args)),
		}
	case errors.Is(err, cn.ErrInvalidPosition):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrInvalidPosition.Error(),
			Title:      "Invalid Position",
			Message:    "Latitude must lie within [-90, 90] and longitude within [-180, 180] degrees.",
		}
	case errors.Is(err, cn.ErrInvalidBbox):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrInvalidBbox.Error(),
			Title:      "Invalid Bounding Box",
			Message:    "A bounding box consists of four comma-separated numbers: south-west latitude, south-west longitude, north-east latitude, north-east longitude.",
		}
	case errors.Is(err, cn.ErrInvalidLimit):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrInvalidLimit.Error(),
			Title:      "Invalid Limit",
			Message:    "The result limit must be a positive number.",
		}
	case errors.Is(err, cn.ErrInvalidOpeningHours):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrInvalidOpeningHours.Error(),
			Title:      "Invalid Opening Hours",
			Message:    "The opening hours could not be parsed.",
		}
	case errors.Is(err, cn.ErrUnacceptedLicense):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrUnacceptedLicense.Error(),
			Title:      "Unaccepted License",
			Message:    "The given license is not in the set of accepted licenses.",
		}
	case errors.Is(err, cn.ErrInvalidRatingValue):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrInvalidRatingValue.Error(),
			Title:      "Invalid Rating Value",
			Message:    "A rating value must lie within [-1, 2].",
		}
	case errors.Is(err, cn.ErrInvalidRatingContext):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrInvalidRatingContext.Error(),
			Title:      "Invalid Rating Context",
			Message:    "The rating context must be one of diversity, renewable, fairness, humanity, transparency or solidarity.",
		}
	case errors.Is(err, cn.ErrEmptyTitle):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrEmptyTitle.Error(),
			Title:      "Empty Title",
			Message:    "The title must not be empty.",
		}
	case errors.Is(err, cn.ErrEndDateBeforeStart):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrEndDateBeforeStart.Error(),
			Title:      "End Date Before Start",
			Message:    "The end of an event must not lie before its start.",
		}
	case errors.Is(err, cn.ErrMissingContact):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrMissingContact.Error(),
			Title:      "Missing Contact",
			Message:    "The chosen registration type requires the corresponding contact detail.",
		}
	case errors.Is(err, cn.ErrInvalidEmail):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrInvalidEmail.Error(),
			Title:      "Invalid Email",
			Message:    "The given email address is not valid.",
		}
	case errors.Is(err, cn.ErrMissingPhone):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrMissingPhone.Error(),
			Title:      "Missing Phone",
			Message:    "Registration by phone requires a telephone number.",
		}
	case errors.Is(err, cn.ErrInvalidURL):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrInvalidURL.Error(),
			Title:      "Invalid URL",
			Message:    "The given URL is not a valid absolute URL.",
		}
	case errors.Is(err, cn.ErrInvalidHomepage):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrInvalidHomepage.Error(),
			Title:      "Invalid Homepage",
			Message:    "Registration by homepage requires a valid homepage URL.",
		}
	case errors.Is(err, cn.ErrMissingCreatorEmail):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrMissingCreatorEmail.Error(),
			Title:      "Missing Creator Email",
			Message:    "A creator email address is required for this operation.",
		}
	case errors.Is(err, cn.ErrWeakPassword):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrWeakPassword.Error(),
			Title:      "Weak Password",
			Message:    "The password does not satisfy the minimum strength requirements.",
		}
	case errors.Is(err, cn.ErrEmptyComment):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrEmptyComment.Error(),
			Title:      "Empty Comment",
			Message:    "A comment text must not be empty.",
		}
	case errors.Is(err, cn.ErrEmptyIDList):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrEmptyIDList.Error(),
			Title:      "Empty ID List",
			Message:    "At least one identifier must be given.",
		}
	case errors.Is(err, cn.ErrUserExists):
		return EntityConflictError{
			EntityType: entityType,
			Code:       cn.ErrUserExists.Error(),
			Title:      "User Already Exists",
			Message:    "A user with the given email address is already registered.",
		}
	case errors.Is(err, cn.ErrEmailNotConfirmed):
		return UnauthorizedError{
			EntityType: entityType,
			Code:       cn.ErrEmailNotConfirmed.Error(),
			Title:      "Email Not Confirmed",
			Message:    "The email address of this account has not been confirmed yet.",
		}
	case errors.Is(err, cn.ErrInvalidCredentials):
		return UnauthorizedError{
			EntityType: entityType,
			Code:       cn.ErrInvalidCredentials.Error(),
			Title:      "Invalid Credentials",
			Message:    "Email address or password do not match.",
		}
	case errors.Is(err, cn.ErrTokenInvalid):
		return UnauthorizedError{
			EntityType: entityType,
			Code:       cn.ErrTokenInvalid.Error(),
			Title:      "Invalid Token",
			Message:    "The given token could not be verified.",
		}
	case errors.Is(err, cn.ErrTokenExpired):
		return UnauthorizedError{
			EntityType: entityType,
			Code:       cn.ErrTokenExpired.Error(),
			Title:      "Expired Token",
			Message:    "The given token has expired. Please request a new one.",
		}
	case errors.Is(err, cn.ErrMissingAPIToken):
		return UnauthorizedError{
			EntityType: entityType,
			Code:       cn.ErrMissingAPIToken.Error(),
			Title:      "Missing API Token",
			Message:    "This operation requires a valid organization bearer token.",
		}
	case errors.Is(err, cn.ErrBadRequest):
		return ValidationError{
			EntityType: entityType,
			Code:       cn.ErrBadRequest.Error(),
			Title:      "Bad Request",
			Message:    "The server could not understand the request due to malformed syntax.",
		}
	default:
		return err
	}
}

func firstArg(args []any) any {
	if len(args) > 0 {
		return args[0]
	}

	return ""
}
