package constant

import "errors"

var (
	ErrEntityNotFound        = errors.New("0001")
	ErrInvalidVersion        = errors.New("0002")
	ErrEntityAlreadyExists   = errors.New("0003")
	ErrUnauthorized          = errors.New("0004")
	ErrInsufficientPrivilege = errors.New("0005")
	ErrModeratedTag          = errors.New("0006")
	ErrInvalidPosition       = errors.New("0007")
	ErrInvalidBbox           = errors.New("0008")
	ErrInvalidLimit          = errors.New("0009")
	ErrInvalidOpeningHours   = errors.New("0010")
	ErrUnacceptedLicense     = errors.New("0011")
	ErrInvalidRatingValue    = errors.New("0012")
	ErrInvalidRatingContext  = errors.New("0013")
	ErrEmptyTitle            = errors.New("0014")
	ErrEndDateBeforeStart    = errors.New("0015")
	ErrMissingContact        = errors.New("0016")
	ErrInvalidEmail          = errors.New("0017")
	ErrMissingPhone          = errors.New("0018")
	ErrInvalidURL            = errors.New("0019")
	ErrMissingCreatorEmail   = errors.New("0020")
	ErrWeakPassword          = errors.New("0021")
	ErrEmptyComment          = errors.New("0022")
	ErrEmptyIDList           = errors.New("0023")
	ErrUserExists            = errors.New("0024")
	ErrEmailNotConfirmed     = errors.New("0025")
	ErrInvalidCredentials    = errors.New("0026")
	ErrTokenInvalid          = errors.New("0027")
	ErrTokenExpired          = errors.New("0028")
	ErrInternalServer        = errors.New("0029")
	ErrBadRequest            = errors.New("0030")
	ErrInvalidHomepage       = errors.New("0031")
	ErrMissingAPIToken       = errors.New("0032")
)
