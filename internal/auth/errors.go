package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error is a user-visible authentication or authorization failure.
// It carries a stable code, the HTTP status and an English and Arabic message.
type Error struct {
	Code      string `json:"code"`
	Status    int    `json:"-"`
	Message   string `json:"message"`
	MessageAr string `json:"messageAr"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

func newError(code string, status int, message, messageAr string) *Error {
	return &Error{Code: code, Status: status, Message: message, MessageAr: messageAr}
}

var (
	// ErrAccountNotFound is returned when no user, student or parent has the email.
	ErrAccountNotFound = newError("ACCOUNT_NOT_FOUND", fiber.StatusNotFound,
		"account not found", "الحساب غير موجود")

	// ErrAccountSuspended is returned for suspended accounts of any kind.
	ErrAccountSuspended = newError("ACCOUNT_SUSPENDED", fiber.StatusForbidden,
		"your account has been suspended", "تم إيقاف حسابك")

	// ErrInvitationNotCompleted is returned while an invited account has not accepted its invitation.
	ErrInvitationNotCompleted = newError("INVITATION_NOT_COMPLETED", fiber.StatusForbidden,
		"please complete your invitation first", "يرجى إكمال الدعوة أولاً")

	// ErrStudentNotApprovedYet is returned for students waiting for approval or changes.
	ErrStudentNotApprovedYet = newError("STUDENT_NOT_APPROVED_YET", fiber.StatusForbidden,
		"your student account has not been approved yet", "لم تتم الموافقة على حساب الطالب بعد")

	// ErrStudentRejected is returned for rejected students.
	ErrStudentRejected = newError("STUDENT_REJECTED", fiber.StatusForbidden,
		"your student account has been rejected", "تم رفض حساب الطالب")

	// ErrWrongPassword is returned when the password does not match.
	ErrWrongPassword = newError("WRONG_PASSWORD", fiber.StatusUnauthorized,
		"wrong password", "كلمة المرور غير صحيحة")

	// ErrAuthenticationMissing is returned when a request carries no usable identity,
	// and when a branch switch targets a branch the account is not a member of.
	ErrAuthenticationMissing = newError("AUTHENTICATION_MISSING", fiber.StatusUnauthorized,
		"authentication required", "يجب تسجيل الدخول أولاً")

	// ErrInvalidToken is returned for malformed tokens, bad signatures and wrong token types.
	ErrInvalidToken = newError("INVALID_TOKEN", fiber.StatusUnauthorized,
		"invalid token", "رمز الدخول غير صالح")

	// ErrTokenExpired is returned for tokens past their expiry.
	ErrTokenExpired = newError("TOKEN_EXPIRED", fiber.StatusUnauthorized,
		"token expired", "انتهت صلاحية رمز الدخول")

	// ErrForbidden is the single outcome of a failed permission check.
	ErrForbidden = newError("FORBIDDEN", fiber.StatusForbidden,
		"you do not have permission to perform this action", "ليس لديك صلاحية للقيام بهذا الإجراء")
)

var (
	// ErrSecretMissing is returned by NewIssuer when a signing secret is empty.
	ErrSecretMissing = errors.New("token signing secret is empty")

	// ErrSecretsNotDistinct is returned by NewIssuer when both token types would share a secret.
	ErrSecretsNotDistinct = errors.New("access and refresh secrets must differ")

	// ErrMalformedPermission is returned when a permission string is not "branch:module:action".
	ErrMalformedPermission = errors.New("malformed permission")
)

// AsError returns the *Error wrapped in err, if any.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}

	return nil, false
}
