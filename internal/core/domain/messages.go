package domain

// Client-facing message constants. These are part of the API contract and
// must not change spelling: clients match on them literally.
const (
	MsgAccountExists     = "ACCOUNT_EXIST"
	MsgIncorrectLogin    = "INCORRECT_LOGIN"
	MsgNotConfirmed      = "NOTCONFIRMED"
	MsgConfirmed         = "CONFIRMED"
	MsgVerificationError = "VERIFICATION_ERROR"
	MsgAlreadyConfirmed  = "ALREADY_CONFIRMED"
	MsgCredentials       = "Could not validate credentials"
)
