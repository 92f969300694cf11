package domain

type TransactionKind string

const (
	KindReferral   TransactionKind = "referral"
	KindWithdrawal TransactionKind = "withdrawal"
	KindActivation TransactionKind = "activation"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// ActivationStep шаги платежной сессии активации аккаунта.
type ActivationStep string

const (
	StepIdle         ActivationStep = "idle"
	StepPushing      ActivationStep = "pushing"
	StepAwaitingConf ActivationStep = "awaiting_confirmation"
	StepVerifying    ActivationStep = "verifying"
	StepSuccess      ActivationStep = "success"
	StepFailed       ActivationStep = "failed"
)

type OTPChannel string

const (
	ChannelSMS   OTPChannel = "sms"
	ChannelEmail OTPChannel = "email"
)

type OTPStatus string

const (
	OTPApproved OTPStatus = "approved"
	OTPPending  OTPStatus = "pending"
	OTPExpired  OTPStatus = "expired"
)
