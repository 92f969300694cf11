package repoargs

type CreateUser struct {
	Name         string
	Email        string
	Phone        string
	Password     string
	ReferralCode string
	ReferredBy   string
	IsAdmin      bool
}

type UpdateBankDetails struct {
	UserID        int64
	BankName      string
	AccountNumber string
	AccountName   string
}
