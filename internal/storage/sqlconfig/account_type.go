package sqlconfig

type AccountType int8

const (
	AccountTypeCash AccountType = iota
	AccountTypeBankCredit
	AccountTypeBankSavings
	AccountTypeCreditCard
	AccountTypeDemat
	AccountTypeLoan
	AccountTypeTrading
	AccountTypeUPI
	AccountTypeOther
)

type AccountStatus string

const (
	AccountStatusActive AccountStatus = "ACTIVE"
	AccountStatusFrozen AccountStatus = "FROZEN"
	AccountStatusClosed AccountStatus = "CLOSED"
)

type HeaderStatus string

const (
	HeaderStatusActive    HeaderStatus = "ACTIVE"
	HeaderStatusNotActive HeaderStatus = "NOT_ACTIVE"
)
