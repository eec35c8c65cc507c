package repository

import "time"

// User is a row of the users table.
type User struct {
	ID           uint `gorm:"primaryKey"`
	Username     string
	Email        string
	PasswordHash string
	FullName     *string
	UserType     string
	Phone        *string
	CompanyName  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLogin    *time.Time
}

func (User) TableName() string { return "users" }

type Investment struct {
	ID               uint `gorm:"primaryKey"`
	UserID           uint
	CompanyName      string
	Amount           float64
	ExpectedReturn   *float64
	RiskLevel        *string
	Status           string
	InvestmentDate   time.Time
	MaturityDate     *time.Time
	BlockchainTxHash *string
	Description      *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Investment) TableName() string { return "investments" }

type Invoice struct {
	ID                 uint `gorm:"primaryKey"`
	UserID             uint
	InvoiceNumber      string
	BuyerCompany       string
	InvoiceAmount      float64
	DueDate            time.Time
	Status             string
	VerificationStatus string
	BlockchainTxHash   *string
	Description        *string
	CreatedAt          time.Time
	VerifiedAt         *time.Time
	FundedAt           *time.Time
	UpdatedAt          time.Time
}

func (Invoice) TableName() string { return "invoices" }

// Transaction is a ledger row. ReferenceID and ReferenceType are both set
// or both nil.
type Transaction struct {
	ID               uint `gorm:"primaryKey"`
	UserID           uint
	TransactionType  string
	Amount           float64
	BlockchainTxHash *string
	Status           string
	ReferenceID      *uint
	ReferenceType    *string
	CreatedAt        time.Time
	ConfirmedAt      *time.Time
}

func (Transaction) TableName() string { return "transactions" }

// Portfolio has no created_at column; UpdatedAt is maintained by whoever
// recomputes the snapshot.
type Portfolio struct {
	ID               uint `gorm:"primaryKey"`
	UserID           uint
	InvestmentID     uint
	CurrentValue     *float64
	ProfitLoss       *float64
	ReturnPercentage *float64
	UpdatedAt        time.Time
}

func (Portfolio) TableName() string { return "portfolio" }
