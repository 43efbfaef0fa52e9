package schema

import (
	"time"
)

// User represents the users table - marketplace accounts with optional
// password and wallet credentials
type User struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Username is the optional login name (password accounts)
	Username *string `gorm:"column:username;uniqueIndex;type:text"`
	// PasswordHash is the bcrypt hash for password accounts
	PasswordHash *string `gorm:"column:password_hash;type:text"`
	// WalletAddress is the optional EVM or Solana wallet, normalized
	WalletAddress *string `gorm:"column:wallet_address;uniqueIndex;type:text"`
	// SignInNonce is the challenge nonce mutated on every wallet auth attempt
	SignInNonce *string `gorm:"column:sign_in_nonce;type:text"`
	// Admin marks operator accounts
	Admin bool `gorm:"column:admin;not null;default:false"`
	// KYCVerified marks accounts that passed identity verification
	KYCVerified bool `gorm:"column:kyc_verified;not null;default:false"`
	// CreatedAt is the registration timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the last mutation timestamp
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
