package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Username          string
	EncryptedPassword string
}

// Profile бизнес профиль юзера. Счетчики являются производными данными и изменяются только через
// service.CounterSynchronizer.
type Profile struct {
	UserID              int64
	Username            string
	CreatedAt           time.Time
	UpdatedAt           time.Time
	BusinessName        string
	About               string
	Phone               string
	Email               string
	Website             string
	Address             string
	LocationCoordinates string
	AvatarURL           string
	BannerURL           string

	FollowersCount         int64
	FollowingsCount        int64
	DiscountsReceivedCount int64
	DiscountsUsedCount     int64
}

// ProfileView профиль глазами конкретного зрителя.
type ProfileView struct {
	Profile
	IsFollowing               bool
	AverageDiscountPercentage decimal.Decimal
}

type Follow struct {
	FollowerID  int64
	FollowingID int64
	CreatedAt   time.Time
}

type Discount struct {
	ID          int64
	CreatedAt   time.Time
	IssuerID    int64
	RecipientID int64
	Percentage  decimal.Decimal
	RedeemLimit decimal.Decimal
	RedeemUsed  decimal.Decimal
}

// DiscountView скидка вместе с данными обеих сторон.
type DiscountView struct {
	Discount
	IssuerUsername        string
	IssuerBusinessName    string
	RecipientUsername     string
	RecipientBusinessName string
	RecipientAvatarURL    string
}

type Post struct {
	ID           int64
	CreatedAt    time.Time
	UserID       int64
	Username     string
	BusinessName string
	Description  string
	ImageURL     string
	LikesCount   int64
}
