package repoargs

type CreateUser struct {
	Username string
	Password string
}

type ProfileCreate struct {
	UserID       int64
	BusinessName string
}

// ProfileDetails описательные поля профиля. nil означает "не изменять". Счетчиков здесь нет намеренно:
// их пишет только синхронизатор.
type ProfileDetails struct {
	BusinessName        *string
	About               *string
	Phone               *string
	Email               *string
	Website             *string
	Address             *string
	LocationCoordinates *string
	AvatarURL           *string
	BannerURL           *string
}

type PostCreate struct {
	UserID      int64
	Description string
	ImageURL    string
}
