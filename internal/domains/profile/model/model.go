package model

import "palmera/shared/model"

const (
	TableName  = "profiles"
	EntityName = "profile"

	FieldID        = "id"
	FieldFullName  = "full_name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldAvatarURL = "avatar_url"
	FieldBio       = "bio"
)

// Profile is keyed by the identity provider's user id; one row per user.
type Profile struct {
	ID        string `db:"id"`
	FullName  string `db:"full_name"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
	AvatarURL string `db:"avatar_url"`
	Bio       string `db:"bio"`
	model.Metadata
}
