package dto

import (
	"palmera/internal/domains/profile/model"
	"palmera/shared"
	gDto "palmera/shared/dto"
	gModel "palmera/shared/model"
	"palmera/shared/timezone"
)

type UpsertProfileRequest struct {
	FullName  string `db:"full_name"  json:"full_name"  validate:"required,notblank,max=100"`
	Phone     string `db:"phone"      json:"phone"      validate:"omitempty,phone"`
	AvatarURL string `db:"avatar_url" json:"avatar_url" validate:"omitempty,url,max=500"`
	Bio       string `db:"bio"        json:"bio"        validate:"omitempty,max=1000"`
}

func (c *UpsertProfileRequest) ToModel(userID, email string) model.Profile {
	return model.Profile{
		ID:        userID,
		FullName:  c.FullName,
		Email:     email,
		Phone:     c.Phone,
		AvatarURL: c.AvatarURL,
		Bio:       c.Bio,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type ProfileResponse struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Bio       string `json:"bio,omitempty"`
	gDto.Metadata
}

func (r *ProfileResponse) FromModel(mod model.Profile) {
	r.ID = mod.ID
	r.FullName = mod.FullName
	r.Email = mod.Email
	r.Phone = mod.Phone
	r.AvatarURL = mod.AvatarURL
	r.Bio = mod.Bio
	r.Metadata.FromModel(mod.Metadata)
}

type GetProfilesResponse struct {
	Profiles  []ProfileResponse `json:"profiles"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetProfilesResponse) FromModels(models []model.Profile, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Profiles = make([]ProfileResponse, len(models))
	for i, mod := range models {
		r.Profiles[i].FromModel(mod)
	}
}
