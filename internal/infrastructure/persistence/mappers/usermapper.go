package mappers

import (
	"recruitscore/internal/domain/user"
	"recruitscore/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:          u.ID(),
		Email:       u.Email(),
		DisplayName: u.DisplayName(),
		IsAdmin:     u.IsAdmin(),
		CreatedAt:   u.CreatedAt().UnixMilli(),
		UpdatedAt:   u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.DisplayName,
		model.IsAdmin,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}
