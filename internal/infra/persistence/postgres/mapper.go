package postgres

import (
	"account/internal/domain/entity"
	"account/internal/infra/persistence/model"
)

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Role:         entity.Role(data.Role),
		PasswordHash: data.PasswordHash,
		IsStaff:      data.IsStaff,
		IsSuperuser:  data.IsSuperuser,
		IsActive:     data.IsActive,
		DateJoined:   data.DateJoined,
		LastLogin:    data.LastLogin,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Role:         data.Role.String(),
		PasswordHash: data.PasswordHash,
		IsStaff:      data.IsStaff,
		IsSuperuser:  data.IsSuperuser,
		IsActive:     data.IsActive,
		DateJoined:   data.DateJoined,
		LastLogin:    data.LastLogin,
	}
}

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	profile := &entity.Profile{
		UserID:           data.UserID,
		BirthDate:        data.BirthDate,
		Phone:            data.Phone,
		DefaultAddressID: data.DefaultAddressID,
		DefaultAddress:   toAddressDomain(data.DefaultAddress),
		User:             toUserDomain(data.User),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
	if data.Gender != nil {
		gender := entity.Gender(*data.Gender)
		profile.Gender = &gender
	}

	return profile
}

// fromProfileDomain leaves the associations empty so GORM never upserts them.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		UserID:           data.UserID,
		BirthDate:        data.BirthDate,
		Gender:           genderColumn(data.Gender),
		Phone:            data.Phone,
		DefaultAddressID: data.DefaultAddressID,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func genderColumn(gender *entity.Gender) *string {
	if gender == nil {
		return nil
	}
	value := string(*gender)

	return &value
}

func toAddressDomain(data *model.DeliveryAddressModel) *entity.DeliveryAddress {
	if data == nil {
		return nil
	}

	return &entity.DeliveryAddress{
		ID:         data.ID,
		ProfileID:  data.ProfileID,
		House:      data.House,
		Street:     data.Street,
		Block:      data.Block,
		Area:       data.Area,
		City:       data.City,
		PostalCode: data.PostalCode,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromAddressDomain(data *entity.DeliveryAddress) *model.DeliveryAddressModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryAddressModel{
		ID:         data.ID,
		ProfileID:  data.ProfileID,
		House:      data.House,
		Street:     data.Street,
		Block:      data.Block,
		Area:       data.Area,
		City:       data.City,
		PostalCode: data.PostalCode,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
