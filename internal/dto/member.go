package dto

type RegisterRequestDTO struct {
	Login        string `json:"login" example:"alice"`
	Password     string `json:"password" example:"password123"`
	ReferralCode string `json:"referral_code,omitempty" example:"18"`
}

type AuthResponseDTO struct {
	Message      string `json:"message"`
	MemberID     int64  `json:"member_id" example:"1"`
	ReferralCode string `json:"referral_code" example:"18"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" example:"alice"`
	Password string `json:"password" example:"password123"`
}

type SetStatusRequestDTO struct {
	Status string `json:"status" example:"blocked" enums:"active,inactive,blocked"`
}
