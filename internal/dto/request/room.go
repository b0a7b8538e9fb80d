package request

// PostRoomForm is the canonical room-posting submission: required title,
// location and rent, image handled as a multipart file alongside.
type PostRoomForm struct {
	Title         string  `form:"title" validate:"required,max=120"`
	Location      string  `form:"location" validate:"required,max=160"`
	Rent          float64 `form:"rent" validate:"required,gt=0"`
	AvailableFrom string  `form:"availableFrom"`
	Type          string  `form:"type" validate:"max=60"`
	Description   string  `form:"description" validate:"max=1000"`
	CaptchaAnswer string  `form:"captcha" validate:"required"`
}

// SearchForm filters the available-rooms list. All fields optional; MaxRent
// is applied after the backend filter since the contract has no rent param.
type SearchForm struct {
	Location string  `form:"location"`
	Type     string  `form:"type"`
	MaxRent  float64 `form:"maxRent"`
}

func (f SearchForm) Empty() bool {
	return f.Location == "" && f.Type == "" && f.MaxRent == 0
}
