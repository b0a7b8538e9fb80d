package request

type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type RegisterForm struct {
	Name     string `form:"name" validate:"required,max=120"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
	Role     string `form:"role" validate:"required,oneof=RENTER PROVIDER"`
}

type VerifyForm struct {
	Code string `form:"code" validate:"required,len=6"`
}
