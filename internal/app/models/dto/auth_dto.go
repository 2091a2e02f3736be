package dto

// RegisterRequest carries the fields shared by mentor and mentee registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"mentee@college.edu"`
	Password string `json:"password" binding:"required,min=8" example:"s3cretpass"`
	Name     string `json:"name" binding:"required" example:"Asha Rao"`
	Phone    string `json:"phone" binding:"required" example:"+91 98765 43210"`

	// MentorID optionally auto-assigns a mentor at mentee registration.
	// A bad or non-mentor id is ignored; registration still succeeds.
	MentorID *int64 `json:"mentorId,omitempty" example:"2"`
}

// RegisterResponse is the data payload returned after registration
type RegisterResponse struct {
	ID    int64  `json:"id" example:"1"`
	Email string `json:"email" example:"mentee@college.edu"`
	Name  string `json:"name" example:"Asha Rao"`
	Phone string `json:"phone" example:"+91 98765 43210"`
	Role  string `json:"role" example:"MENTEE"`
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"mentee@college.edu"`
	Password string `json:"password" binding:"required" example:"s3cretpass"`
}

// LoginResponse is the data payload returned after a successful login
type LoginResponse struct {
	ID               int64  `json:"id" example:"1"`
	Email            string `json:"email" example:"mentee@college.edu"`
	Role             string `json:"role" example:"MENTEE"`
	ProfileCompleted bool   `json:"profileCompleted" example:"false"`
}

// CurrentUserResponse is the data payload of GET /api/auth/me
type CurrentUserResponse struct {
	ID               int64   `json:"id" example:"1"`
	Email            string  `json:"email" example:"mentee@college.edu"`
	Name             string  `json:"name" example:"Asha Rao"`
	Phone            string  `json:"phone" example:"+91 98765 43210"`
	Role             string  `json:"role" example:"MENTEE"`
	ProfileCompleted bool    `json:"profileCompleted" example:"true"`
	AssignedMentor   *int64  `json:"assignedMentor,omitempty" example:"2"`
	Mentees          []int64 `json:"mentees,omitempty"`
}

// UpdateProfileRequest carries a mentee's profile update
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required" example:"Asha Rao"`
	Phone string `json:"phone" binding:"required" example:"+91 98765 43210"`
}
