package user

import "time"

type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"idToken"`
}

// UpdateRequest uses pointers so absent fields stay untouched.
type UpdateRequest struct {
	FullName         *string `json:"fullName"`
	Phone            *string `json:"phone"`
	Description      *string `json:"description"`
	Location         *string `json:"location"`
	Achievements     *string `json:"achievements"`
	PreferredExam    *string `json:"preferredExam"`
	PreferredSubject *string `json:"preferredSubject"`
}

// Profile is the normalized user shape returned by every auth endpoint.
type Profile struct {
	UID              string    `json:"uid"`
	FullName         string    `json:"fullName"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	AuthProvider     string    `json:"authProvider"`
	PhotoURL         string    `json:"photoURL"`
	BackgroundURL    string    `json:"backgroundURL"`
	Phone            string    `json:"phone"`
	Description      string    `json:"description"`
	Location         string    `json:"location"`
	Achievements     string    `json:"achievements"`
	PreferredExam    string    `json:"preferredExam"`
	PreferredSubject string    `json:"preferredSubject"`
	ExamCount        int       `json:"examCount"`
	Accuracy         float64   `json:"accuracy"`
	CreatedAt        time.Time `json:"createdAt"`
}

type AuthResponse struct {
	OK      bool    `json:"ok"`
	Token   string  `json:"token"`
	User    Profile `json:"user"`
	Warning string  `json:"warning,omitempty"`
}

func toProfile(u *User) Profile {
	return Profile{
		UID:              u.ID.String(),
		FullName:         u.FullName,
		Email:            u.Email,
		Role:             u.Role,
		AuthProvider:     u.AuthProvider,
		PhotoURL:         u.PhotoURL,
		BackgroundURL:    u.BackgroundURL,
		Phone:            u.Phone,
		Description:      u.Description,
		Location:         u.Location,
		Achievements:     u.Achievements,
		PreferredExam:    u.PreferredExam,
		PreferredSubject: u.PreferredSubject,
		ExamCount:        u.ExamCount,
		Accuracy:         u.Accuracy,
		CreatedAt:        u.CreatedAt,
	}
}
