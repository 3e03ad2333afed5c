package users

import (
	"strings"

	"github.com/dmitrijs2005/courtbook/internal/validation"
)

// DefaultImage is stored when a user registers without a profile image.
const DefaultImage = "/public/images/No_Image_Available.jpg"

// MinAge is the youngest age allowed to join.
const MinAge = 13

// Role distinguishes court owners from regular players.
type Role string

const (
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
)

// ParseRole validates a role name.
func ParseRole(s string) (Role, error) {
	switch Role(strings.TrimSpace(s)) {
	case RoleUser:
		return RoleUser, nil
	case RoleOwner:
		return RoleOwner, nil
	case "":
		return "", validation.Errorf("role must be provided")
	}
	return "", validation.Errorf("role must be %q or %q", RoleUser, RoleOwner)
}

// IsOwner reports whether r is the privileged owner role.
func (r Role) IsOwner() bool { return r == RoleOwner }

// User is a normalized user record. All identifiers, including those of
// embedded reviews and bookings, are hex strings.
type User struct {
	ID              string    `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	Age             int       `json:"age"`
	City            string    `json:"city"`
	State           string    `json:"state"`
	Zip             string    `json:"zip"`
	ExperienceLevel string    `json:"experience_level"`
	Image           string    `json:"image"`
	Role            Role      `json:"role"`
	Reviews         []Review  `json:"reviews"`
	History         []Booking `json:"history"`
	OverallRating   float64   `json:"overallRating"`
}

// Review is a review left on a user by another user. Reviews are appended by
// the review subsystem.
type Review struct {
	ID         string  `json:"id"`
	ReviewerID string  `json:"reviewer_id"`
	RevieweeID string  `json:"reviewee_id"`
	Rating     float64 `json:"rating"`
	Comment    string  `json:"comment"`
}

// Booking is a past court booking. Bookings are appended by the booking
// subsystem.
type Booking struct {
	ID        string `json:"id"`
	CourtID   string `json:"court_id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Profile is the public part of a user returned after authentication.
type Profile struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Role      Role   `json:"role"`
	Zip       string `json:"zip"`
}

// Profile returns the public projection of u.
func (u *User) Profile() *Profile {
	return &Profile{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Username:  u.Username,
		Role:      u.Role,
		Zip:       u.Zip,
	}
}

// MaxAge bounds the age field so it always fits the stored integer.
const MaxAge = 150

// ProfileInput carries the editable profile fields as submitted by a form.
// The role is not part of it: it is fixed when the account is created.
type ProfileInput struct {
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Username        string  `json:"username"`
	Age             float64 `json:"age"`
	City            string  `json:"city"`
	State           string  `json:"state"`
	Zip             string  `json:"zip"`
	Email           string  `json:"email"`
	ExperienceLevel string  `json:"experience_level"`
	Image           string  `json:"image"`
}

// RegisterInput is ProfileInput plus the initial password and role. Role is
// never read from a request body; an empty role means RoleUser.
type RegisterInput struct {
	ProfileInput
	Password string `json:"password"`
	Role     Role   `json:"-"`
}

// normalize validates every profile field and returns a User carrying the
// normalized values. Username and email are lowercased.
func (in ProfileInput) normalize() (*User, error) {
	if in.FirstName == "" || in.LastName == "" || in.Username == "" || in.Age == 0 ||
		in.City == "" || in.State == "" || in.Zip == "" || in.Email == "" || in.ExperienceLevel == "" {
		return nil, validation.Errorf("All inputs must be provided")
	}

	u := &User{}
	var err error

	if u.FirstName, err = validation.ValidStr(in.FirstName, "First name"); err != nil {
		return nil, err
	}
	if u.LastName, err = validation.ValidStr(in.LastName, "Last name"); err != nil {
		return nil, err
	}
	if u.Username, err = validation.ValidStr(in.Username, "Username"); err != nil {
		return nil, err
	}
	if u.City, err = validation.ValidStr(in.City, "City"); err != nil {
		return nil, err
	}

	age, err := validation.ValidNumber(in.Age, "Age", validation.Integer(), validation.Max(MaxAge))
	if err != nil {
		return nil, err
	}
	if age < MinAge {
		return nil, validation.Errorf("user must be %d or older to join", MinAge)
	}
	u.Age = int(age)

	if u.State, err = validation.ValidState(in.State); err != nil {
		return nil, err
	}
	if u.Zip, err = validation.ValidZip(in.Zip); err != nil {
		return nil, err
	}
	if u.Email, err = validation.ValidEmail(in.Email); err != nil {
		return nil, err
	}
	if u.ExperienceLevel, err = validation.ValidExpLevel(in.ExperienceLevel); err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Image) == "" {
		u.Image = DefaultImage
	} else if u.Image, err = validation.ValidImageURL(in.Image); err != nil {
		return nil, err
	}

	u.Username = strings.ToLower(u.Username)
	u.Email = strings.ToLower(u.Email)
	return u, nil
}
