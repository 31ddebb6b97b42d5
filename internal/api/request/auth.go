package request

import (
	"errors"
	"regexp"
	"time"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`
	birthDateLayout      = "2006-01-02"
)

var (
	errInvalidPassword  = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")
	errInvalidBirthDate = errors.New("birth date must be formatted as YYYY-MM-DD")

	passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)
	phoneExp    = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

// LoginRequest is sent form-encoded to /login and as JSON to /users/login.
// The backend names the email field "username".
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
}

type RegisterRequest struct {
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Name      string   `json:"name"`
	Lastname  string   `json:"lastname"`
	Phone     string   `json:"phone"`
	BirthDate string   `json:"birthDate"`
	Interests []string `json:"interests"`
}

func (req *RegisterRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required, validation.By(checkPassword)),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Lastname, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.BirthDate, validation.Required, validation.By(checkBirthDate)),
		validation.Field(&req.Phone, validation.Match(phoneExp)),
	)
	if err != nil {
		return err
	}

	return nil
}

func checkPassword(value interface{}) error {
	password, _ := value.(string)
	ok, err := passwordExp.MatchString(password)
	if err != nil || !ok {
		return errInvalidPassword
	}

	return nil
}

func checkBirthDate(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(birthDateLayout, s); err != nil {
		return errInvalidBirthDate
	}

	return nil
}
